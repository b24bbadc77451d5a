package session

import (
	"sync"

	"session-booking-client/internal/model"
)

// Store holds the process-wide authentication state: at most one
// SessionInformation plus a logged-in flag, broadcast to subscribers.
// One instance per running application, constructed by the caller and
// injected into every consumer. Starts logged out; nothing persists
// across restarts.
type Store struct {
	mu     sync.Mutex
	info   model.SessionInformation
	logged bool
	subs   map[<-chan bool]chan bool
}

func NewStore() *Store {
	return &Store{subs: make(map[<-chan bool]chan bool)}
}

// LogIn replaces any existing snapshot with info and emits true.
// Repeated calls are allowed; the last writer wins.
func (s *Store) LogIn(info model.SessionInformation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = info
	s.logged = true
	s.broadcast(true)
}

// LogOut clears the snapshot and emits false. Calling it while already
// logged out is a no-op transition but still emits false, so late
// subscribers always see a deterministic current value.
func (s *Store) LogOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = model.SessionInformation{}
	s.logged = false
	s.broadcast(false)
}

func (s *Store) IsLogged() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logged
}

// Session returns the current snapshot and whether one is present.
// Present iff IsLogged.
func (s *Store) Session() (model.SessionInformation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info, s.logged
}

// Observe registers a subscriber. The channel immediately carries the
// current logged-in value, then every subsequent transition in call
// order. Callers that are done must Unsubscribe to release the channel.
func (s *Store) Observe() <-chan bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	// buffer sized for replay plus a burst of transitions; a subscriber
	// that stops draining is dropped rather than blocking the store
	ch := make(chan bool, 16)
	ch <- s.logged
	s.subs[ch] = ch
	return ch
}

func (s *Store) Unsubscribe(sub <-chan bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.subs[sub]; ok {
		delete(s.subs, sub)
		close(ch)
	}
}

// broadcast pushes v to every subscriber. Callers hold s.mu, which
// serializes emission order with the snapshot change that caused it.
func (s *Store) broadcast(v bool) {
	for sub, ch := range s.subs {
		select {
		case ch <- v:
		default:
			// subscriber stopped draining
			delete(s.subs, sub)
			close(ch)
		}
	}
}

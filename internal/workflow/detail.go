package workflow

import (
	"context"
	"sync"

	"github.com/go-playground/errors/v5"

	"session-booking-client/internal/model"
	"session-booking-client/internal/policy"
	"session-booking-client/internal/session"
)

// Detail is the session detail view: one instance per (session, viewer)
// pair. Join/Leave toggle the viewer's roster membership and re-fetch
// the whole entity afterwards; IsParticipating is always derived from
// the fetched roster, never maintained on its own.
type Detail struct {
	sessions SessionAPI
	teachers TeacherAPI
	store    *session.Store
	notify   Notifier
	nav      Navigator

	sessionID int64

	mu   sync.Mutex
	busy bool

	// view state, valid after Load
	Session         model.Session
	Teacher         model.Teacher
	IsParticipating bool
	IsAdmin         bool
}

func NewDetail(sessions SessionAPI, teachers TeacherAPI, store *session.Store, notify Notifier, nav Navigator, sessionID int64) *Detail {
	return &Detail{
		sessions:  sessions,
		teachers:  teachers,
		store:     store,
		notify:    notify,
		nav:       nav,
		sessionID: sessionID,
	}
}

// Load fetches the session and its teacher and derives the display
// flags from the current store snapshot.
func (d *Detail) Load(ctx context.Context) error {
	if err := d.refresh(ctx); err != nil {
		return err
	}

	t, err := d.teachers.Teacher(ctx, d.Session.TeacherID)
	if err != nil {
		return errors.Wrap(err, "TeacherAPI.Teacher()")
	}
	d.Teacher = t

	info, ok := d.store.Session()
	d.IsAdmin = policy.CanManageSessions(info, ok)
	return nil
}

// Join adds the viewer to the roster. At most one toggle may be in
// flight; a second call is rejected with ErrToggleInFlight. No
// optimistic mutation is made, so a failure leaves the view state
// accurate as-is.
func (d *Detail) Join(ctx context.Context) error {
	return d.toggle(ctx, d.sessions.Participate)
}

// Leave removes the viewer from the roster, symmetric to Join.
func (d *Detail) Leave(ctx context.Context) error {
	return d.toggle(ctx, d.sessions.Unparticipate)
}

func (d *Detail) toggle(ctx context.Context, call func(ctx context.Context, sessionID, userID int64) error) error {
	d.mu.Lock()
	if d.busy {
		d.mu.Unlock()
		return ErrToggleInFlight
	}
	d.busy = true
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.busy = false
		d.mu.Unlock()
	}()

	info, ok := d.store.Session()
	if !ok {
		return ErrUnauthorized
	}

	if err := call(ctx, d.sessionID, info.ID); err != nil {
		d.notify.Notify(NoticeToggleFailed)
		return errors.Wrap(err, "participation call")
	}

	// server truth only: re-fetch the entity rather than splicing the
	// roster locally
	if err := d.refresh(ctx); err != nil {
		return err
	}
	return nil
}

// Delete removes the session entirely. Offered to administrators only;
// the server still has the final say.
func (d *Detail) Delete(ctx context.Context) error {
	if err := d.sessions.DeleteSession(ctx, d.sessionID); err != nil {
		d.notify.Notify(NoticeDeleteFailed)
		return errors.Wrap(err, "SessionAPI.DeleteSession()")
	}
	d.notify.Notify(NoticeSessionDeleted)
	d.nav.NavigateTo("/sessions")
	return nil
}

func (d *Detail) refresh(ctx context.Context) error {
	s, err := d.sessions.Session(ctx, d.sessionID)
	if err != nil {
		return errors.Wrap(err, "SessionAPI.Session()")
	}
	d.Session = s

	info, ok := d.store.Session()
	d.IsParticipating = ok && s.HasParticipant(info.ID)
	return nil
}

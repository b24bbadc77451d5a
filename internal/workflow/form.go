package workflow

import (
	"context"
	"time"

	"github.com/go-playground/errors/v5"
	"github.com/go-playground/validator/v10"

	"session-booking-client/internal/model"
	"session-booking-client/internal/policy"
	"session-booking-client/internal/session"
)

// Mode selects the form's behavior explicitly at construction, never
// inferred from a route string.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

const dateLayout = "2006-01-02"

// Fields are the editable form values. Validation fails closed: Submit
// refuses to dispatch until every constraint holds.
type Fields struct {
	Name        string `validate:"required"`
	Date        string `validate:"required,datetime=2006-01-02"`
	TeacherID   int64  `validate:"required"`
	Description string `validate:"max=2000"`
}

// Form is the dual-mode create/edit surface for a session. Only
// administrators may reach it; Load redirects anyone else before any
// field is populated.
type Form struct {
	sessions SessionAPI
	teachers TeacherAPI
	store    *session.Store
	notify   Notifier
	nav      Navigator
	validate *validator.Validate

	mode      Mode
	sessionID int64

	// view state, valid after Load
	Fields   Fields
	Teachers []model.Teacher
}

// NewForm builds a create-mode form.
func NewForm(sessions SessionAPI, teachers TeacherAPI, store *session.Store, notify Notifier, nav Navigator) *Form {
	return &Form{
		sessions: sessions,
		teachers: teachers,
		store:    store,
		notify:   notify,
		nav:      nav,
		validate: validator.New(),
		mode:     ModeCreate,
	}
}

// NewEditForm builds an edit-mode form bound to sessionID.
func NewEditForm(sessions SessionAPI, teachers TeacherAPI, store *session.Store, notify Notifier, nav Navigator, sessionID int64) *Form {
	f := NewForm(sessions, teachers, store, notify, nav)
	f.mode = ModeEdit
	f.sessionID = sessionID
	return f
}

func (f *Form) Mode() Mode { return f.mode }

// Load guards admin access, fetches the teacher selection list once,
// and in edit mode populates the fields from the target session.
func (f *Form) Load(ctx context.Context) error {
	info, ok := f.store.Session()
	if !policy.CanManageSessions(info, ok) {
		f.nav.NavigateTo("/sessions")
		return ErrUnauthorized
	}

	ts, err := f.teachers.Teachers(ctx)
	if err != nil {
		return errors.Wrap(err, "TeacherAPI.Teachers()")
	}
	f.Teachers = ts

	if f.mode == ModeEdit {
		s, err := f.sessions.Session(ctx, f.sessionID)
		if err != nil {
			return errors.Wrap(err, "SessionAPI.Session()")
		}
		f.Fields = Fields{
			Name:        s.Name,
			Date:        s.Date.Format(dateLayout),
			TeacherID:   s.TeacherID,
			Description: s.Description,
		}
	}
	return nil
}

// Valid reports whether Submit would dispatch. Views use it to disable
// the submit control.
func (f *Form) Valid() bool {
	return f.check() == nil
}

// check runs field constraints plus the teacher-selectable rule.
func (f *Form) check() error {
	if err := f.validate.Struct(f.Fields); err != nil {
		return err
	}
	for _, t := range f.Teachers {
		if t.ID == f.Fields.TeacherID {
			return nil
		}
	}
	return errors.New("selected teacher is not selectable")
}

// Submit validates and dispatches create or update by mode. Success
// shows the mode-specific notice and navigates to the session list;
// failure shows the mode-specific failure notice and keeps the form
// as entered.
func (f *Form) Submit(ctx context.Context) error {
	if err := f.check(); err != nil {
		// handled entirely locally, no network call
		return err
	}

	date, err := time.Parse(dateLayout, f.Fields.Date)
	if err != nil {
		return err
	}
	s := model.Session{
		Name:        f.Fields.Name,
		Date:        date,
		TeacherID:   f.Fields.TeacherID,
		Description: f.Fields.Description,
	}

	switch f.mode {
	case ModeEdit:
		if _, err := f.sessions.UpdateSession(ctx, f.sessionID, s); err != nil {
			f.notify.Notify(NoticeUpdateFailed)
			return errors.Wrap(err, "SessionAPI.UpdateSession()")
		}
		f.notify.Notify(NoticeSessionUpdated)
	default:
		if _, err := f.sessions.CreateSession(ctx, s); err != nil {
			f.notify.Notify(NoticeCreateFailed)
			return errors.Wrap(err, "SessionAPI.CreateSession()")
		}
		f.notify.Notify(NoticeSessionCreated)
	}

	f.nav.NavigateTo("/sessions")
	return nil
}

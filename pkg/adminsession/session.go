// Package adminsession tracks the lifecycle of a single admin edit form:
// idle until the admin opens a create or edit dialog, editing while the
// draft is being changed, submitting while the write is in flight. One
// session instance guards one form.
package adminsession

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// State identifies where the session is in its lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateCreating   State = "creating"
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
)

var (
	// ErrNotEditing is returned when a draft operation arrives while no
	// dialog is open.
	ErrNotEditing = errors.New("adminsession: no draft in progress")
	// ErrSubmitInFlight is returned when a second submit, a draft change
	// or a cancel arrives while a submit is still running.
	ErrSubmitInFlight = errors.New("adminsession: submit already in flight")
)

// Config wires a session to its owning collection. Validate runs before the
// submit call and a failure never reaches the backend. Refresh runs after a
// successful submit so the owner can reload its list.
type Config[D any] struct {
	Validate     func(draft D) error
	SubmitCreate func(ctx context.Context, draft D) error
	SubmitUpdate func(ctx context.Context, id uuid.UUID, draft D) error
	Refresh      func(ctx context.Context) error
}

// Session is safe for concurrent use.
type Session[D any] struct {
	mu      sync.Mutex
	cfg     Config[D]
	state   State
	draft   D
	editID  uuid.UUID
	lastErr error
}

// New returns an idle session.
func New[D any](cfg Config[D]) *Session[D] {
	return &Session[D]{cfg: cfg, state: StateIdle}
}

// StartCreate opens a create dialog with the given initial draft. Opening a
// new dialog discards whatever the session held before, including a stale
// error from the last submit.
func (s *Session[D]) StartCreate(draft D) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSubmitting {
		return ErrSubmitInFlight
	}
	s.state = StateCreating
	s.draft = draft
	s.editID = uuid.Nil
	s.lastErr = nil
	return nil
}

// StartEdit opens an edit dialog for an existing record, seeded with a copy
// of its current values.
func (s *Session[D]) StartEdit(id uuid.UUID, draft D) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSubmitting {
		return ErrSubmitInFlight
	}
	s.state = StateEditing
	s.draft = draft
	s.editID = id
	s.lastErr = nil
	return nil
}

// UpdateDraft applies a mutation to the draft in place.
func (s *Session[D]) UpdateDraft(mutate func(*D)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateIdle:
		return ErrNotEditing
	case StateSubmitting:
		return ErrSubmitInFlight
	}
	mutate(&s.draft)
	return nil
}

// Submit validates the draft and, if it passes, runs the configured submit
// call. On success the owner refresh runs and the session returns to idle.
// On any failure the session stays in its editing state with the draft
// intact so the admin can correct and retry.
func (s *Session[D]) Submit(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case StateIdle:
		s.mu.Unlock()
		return ErrNotEditing
	case StateSubmitting:
		s.mu.Unlock()
		return ErrSubmitInFlight
	}
	prev := s.state
	draft := s.draft
	editID := s.editID

	if s.cfg.Validate != nil {
		if err := s.cfg.Validate(draft); err != nil {
			s.lastErr = err
			s.mu.Unlock()
			return err
		}
	}
	s.state = StateSubmitting
	s.mu.Unlock()

	var err error
	if prev == StateCreating {
		err = s.cfg.SubmitCreate(ctx, draft)
	} else {
		err = s.cfg.SubmitUpdate(ctx, editID, draft)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = prev
		s.lastErr = err
		return err
	}
	if s.cfg.Refresh != nil {
		if refreshErr := s.cfg.Refresh(ctx); refreshErr != nil {
			// The write landed, so the dialog still closes. The stale
			// list is the owner's problem to surface.
			s.lastErr = refreshErr
			s.state = StateIdle
			var zero D
			s.draft = zero
			s.editID = uuid.Nil
			return refreshErr
		}
	}
	s.state = StateIdle
	s.lastErr = nil
	var zero D
	s.draft = zero
	s.editID = uuid.Nil
	return nil
}

// Cancel closes the dialog and discards the draft.
func (s *Session[D]) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSubmitting {
		return ErrSubmitInFlight
	}
	s.state = StateIdle
	var zero D
	s.draft = zero
	s.editID = uuid.Nil
	s.lastErr = nil
	return nil
}

// State reports the current lifecycle state.
func (s *Session[D]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Draft returns a copy of the current draft and whether one exists.
func (s *Session[D]) Draft() (D, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle {
		var zero D
		return zero, false
	}
	return s.draft, true
}

// EditingID returns the record under edit, if the session is editing an
// existing one.
func (s *Session[D]) EditingID() (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editID, s.editID != uuid.Nil
}

// Err returns the error retained from the last failed submit, if any.
func (s *Session[D]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

package contact

import (
	"context"
	"fmt"
)

// State is the lifecycle of one contact form instance.
//
// A State starts empty, is mutated field by field via [State.Change], and
// is cleared after a successful [State.Submit]. Each page render owns its
// own State; it is not safe for concurrent use.
type State struct {
	Form       Form
	Errors     Errors
	Submitting bool
	Submitted  bool
}

// NewState returns an empty, untouched form.
func NewState() *State {
	return &State{Errors: make(Errors)}
}

// Change sets field to value and clears any pending error for that field.
// Unknown fields are ignored.
func (s *State) Change(field Field, value string) {
	if !s.Form.set(field, value) {
		return
	}
	if _, ok := s.Errors[field]; ok {
		delete(s.Errors, field)
	}
}

// Apply calls [State.Change] for every field of f.
func (s *State) Apply(f Form) {
	for _, field := range Fields {
		s.Change(field, f.Value(field))
	}
}

// Submit validates the form and, when valid, hands it to sub.
//
// It returns false with a nil error when validation fails; the failures are
// stored in s.Errors. On a successful submission the state moves to
// Submitted and all fields and errors are cleared. A submitter error is
// returned and the entered values are kept so the user can retry.
func (s *State) Submit(ctx context.Context, sub Submitter) (bool, error) {
	errs := Validate(s.Form)
	s.Errors = errs
	if !errs.Valid() {
		return false, nil
	}

	s.Submitting = true
	defer func() { s.Submitting = false }()

	if err := sub.Submit(ctx, s.Form); err != nil {
		return false, fmt.Errorf("submit contact form: %w", err)
	}

	s.Submitted = true
	s.Form = Form{}
	s.Errors = make(Errors)
	return true, nil
}

// Reset returns to the empty, untouched form ("send another message").
func (s *State) Reset() {
	*s = State{Errors: make(Errors)}
}

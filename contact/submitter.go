package contact

import (
	"context"
	"time"
)

// DefaultSubmitDelay is the simulated network latency of [SimulatedSubmitter].
const DefaultSubmitDelay = time.Second

// Submitter delivers a validated form.
type Submitter interface {
	Submit(ctx context.Context, f Form) error
}

// SubmitterFunc adapts a function to [Submitter].
type SubmitterFunc func(ctx context.Context, f Form) error

// Submit calls fn(ctx, f).
func (fn SubmitterFunc) Submit(ctx context.Context, f Form) error {
	return fn(ctx, f)
}

// SimulatedSubmitter pretends to send the form by waiting Delay.
// It never talks to a real backend.
type SimulatedSubmitter struct {
	// Delay is the simulated latency. Zero means [DefaultSubmitDelay];
	// a negative value disables the wait.
	Delay time.Duration
}

// Submit waits for the configured delay or until ctx is done.
func (s SimulatedSubmitter) Submit(ctx context.Context, _ Form) error {
	delay := s.Delay
	if delay == 0 {
		delay = DefaultSubmitDelay
	}
	if delay < 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

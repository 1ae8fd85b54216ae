package session

import (
	"context"
	"time"
)

// Deferrer runs the simulated delays of the shell: payment processing and
// the chat bot typing. The rule engine never sees it.
type Deferrer interface {
	// Wait blocks for delay or until ctx is done.
	Wait(ctx context.Context, delay time.Duration) error
	// After runs fn once delay has elapsed, without blocking the caller.
	After(delay time.Duration, fn func())
}

// TimerDeferrer uses real timers
type TimerDeferrer struct{}

func (TimerDeferrer) Wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (TimerDeferrer) After(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}

// ImmediateDeferrer skips every delay and runs deferred work inline.
type ImmediateDeferrer struct{}

func (ImmediateDeferrer) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

func (ImmediateDeferrer) After(_ time.Duration, fn func()) {
	fn()
}

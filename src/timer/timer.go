// Package timer provides the suspension points of a car's processing loop:
// the travel tick between floors and the door dwell.
package timer

import (
	"context"
	"sync"
	"time"
)

// Waiter blocks for a policy delay. Wait returns ctx.Err() if ctx ends
// first.
type Waiter interface {
	Wait(ctx context.Context, d time.Duration) error
}

// Real sleeps on the wall clock.
type Real struct{}

func (Real) Wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer stopTimer(t)
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Scaled stretches or compresses every delay by Factor before waiting.
type Scaled struct {
	Inner  Waiter
	Factor float64
}

func (s Scaled) Wait(ctx context.Context, d time.Duration) error {
	return s.Inner.Wait(ctx, time.Duration(float64(d)*s.Factor))
}

// Instant never blocks.
type Instant struct{}

func (Instant) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// Stepper lets a test release waits one at a time. After Release every
// pending and future wait returns immediately.
type Stepper struct {
	steps    chan struct{}
	released chan struct{}
	once     sync.Once
}

func NewStepper() *Stepper {
	return &Stepper{
		steps:    make(chan struct{}),
		released: make(chan struct{}),
	}
}

func (s *Stepper) Wait(ctx context.Context, _ time.Duration) error {
	select {
	case <-s.steps:
		return nil
	case <-s.released:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Step completes exactly one blocked wait, blocking until a waiter takes it.
func (s *Stepper) Step(ctx context.Context) error {
	select {
	case s.steps <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Stepper) Release() {
	s.once.Do(func() { close(s.released) })
}

// Stops the timer and drains its channel.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

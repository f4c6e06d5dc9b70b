package dispatcher

import (
	"log/slog"

	"elevdispatch/src/timer"
)

// Bid is one car's cost for a hall call.
type Bid struct {
	CarID int
	Cost  float64
}

type Option func(*Dispatcher)

// WithWaiter sets the delay source shared by every car.
func WithWaiter(w timer.Waiter) Option {
	return func(d *Dispatcher) { d.waiter = w }
}

// WithCostFunc replaces CalculateCost.
func WithCostFunc(fn CostFunc) Option {
	return func(d *Dispatcher) { d.cost = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

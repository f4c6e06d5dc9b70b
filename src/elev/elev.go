package elev

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"elevdispatch/src/config"
	"elevdispatch/src/timer"
	"elevdispatch/src/types"
)

// Car is one elevator cab. Requests may be added from any goroutine; the
// car runs at most one processing loop at a time to serve them.
type Car struct {
	id     int
	cfg    config.Config
	waiter timer.Waiter
	notify func(types.Event)
	onStop func(carID int)
	logger *slog.Logger

	cmds    chan carCmd
	ctx     context.Context
	cancel  context.CancelFunc
	mgrDone chan struct{}
	loops   sync.WaitGroup
}

type Option func(*Car)

// WithWaiter replaces the wall-clock delays of the processing loop.
func WithWaiter(w timer.Waiter) Option {
	return func(c *Car) { c.waiter = w }
}

// WithNotifier receives every state transition. fn runs on the car's state
// manager and must not block or call back into the car.
func WithNotifier(fn func(types.Event)) Option {
	return func(c *Car) { c.notify = fn }
}

// WithStopHook runs after each completed stop, once the doors are closed.
func WithStopHook(fn func(carID int)) Option {
	return func(c *Car) { c.onStop = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Car) { c.logger = l }
}

// NewCar creates an idle car at floor 1. The car stops when ctx is done or
// Close is called.
func NewCar(ctx context.Context, id int, cfg config.Config, opts ...Option) *Car {
	c := &Car{
		id:      id,
		cfg:     cfg,
		waiter:  timer.Real{},
		notify:  func(types.Event) {},
		onStop:  func(int) {},
		cmds:    make(chan carCmd),
		mgrDone: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.logger = c.logger.With("car", id)
	c.ctx, c.cancel = context.WithCancel(ctx)

	c.startStateMgr(&CarState{
		ID:    id,
		Floor: 1,
		State: types.Idle,
		Dir:   types.DirNone,
	})
	c.logger.Debug("Car initialized", "floor", 1)
	return c
}

func (c *Car) ID() int {
	return c.id
}

// AddDestination registers a cab button press for floor.
func (c *Car) AddDestination(floor int) error {
	if !c.cfg.ValidFloor(floor) {
		return fmt.Errorf("%w: %d not in [1, %d]", types.ErrInvalidFloor, floor, c.cfg.MaxFloors)
	}
	return c.exec(func(state *CarState) {
		if state.Requests.AddDestination(floor) {
			c.logger.Debug("Destination added", "floor", floor)
		}
		c.enqueued(state)
	})
}

// AddExternalRequest registers a hall call assigned to this car. A later
// call for the same floor replaces the stored direction.
func (c *Car) AddExternalRequest(floor int, dir types.Direction) error {
	if !c.cfg.ValidFloor(floor) {
		return fmt.Errorf("%w: %d not in [1, %d]", types.ErrInvalidFloor, floor, c.cfg.MaxFloors)
	}
	if !dir.IsHall() {
		return fmt.Errorf("%w: hall call must be Up or Down, got %s", types.ErrInvalidDirection, dir)
	}
	return c.exec(func(state *CarState) {
		state.Requests.AddHall(types.HallCall{Floor: floor, Direction: dir})
		c.logger.Debug("Hall call added", "floor", floor, "direction", dir)
		c.enqueued(state)
	})
}

// SetOccupancy records how many passengers are aboard. It is reported in
// status snapshots and not used for dispatching.
func (c *Car) SetOccupancy(n int) error {
	if n < 0 || n > c.cfg.MaxCapacity {
		return fmt.Errorf("%w: %d not in [0, %d]", types.ErrInvalidOccupancy, n, c.cfg.MaxCapacity)
	}
	return c.exec(func(state *CarState) {
		state.Occupancy = n
	})
}

// Status returns a consistent snapshot of the car.
func (c *Car) Status() (types.CarStatus, error) {
	s, err := c.snapshot()
	if err != nil {
		return types.CarStatus{}, err
	}
	status := types.CarStatus{
		ID:           s.ID,
		Floor:        s.Floor,
		State:        s.State,
		Direction:    s.Dir,
		Occupancy:    s.Occupancy,
		Capacity:     c.cfg.MaxCapacity,
		Destinations: s.Requests.Destinations,
		External:     s.Requests.ExternalFloors(),
		HallCalls:    s.Requests.Hall,
	}
	if status.Destinations == nil {
		status.Destinations = []int{}
	}
	if status.HallCalls == nil {
		status.HallCalls = []types.HallCall{}
	}
	return status, nil
}

// Close stops the car and waits for its processing loop to exit. Queued
// requests are abandoned.
func (c *Car) Close() {
	c.cancel()
	<-c.mgrDone
	c.loops.Wait()
}

// enqueued recomputes the direction after a new request and starts the
// processing loop unless one is already running.
func (c *Car) enqueued(state *CarState) {
	c.setDirection(state, state.Requests.Direction(state.Floor, state.Dir))
	if state.Processing {
		return
	}
	state.Processing = true
	c.loops.Add(1)
	go c.processRequests()
}

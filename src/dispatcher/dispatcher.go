package dispatcher

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"elevdispatch/src/config"
	"elevdispatch/src/elev"
	"elevdispatch/src/timer"
	"elevdispatch/src/types"
)

// Dispatcher assigns hall calls to a fixed fleet of cars.
type Dispatcher struct {
	cfg    config.Config
	cars   []*elev.Car
	waiter timer.Waiter
	cost   CostFunc
	logger *slog.Logger
	events *broadcaster

	// mu guards pending and serializes intake with reconsideration sweeps.
	mu      sync.Mutex
	pending []types.HallCall
}

// New builds cfg.Cars idle cars at floor 1, numbered from 1.
func New(cfg config.Config, opts ...Option) (*Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Dispatcher{
		cfg:    cfg,
		waiter: timer.Real{},
		cost:   CalculateCost,
		events: newBroadcaster(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}

	ctx := context.Background()
	for id := 1; id <= cfg.Cars; id++ {
		d.cars = append(d.cars, elev.NewCar(ctx, id, cfg,
			elev.WithWaiter(d.waiter),
			elev.WithNotifier(d.events.publish),
			elev.WithStopHook(d.onCarStop),
			elev.WithLogger(d.logger),
		))
	}
	d.logger.Info("Dispatcher initialized", "cars", cfg.Cars, "floors", cfg.MaxFloors)
	return d, nil
}

// NewDispatcher builds a fleet with the default timing policy.
func NewDispatcher(carCount, maxFloors int, opts ...Option) (*Dispatcher, error) {
	cfg := config.Default()
	cfg.Cars = carCount
	cfg.MaxFloors = maxFloors
	return New(cfg, opts...)
}

func (d *Dispatcher) Config() config.Config {
	return d.cfg
}

// Car returns the car with the given 1-based id, or nil.
func (d *Dispatcher) Car(id int) *elev.Car {
	if id < 1 || id > len(d.cars) {
		return nil
	}
	return d.cars[id-1]
}

func (d *Dispatcher) Cars() []*elev.Car {
	return append([]*elev.Car(nil), d.cars...)
}

// HandleExternalRequest validates a hall call and hands it to the cheapest
// car. A call that is already pending or already held by a car is ignored.
// When no car can take it, the call is kept as pending and
// ErrNoAssignableCar is returned.
func (d *Dispatcher) HandleExternalRequest(floor int, dir types.Direction) error {
	if !d.cfg.ValidFloor(floor) {
		d.logger.Warn("Rejected hall call", "floor", floor, "direction", dir, "reason", "floor out of range")
		return fmt.Errorf("%w: %d not in [1, %d]", types.ErrInvalidFloor, floor, d.cfg.MaxFloors)
	}
	if !dir.IsHall() {
		d.logger.Warn("Rejected hall call", "floor", floor, "direction", dir, "reason", "direction must be Up or Down")
		return fmt.Errorf("%w: hall call must be Up or Down, got %s", types.ErrInvalidDirection, dir)
	}
	call := types.HallCall{Floor: floor, Direction: dir}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.isPending(call) {
		d.logger.Info("Hall call already queued", "call", call)
		return nil
	}
	statuses := d.statuses()
	for _, s := range statuses {
		if s.HasHallCall(call) {
			d.logger.Info("Hall call already being served", "call", call, "car", s.ID)
			return nil
		}
	}

	if d.assign(call, statuses) {
		return nil
	}
	d.pending = append(d.pending, call)
	d.logger.Warn("Hall call queued, no assignable car", "call", call)
	return fmt.Errorf("%w: %s queued", types.ErrNoAssignableCar, call)
}

// GetSystemStatus returns a snapshot of every running car in fleet order.
func (d *Dispatcher) GetSystemStatus() []types.CarStatus {
	return d.statuses()
}

// Idle reports whether every car has settled and nothing is pending.
func (d *Dispatcher) Idle() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.pending) > 0 {
		return false
	}
	for _, s := range d.statuses() {
		if !s.Settled() {
			return false
		}
	}
	return true
}

// Subscribe returns a channel of car events. A buffer of zero or less uses
// the configured event buffer. Call cancel to unsubscribe.
func (d *Dispatcher) Subscribe(buffer int) (<-chan types.Event, func()) {
	if buffer <= 0 {
		buffer = d.cfg.EventBuffer
	}
	return d.events.subscribe(buffer)
}

// Dropped counts events discarded because a subscriber was full.
func (d *Dispatcher) Dropped() uint64 {
	return d.events.dropped.Load()
}

// Close stops every car and closes all subscriptions.
func (d *Dispatcher) Close() {
	for _, car := range d.cars {
		car.Close()
	}
	d.events.close()
}

// findAssignee picks the lowest cost; the first car in fleet order wins ties.
func (d *Dispatcher) findAssignee(call types.HallCall, statuses []types.CarStatus) (Bid, bool) {
	var best Bid
	found := false
	for _, s := range statuses {
		cost := d.cost(s, call.Floor, call.Direction, d.cfg.MaxFloors)
		if math.IsNaN(cost) || math.IsInf(cost, 1) {
			continue
		}
		if !found || cost < best.Cost {
			best = Bid{CarID: s.ID, Cost: cost}
			found = true
		}
	}
	return best, found
}

// statuses skips cars that have been closed.
func (d *Dispatcher) statuses() []types.CarStatus {
	out := make([]types.CarStatus, 0, len(d.cars))
	for _, car := range d.cars {
		s, err := car.Status()
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Contains the processing loop and state transitions for a single car.
package elev

import (
	"time"

	"github.com/google/uuid"

	"elevdispatch/src/types"
)

type action int

const (
	actionIdle action = iota
	actionMove
	actionServe
)

// processRequests drives the car until both queues drain. Only one loop
// runs per car; enqueued starts it. Waits happen outside the state manager
// so new requests and status queries are never held up by movement.
func (c *Car) processRequests() {
	defer c.loops.Done()
	for {
		var next action
		if err := c.exec(func(state *CarState) { next = c.chooseAction(state) }); err != nil {
			return
		}

		switch next {
		case actionIdle:
			return
		case actionServe:
			if err := c.dwell(); err != nil {
				return
			}
		case actionMove:
			if err := c.waiter.Wait(c.ctx, c.cfg.MovementDelay); err != nil {
				return
			}
			var stopped bool
			if err := c.exec(func(state *CarState) { stopped = c.arrive(state) }); err != nil {
				return
			}
			if stopped {
				if err := c.dwell(); err != nil {
					return
				}
			}
		}
	}
}

// chooseAction re-evaluates the queues from Idle or DoorClosed.
//   - Nothing queued: settle to Idle and end the loop
//   - Next stop is this floor: open the doors in place
//   - Otherwise: move toward the next stop
func (c *Car) chooseAction(state *CarState) action {
	if state.Requests.Empty() {
		c.settle(state)
		return actionIdle
	}

	c.setDirection(state, state.Requests.Direction(state.Floor, state.Dir))
	if state.Dir == types.DirNone {
		if state.Requests.ShouldStop(state.Floor, types.DirNone) {
			c.openDoors(state)
			return actionServe
		}
		c.settle(state)
		return actionIdle
	}

	c.transition(state, types.Moving, types.EventDeparted)
	return actionMove
}

// arrive moves the car one floor and reports whether it stopped there.
func (c *Car) arrive(state *CarState) bool {
	next := state.Floor + state.Dir.Step()
	if c.cfg.ValidFloor(next) {
		state.Floor = next
	}

	// Reverse at the ends of the shaft so calls on the far side get served.
	atTerminal := state.Floor == 1 || state.Floor == c.cfg.MaxFloors
	if atTerminal && state.Dir != types.DirNone && !state.Requests.Empty() {
		c.setDirection(state, state.Dir.Opposite())
	}
	c.emit(state, types.EventArrived)

	if !state.Requests.ShouldStop(state.Floor, state.Dir) {
		c.logger.Debug("Continuing past floor", "floor", state.Floor, "direction", state.Dir)
		return false
	}
	c.openDoors(state)
	return true
}

// openDoors clears every request at the current floor.
func (c *Car) openDoors(state *CarState) {
	state.Requests.ClearFloor(state.Floor)
	c.transition(state, types.DoorOpen, types.EventDoorsOpened)
	c.logger.Info("Stopped, doors open", "floor", state.Floor, "direction", state.Dir)
}

// dwell holds the doors open, closes them and notifies the stop hook.
func (c *Car) dwell() error {
	if err := c.waiter.Wait(c.ctx, c.cfg.DoorDwell); err != nil {
		return err
	}
	if err := c.exec(func(state *CarState) {
		c.transition(state, types.DoorClosed, types.EventDoorsClosed)
		c.logger.Debug("Doors closed", "floor", state.Floor)
	}); err != nil {
		return err
	}
	if err := c.waiter.Wait(c.ctx, c.cfg.DoorCloseDelay); err != nil {
		return err
	}
	c.onStop(c.id)
	return nil
}

func (c *Car) settle(state *CarState) {
	state.Processing = false
	c.setDirection(state, types.DirNone)
	c.transition(state, types.Idle, types.EventIdle)
	c.logger.Debug("Car idle", "floor", state.Floor)
}

func (c *Car) transition(state *CarState, to types.MotionState, kind types.EventKind) {
	if state.State == to {
		return
	}
	state.State = to
	c.emit(state, kind)
}

func (c *Car) setDirection(state *CarState, dir types.Direction) {
	if state.Dir == dir {
		return
	}
	state.Dir = dir
	c.emit(state, types.EventDirectionChanged)
}

func (c *Car) emit(state *CarState, kind types.EventKind) {
	c.notify(types.Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		CarID:     c.id,
		Floor:     state.Floor,
		State:     state.State,
		Direction: state.Dir,
		Time:      time.Now(),
	})
}

package elev

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"elevdispatch/src/types"
)

// startStateMgr starts the goroutine that serializes access to the car state.
func (c *Car) startStateMgr(state *CarState) {
	go func() {
		defer close(c.mgrDone)
		for {
			select {
			case cmd := <-c.cmds:
				cmd.Exec(state)
			case <-c.ctx.Done():
				return
			}
		}
	}()
}

// exec runs fn on the state manager and waits for it to finish.
func (c *Car) exec(fn func(state *CarState)) error {
	done := make(chan struct{})
	cmd := carCmd{Exec: func(state *CarState) {
		fn(state)
		close(done)
	}}
	select {
	case c.cmds <- cmd:
	case <-c.ctx.Done():
		return fmt.Errorf("car %d: %w", c.id, types.ErrCarStopped)
	}
	<-done
	return nil
}

// snapshot deep-copies the car state so the caller never shares the queues.
func (c *Car) snapshot() (CarState, error) {
	var clone CarState
	var copyErr error
	if err := c.exec(func(state *CarState) {
		copyErr = deepcopy.Copy(&clone, state)
	}); err != nil {
		return CarState{}, err
	}
	if copyErr != nil {
		return CarState{}, fmt.Errorf("car %d: snapshot: %w", c.id, copyErr)
	}
	return clone, nil
}

// State types are defined in elev package so the state manager can hand
// closures a *CarState.
package elev

import (
	"elevdispatch/src/requests"
	"elevdispatch/src/types"
)

// CarState is everything a car owns. Only the state manager goroutine
// touches it; everyone else works on deep copies.
type CarState struct {
	ID         int
	Floor      int
	State      types.MotionState
	Dir        types.Direction
	Occupancy  int
	Requests   requests.Queue
	Processing bool
}

// carCmd is an operation run by the state manager.
type carCmd struct {
	Exec func(state *CarState)
}

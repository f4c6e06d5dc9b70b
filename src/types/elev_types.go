package types

// CarStatus is a read-only snapshot of one car, taken atomically by the
// goroutine that owns the car's state.
type CarStatus struct {
	ID           int         `json:"id" yaml:"id"`
	Floor        int         `json:"floor" yaml:"floor"`
	State        MotionState `json:"state" yaml:"state"`
	Direction    Direction   `json:"direction" yaml:"direction"`
	Occupancy    int         `json:"occupancy" yaml:"occupancy"`
	Capacity     int         `json:"capacity" yaml:"capacity"`
	Destinations []int       `json:"destinations" yaml:"destinations"`
	External     []int       `json:"external" yaml:"external"`
	HallCalls    []HallCall  `json:"hall_calls" yaml:"hall_calls"`
}

// Settled reports whether the car is idle with nothing left to serve.
func (s CarStatus) Settled() bool {
	return s.State == Idle && len(s.Destinations) == 0 && len(s.HallCalls) == 0
}

// HasHallCall reports whether the car holds the exact floor+direction call.
func (s CarStatus) HasHallCall(call HallCall) bool {
	for _, h := range s.HallCalls {
		if h == call {
			return true
		}
	}
	return false
}

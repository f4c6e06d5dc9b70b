package types

import "time"

type EventKind string

const (
	EventDirectionChanged EventKind = "direction_changed"
	EventDeparted         EventKind = "departed"
	EventArrived          EventKind = "arrived"
	EventDoorsOpened      EventKind = "doors_opened"
	EventDoorsClosed      EventKind = "doors_closed"
	EventIdle             EventKind = "idle"
)

// Event is published on every car state transition.
type Event struct {
	ID        string      `json:"id"`
	Kind      EventKind   `json:"kind"`
	CarID     int         `json:"car_id"`
	Floor     int         `json:"floor"`
	State     MotionState `json:"state"`
	Direction Direction   `json:"direction"`
	Time      time.Time   `json:"time"`
}

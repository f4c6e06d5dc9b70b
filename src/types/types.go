package types

import (
	"fmt"
	"strings"
)

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirNone:
		return "None"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Step is the floor delta of one movement tick in direction d.
func (d Direction) Step() int {
	switch d {
	case DirUp:
		return 1
	case DirDown:
		return -1
	}
	return 0
}

// Opposite flips Up and Down. None reverses to Up, matching a car that
// hits a terminal floor before it has picked a direction.
func (d Direction) Opposite() Direction {
	if d == DirUp {
		return DirDown
	}
	return DirUp
}

// IsHall reports whether d is a valid hall-call direction.
func (d Direction) IsHall() bool {
	return d == DirUp || d == DirDown
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection accepts "up", "down" and "none" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "none", "":
		return DirNone, nil
	}
	return DirNone, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

type MotionState int

const (
	Idle MotionState = iota
	Moving
	DoorOpen
	DoorClosed
)

func (s MotionState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Moving:
		return "Moving"
	case DoorOpen:
		return "DoorOpen"
	case DoorClosed:
		return "DoorClosed"
	}
	return fmt.Sprintf("MotionState(%d)", int(s))
}

func (s MotionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *MotionState) UnmarshalText(text []byte) error {
	for _, candidate := range []MotionState{Idle, Moving, DoorOpen, DoorClosed} {
		if strings.EqualFold(candidate.String(), string(text)) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown motion state %q", text)
}

// HallCall is a request made from a floor, not yet tied to a car.
type HallCall struct {
	Floor     int       `json:"floor" yaml:"floor"`
	Direction Direction `json:"direction" yaml:"direction"`
}

func (h HallCall) String() string {
	return fmt.Sprintf("Hall%s(%d)", h.Direction, h.Floor)
}

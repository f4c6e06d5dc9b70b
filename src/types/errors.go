package types

import "errors"

var (
	ErrInvalidFloor     = errors.New("invalid floor")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidOccupancy = errors.New("invalid occupancy")
	ErrNoAssignableCar  = errors.New("no assignable car")
	ErrCarStopped       = errors.New("car stopped")
)

package dispatcher

import "elevdispatch/src/types"

// CostFunc scores a car for a hall call. Lower is better; +Inf or NaN
// marks the car as unable to take the call.
type CostFunc func(car types.CarStatus, targetFloor int, requested types.Direction, maxFloors int) float64

// CalculateCost ranks a car for a hall call at targetFloor.
//   - idle car: the distance
//   - moving toward the target in the requested direction: half the distance
//   - target already behind the car: (maxFloors + distance) * 10, the car
//     has to finish its sweep and come back
//   - anything else: five times the distance
func CalculateCost(car types.CarStatus, targetFloor int, requested types.Direction, maxFloors int) float64 {
	distance := float64(abs(car.Floor - targetFloor))

	switch {
	case car.Direction == types.DirNone:
		return distance
	case car.Direction == requested && ahead(car, targetFloor):
		return distance * 0.5
	case behind(car, targetFloor):
		return (float64(maxFloors) + distance) * 10
	}
	return distance * 5
}

func ahead(car types.CarStatus, floor int) bool {
	switch car.Direction {
	case types.DirUp:
		return floor >= car.Floor
	case types.DirDown:
		return floor <= car.Floor
	}
	return false
}

func behind(car types.CarStatus, floor int) bool {
	switch car.Direction {
	case types.DirUp:
		return floor < car.Floor
	case types.DirDown:
		return floor > car.Floor
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

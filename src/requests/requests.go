// Package requests holds the per-car request queues and the policy that
// decides where a car goes next and where it stops.
package requests

import "elevdispatch/src/types"

// Queue tracks cab destinations and hall calls for one car. Both
// collections keep insertion order, which decides ties between equally
// close floors. Fields are exported so snapshots can deep-copy them.
type Queue struct {
	Destinations []int
	Hall         []types.HallCall
}

func (q *Queue) Empty() bool {
	return len(q.Destinations) == 0 && len(q.Hall) == 0
}

// AddDestination inserts floor once. Re-adding a queued floor is a no-op.
func (q *Queue) AddDestination(floor int) bool {
	for _, f := range q.Destinations {
		if f == floor {
			return false
		}
	}
	q.Destinations = append(q.Destinations, floor)
	return true
}

// AddHall stores the call for its floor, overwriting the direction of an
// existing entry in place.
func (q *Queue) AddHall(call types.HallCall) {
	for i := range q.Hall {
		if q.Hall[i].Floor == call.Floor {
			q.Hall[i].Direction = call.Direction
			return
		}
	}
	q.Hall = append(q.Hall, call)
}

func (q *Queue) HasDestination(floor int) bool {
	for _, f := range q.Destinations {
		if f == floor {
			return true
		}
	}
	return false
}

func (q *Queue) HallAt(floor int) (types.Direction, bool) {
	for _, h := range q.Hall {
		if h.Floor == floor {
			return h.Direction, true
		}
	}
	return types.DirNone, false
}

// ClearFloor drops every request at floor, cab and hall alike.
func (q *Queue) ClearFloor(floor int) {
	dests := q.Destinations[:0]
	for _, f := range q.Destinations {
		if f != floor {
			dests = append(dests, f)
		}
	}
	q.Destinations = dests

	hall := q.Hall[:0]
	for _, h := range q.Hall {
		if h.Floor != floor {
			hall = append(hall, h)
		}
	}
	q.Hall = hall
}

// floors lists destinations first, then hall-call floors.
func (q *Queue) floors() []int {
	all := make([]int, 0, len(q.Destinations)+len(q.Hall))
	all = append(all, q.Destinations...)
	for _, h := range q.Hall {
		all = append(all, h.Floor)
	}
	return all
}

// ExternalFloors lists the hall-call floors in insertion order.
func (q *Queue) ExternalFloors() []int {
	out := make([]int, 0, len(q.Hall))
	for _, h := range q.Hall {
		out = append(out, h.Floor)
	}
	return out
}

// NextStop picks the floor the car should head for.
//  1. Moving up: the lowest request at or above the current floor.
//  2. Moving down: the highest request at or below the current floor.
//  3. Otherwise the closest request; the first one found wins ties.
//
// A request at the current floor only counts as ahead when the car would
// stop for it while travelling in dir.
func (q *Queue) NextStop(floor int, dir types.Direction) (int, bool) {
	all := q.floors()
	if len(all) == 0 {
		return 0, false
	}
	hereAhead := q.ShouldStop(floor, dir)

	switch dir {
	case types.DirUp:
		best, found := 0, false
		for _, f := range all {
			if (f > floor || (f == floor && hereAhead)) && (!found || f < best) {
				best, found = f, true
			}
		}
		if found {
			return best, true
		}
	case types.DirDown:
		best, found := 0, false
		for _, f := range all {
			if (f < floor || (f == floor && hereAhead)) && (!found || f > best) {
				best, found = f, true
			}
		}
		if found {
			return best, true
		}
	}

	closest := all[0]
	for _, f := range all[1:] {
		if abs(f-floor) < abs(closest-floor) {
			closest = f
		}
	}
	return closest, true
}

// Direction resolves the travel direction toward the next stop. None means
// either nothing is queued or the next stop is the current floor.
func (q *Queue) Direction(floor int, dir types.Direction) types.Direction {
	next, ok := q.NextStop(floor, dir)
	switch {
	case !ok:
		return types.DirNone
	case next > floor:
		return types.DirUp
	case next < floor:
		return types.DirDown
	}
	return types.DirNone
}

// ShouldStop reports whether a car at floor travelling in dir must open
// its doors. Hall calls against the travel direction are skipped until the
// car turns around.
func (q *Queue) ShouldStop(floor int, dir types.Direction) bool {
	if q.HasDestination(floor) {
		return true
	}
	hallDir, ok := q.HallAt(floor)
	return ok && (dir == types.DirNone || hallDir == dir)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package dispatcher

import (
	"slices"

	"elevdispatch/src/types"
)

// assign hands call to the cheapest car. Caller holds d.mu.
func (d *Dispatcher) assign(call types.HallCall, statuses []types.CarStatus) bool {
	bid, ok := d.findAssignee(call, statuses)
	if !ok {
		return false
	}
	if err := d.Car(bid.CarID).AddExternalRequest(call.Floor, call.Direction); err != nil {
		d.logger.Warn("Assignment failed", "call", call, "car", bid.CarID, "error", err)
		return false
	}
	d.logger.Info("Assigning hall call", "call", call, "car", bid.CarID, "cost", bid.Cost)
	return true
}

// Reconsider retries every pending hall call. Calls that still cannot be
// assigned stay pending in their original order.
func (d *Dispatcher) Reconsider() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.pending) == 0 {
		return
	}

	queued := d.pending
	d.pending = nil
	for _, call := range queued {
		// Statuses are re-read per call since each assignment moves a car.
		if !d.assign(call, d.statuses()) {
			d.pending = append(d.pending, call)
		}
	}
	d.logger.Debug("Reconsidered pending hall calls", "before", len(queued), "after", len(d.pending))
}

// Pending returns a copy of the unassigned hall calls.
func (d *Dispatcher) Pending() []types.HallCall {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.pending)
}

// onCarStop runs on a car's processing loop after each completed stop.
func (d *Dispatcher) onCarStop(int) {
	d.Reconsider()
}

func (d *Dispatcher) isPending(call types.HallCall) bool {
	return slices.Contains(d.pending, call)
}

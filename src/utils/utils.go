package utils

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"elevdispatch/src/types"
)

// FormatStatus writes one row per car.
func FormatStatus(w io.Writer, statuses []types.CarStatus) {
	fmt.Fprintf(w, "%-4s %-6s %-11s %-5s %-9s %-14s %s\n",
		"CAR", "FLOOR", "STATE", "DIR", "LOAD", "DESTINATIONS", "HALL CALLS")
	for _, s := range statuses {
		fmt.Fprintf(w, "%-4d %-6d %-11s %-5s %-9s %-14s %s\n",
			s.ID, s.Floor, s.State, s.Direction,
			fmt.Sprintf("%d/%d", s.Occupancy, s.Capacity),
			joinFloors(s.Destinations), joinHallCalls(s.HallCalls))
	}
}

// FormatEvent renders an event as a single log-style line.
func FormatEvent(e types.Event) string {
	return fmt.Sprintf("%s car=%d floor=%d state=%s dir=%s %s",
		e.Time.Format("15:04:05.000"), e.CarID, e.Floor, e.State, e.Direction, e.Kind)
}

func joinFloors(floors []int) string {
	if len(floors) == 0 {
		return "-"
	}
	parts := make([]string, len(floors))
	for i, f := range floors {
		parts[i] = strconv.Itoa(f)
	}
	return strings.Join(parts, ",")
}

func joinHallCalls(calls []types.HallCall) string {
	if len(calls) == 0 {
		return "-"
	}
	parts := make([]string, len(calls))
	for i, c := range calls {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

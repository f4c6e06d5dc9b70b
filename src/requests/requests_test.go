package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevdispatch/src/types"
)

func TestAddDestinationIsIdempotent(t *testing.T) {
	var q Queue
	assert.True(t, q.AddDestination(4))
	assert.False(t, q.AddDestination(4))
	assert.Equal(t, []int{4}, q.Destinations)
}

func TestAddHallOverwritesInPlace(t *testing.T) {
	var q Queue
	q.AddHall(types.HallCall{Floor: 3, Direction: types.DirUp})
	q.AddHall(types.HallCall{Floor: 7, Direction: types.DirDown})
	q.AddHall(types.HallCall{Floor: 3, Direction: types.DirDown})

	assert.Equal(t, []types.HallCall{
		{Floor: 3, Direction: types.DirDown},
		{Floor: 7, Direction: types.DirDown},
	}, q.Hall)
	assert.Equal(t, []int{3, 7}, q.ExternalFloors())
}

func TestClearFloorRemovesBothQueues(t *testing.T) {
	var q Queue
	q.AddDestination(5)
	q.AddDestination(2)
	q.AddHall(types.HallCall{Floor: 5, Direction: types.DirUp})
	q.AddHall(types.HallCall{Floor: 6, Direction: types.DirUp})

	q.ClearFloor(5)

	assert.Equal(t, []int{2}, q.Destinations)
	assert.Equal(t, []types.HallCall{{Floor: 6, Direction: types.DirUp}}, q.Hall)
	assert.False(t, q.Empty())

	q.ClearFloor(2)
	q.ClearFloor(6)
	assert.True(t, q.Empty())
}

func TestNextStop(t *testing.T) {
	tests := []struct {
		name  string
		dests []int
		hall  []types.HallCall
		floor int
		dir   types.Direction
		want  int
	}{
		{"up takes lowest ahead", []int{9, 6, 2}, nil, 5, types.DirUp, 6},
		{"up counts current floor as ahead", []int{5, 8}, nil, 5, types.DirUp, 5},
		{"skipped hall call here is not ahead", []int{8}, []types.HallCall{{Floor: 5, Direction: types.DirDown}}, 5, types.DirUp, 8},
		{"lone skipped hall call falls back to itself", nil, []types.HallCall{{Floor: 5, Direction: types.DirDown}}, 5, types.DirUp, 5},
		{"down takes highest ahead", []int{1, 3, 8}, nil, 5, types.DirDown, 3},
		{"up with nothing ahead falls back to closest", []int{1, 3}, nil, 5, types.DirUp, 3},
		{"idle picks closest", []int{9}, []types.HallCall{{Floor: 4, Direction: types.DirUp}}, 6, types.DirNone, 4},
		{"tie goes to destination first", []int{8}, []types.HallCall{{Floor: 4, Direction: types.DirUp}}, 6, types.DirNone, 8},
		{"tie within destinations keeps insertion order", []int{4, 8}, nil, 6, types.DirNone, 4},
		{"hall only", nil, []types.HallCall{{Floor: 2, Direction: types.DirDown}}, 9, types.DirUp, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Queue{Destinations: tt.dests, Hall: tt.hall}
			got, ok := q.NextStop(tt.floor, tt.dir)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextStopEmpty(t *testing.T) {
	var q Queue
	_, ok := q.NextStop(3, types.DirUp)
	assert.False(t, ok)
	assert.Equal(t, types.DirNone, q.Direction(3, types.DirUp))
}

func TestDirection(t *testing.T) {
	q := Queue{Destinations: []int{7}}
	assert.Equal(t, types.DirUp, q.Direction(2, types.DirNone))
	assert.Equal(t, types.DirDown, q.Direction(9, types.DirNone))
	assert.Equal(t, types.DirNone, q.Direction(7, types.DirUp))
}

func TestShouldStop(t *testing.T) {
	q := Queue{
		Destinations: []int{4},
		Hall: []types.HallCall{
			{Floor: 6, Direction: types.DirUp},
			{Floor: 8, Direction: types.DirDown},
		},
	}

	assert.True(t, q.ShouldStop(4, types.DirDown), "cab destination always stops")
	assert.True(t, q.ShouldStop(6, types.DirUp))
	assert.False(t, q.ShouldStop(6, types.DirDown), "hall call against travel is skipped")
	assert.True(t, q.ShouldStop(8, types.DirNone), "idle car serves any hall call")
	assert.False(t, q.ShouldStop(5, types.DirNone))
}

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{
		"up": DirUp, "UP": DirUp, "u": DirUp,
		"down": DirDown, " Down ": DirDown, "d": DirDown,
		"none": DirNone, "": DirNone,
	}
	for in, want := range cases {
		got, err := ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestDirectionHelpers(t *testing.T) {
	assert.Equal(t, 1, DirUp.Step())
	assert.Equal(t, -1, DirDown.Step())
	assert.Equal(t, 0, DirNone.Step())

	assert.Equal(t, DirDown, DirUp.Opposite())
	assert.Equal(t, DirUp, DirDown.Opposite())
	assert.Equal(t, DirUp, DirNone.Opposite())

	assert.True(t, DirUp.IsHall())
	assert.False(t, DirNone.IsHall())
	assert.False(t, Direction(7).IsHall())
	assert.Equal(t, "Direction(7)", Direction(7).String())
}

func TestHallCallJSON(t *testing.T) {
	data, err := json.Marshal(HallCall{Floor: 4, Direction: DirDown})
	require.NoError(t, err)
	assert.JSONEq(t, `{"floor":4,"direction":"Down"}`, string(data))

	var call HallCall
	require.NoError(t, json.Unmarshal([]byte(`{"floor":2,"direction":"up"}`), &call))
	assert.Equal(t, HallCall{Floor: 2, Direction: DirUp}, call)
	assert.Equal(t, "HallUp(2)", call.String())
}

func TestCarStatus(t *testing.T) {
	s := CarStatus{State: Idle, Destinations: []int{}, HallCalls: []HallCall{}}
	assert.True(t, s.Settled())

	s.HallCalls = []HallCall{{Floor: 3, Direction: DirUp}}
	assert.False(t, s.Settled())
	assert.True(t, s.HasHallCall(HallCall{Floor: 3, Direction: DirUp}))
	assert.False(t, s.HasHallCall(HallCall{Floor: 3, Direction: DirDown}))

	var state MotionState
	require.NoError(t, state.UnmarshalText([]byte("dooropen")))
	assert.Equal(t, DoorOpen, state)
	assert.Error(t, state.UnmarshalText([]byte("flying")))
}

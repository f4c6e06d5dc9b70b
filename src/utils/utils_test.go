package utils

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevdispatch/src/types"
)

func TestFormatStatusGolden(t *testing.T) {
	statuses := []types.CarStatus{
		{ID: 1, Floor: 1, State: types.Idle, Direction: types.DirNone, Capacity: 8},
		{
			ID: 2, Floor: 6, State: types.Moving, Direction: types.DirUp, Occupancy: 3, Capacity: 8,
			Destinations: []int{9},
			HallCalls:    []types.HallCall{{Floor: 7, Direction: types.DirUp}},
		},
		{
			ID: 3, Floor: 4, State: types.DoorOpen, Direction: types.DirDown, Capacity: 8,
			Destinations: []int{1, 2},
			HallCalls:    []types.HallCall{{Floor: 2, Direction: types.DirUp}},
		},
	}

	var buf bytes.Buffer
	FormatStatus(&buf, statuses)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "status_table", buf.Bytes())
}

func TestFormatEvent(t *testing.T) {
	e := types.Event{
		Kind:      types.EventDoorsOpened,
		CarID:     2,
		Floor:     5,
		State:     types.DoorOpen,
		Direction: types.DirUp,
		Time:      time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC),
	}
	assert.Equal(t, "12:30:00.000 car=2 floor=5 state=DoorOpen dir=Up doors_opened", FormatEvent(e))
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}

func TestNewLoggerCompactsTime(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, slog.LevelInfo).Info("car idle", "car", 1)
	line := buf.String()
	assert.Regexp(t, `^time=\d{2}:\d{2}:\d{2} level=INFO msg="car idle" car=1`, line)
}

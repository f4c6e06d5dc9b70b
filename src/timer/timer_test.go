package timer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealWaits(t *testing.T) {
	start := time.Now()
	require.NoError(t, Real{}.Wait(context.Background(), 20*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestRealCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Real{}.Wait(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScaled(t *testing.T) {
	start := time.Now()
	w := Scaled{Inner: Real{}, Factor: 0.001}
	require.NoError(t, w.Wait(context.Background(), 10*time.Second))
	assert.Less(t, time.Since(start), time.Second)
}

func TestInstant(t *testing.T) {
	require.NoError(t, Instant{}.Wait(context.Background(), time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Instant{}.Wait(ctx, time.Hour), context.Canceled)
}

func TestStepper(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s := NewStepper()

	done := make(chan error, 1)
	go func() { done <- s.Wait(ctx, time.Hour) }()

	select {
	case <-done:
		t.Fatal("wait returned before a step")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, s.Step(ctx))
	require.NoError(t, <-done)

	s.Release()
	s.Release()
	require.NoError(t, s.Wait(ctx, time.Hour))
}

func TestStepperStepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NewStepper().Step(ctx), context.Canceled)
}

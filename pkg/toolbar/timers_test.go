package toolbar_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/mdwrap/pkg/toolbar"
)

func TestDebouncer(t *testing.T) {
	clock := clockwork.NewFakeClock()

	var calls atomic.Int32
	d := toolbar.NewDebouncer(clock, 100*time.Millisecond, func() { calls.Add(1) })

	assert.Equal(t, toolbar.Idle, d.State())

	d.Call()
	assert.Equal(t, toolbar.Pending, d.State())

	clock.Advance(90 * time.Millisecond)
	d.Call()
	clock.Advance(90 * time.Millisecond)
	assert.Equal(t, toolbar.Pending, d.State())

	clock.Advance(10 * time.Millisecond)
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, toolbar.Fired, d.State())

	clock.Advance(time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncerCancel(t *testing.T) {
	clock := clockwork.NewFakeClock()

	var calls atomic.Int32
	d := toolbar.NewDebouncer(clock, 100*time.Millisecond, func() { calls.Add(1) })

	d.Call()
	d.Cancel()
	assert.Equal(t, toolbar.Idle, d.State())

	clock.Advance(time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestThrottler(t *testing.T) {
	clock := clockwork.NewFakeClock()

	calls := 0
	th := toolbar.NewThrottler(clock, time.Second, func() { calls++ })

	assert.Equal(t, toolbar.Idle, th.State())

	assert.True(t, th.Call())
	assert.Equal(t, 1, calls)
	assert.Equal(t, toolbar.Fired, th.State())

	clock.Advance(500 * time.Millisecond)
	assert.False(t, th.Call())
	assert.Equal(t, 1, calls)

	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, toolbar.Idle, th.State())
	assert.True(t, th.Call())
	assert.Equal(t, 2, calls)
}

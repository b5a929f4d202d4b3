package persistence

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects fired values under a lock.
type recorder struct {
	mu     sync.Mutex
	values []int
}

func (r *recorder) fire(v int) func() {
	return func() {
		r.mu.Lock()
		r.values = append(r.values, v)
		r.mu.Unlock()
	}
}

func (r *recorder) snapshot() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.values))
	copy(out, r.values)
	return out
}

func TestDebouncer_FiresOnceAfterWindow(t *testing.T) {
	d := newDebouncer(40 * time.Millisecond)
	var rec recorder

	d.Call(rec.fire(1))

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{1}, rec.snapshot())
}

func TestDebouncer_LastCallWins(t *testing.T) {
	d := newDebouncer(60 * time.Millisecond)
	var rec recorder

	d.Call(rec.fire(1))
	d.Call(rec.fire(2))
	d.Call(rec.fire(3))

	require.Eventually(t, func() bool { return len(rec.snapshot()) > 0 },
		time.Second, 5*time.Millisecond)

	// Give a stale timer the chance to misfire.
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, []int{3}, rec.snapshot(), "only the last scheduled fn runs, exactly once")
}

func TestDebouncer_CallResetsWindow(t *testing.T) {
	d := newDebouncer(80 * time.Millisecond)
	var rec recorder

	d.Call(rec.fire(1))
	time.Sleep(40 * time.Millisecond)
	d.Call(rec.fire(2))
	time.Sleep(40 * time.Millisecond)

	// 80ms have passed since the first call but only 40ms since the second;
	// the trailing edge must not have fired yet.
	assert.Empty(t, rec.snapshot(), "window restarts on every call")

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{2}, rec.snapshot())
}

func TestDebouncer_CancelSuppressesPendingFire(t *testing.T) {
	d := newDebouncer(40 * time.Millisecond)
	var rec recorder

	d.Call(rec.fire(1))
	assert.True(t, d.Cancel(), "a scheduled fn was pending")

	time.Sleep(120 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestDebouncer_CancelWithoutPendingReportsFalse(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	var rec recorder

	assert.False(t, d.Cancel(), "nothing scheduled yet")

	d.Call(rec.fire(1))
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 },
		time.Second, 5*time.Millisecond)

	assert.False(t, d.Cancel(), "the fn already fired")
}

func TestDebouncer_ReusableAfterFire(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	var rec recorder

	d.Call(rec.fire(1))
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 },
		time.Second, 5*time.Millisecond)

	d.Call(rec.fire(2))
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 },
		time.Second, 5*time.Millisecond)

	assert.Equal(t, []int{1, 2}, rec.snapshot())
}

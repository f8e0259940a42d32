package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_FiresOnlyOnGrowth(t *testing.T) {
	n := NewNotifier(time.Minute)
	defer n.Close()

	// Observation sequence 0, 1, 1, 3, 2 raises exactly two notifications:
	// at 0->1 and at 1->3.
	observations := []int{0, 1, 1, 3, 2}
	fired := []int{}
	for i, count := range observations {
		if n.Observe(7, count) != nil {
			fired = append(fired, i)
		}
	}
	assert.Equal(t, []int{1, 3}, fired)
}

func TestNotifier_SilentOnFirstObservation(t *testing.T) {
	n := NewNotifier(time.Minute)
	defer n.Close()

	// A dashboard's first render must stay quiet no matter the count.
	assert.Nil(t, n.Observe(7, 5))
	assert.Nil(t, n.Active(7))

	// Growth after priming fires.
	note := n.Observe(7, 6)
	if assert.NotNil(t, note) {
		assert.Equal(t, NewOrderMessage, note.Message)
	}
}

func TestNotifier_PerCourierState(t *testing.T) {
	n := NewNotifier(time.Minute)
	defer n.Close()

	n.Observe(7, 0)
	n.Observe(8, 0)

	assert.NotNil(t, n.Observe(7, 2))
	// Courier 8's watcher is independent: no growth, no notification.
	assert.Nil(t, n.Observe(8, 0))
	assert.Nil(t, n.Active(8))
	assert.NotNil(t, n.Active(7))
}

func TestNotifier_AutoDismiss(t *testing.T) {
	n := NewNotifier(20 * time.Millisecond)
	defer n.Close()

	n.Observe(7, 0)
	assert.NotNil(t, n.Observe(7, 1))
	assert.NotNil(t, n.Active(7))

	assert.Eventually(t, func() bool {
		return n.Active(7) == nil
	}, time.Second, 5*time.Millisecond, "notification should auto-dismiss after its TTL")
}

func TestNotifier_ManualDismiss(t *testing.T) {
	n := NewNotifier(time.Minute)
	defer n.Close()

	n.Observe(7, 0)
	assert.NotNil(t, n.Observe(7, 1))

	n.Dismiss(7)
	assert.Nil(t, n.Active(7))

	// Dismissal does not reset the watcher; the next growth still fires.
	assert.NotNil(t, n.Observe(7, 2))
}

func TestNotifier_ReArmedTimerKeepsLatest(t *testing.T) {
	n := NewNotifier(40 * time.Millisecond)
	defer n.Close()

	n.Observe(7, 0)
	first := n.Observe(7, 1)
	assert.NotNil(t, first)

	time.Sleep(25 * time.Millisecond)
	second := n.Observe(7, 2)
	assert.NotNil(t, second)

	// The first notification's TTL has elapsed, but the timer was re-armed
	// for the second one, so it is still visible.
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, second, n.Active(7))
}

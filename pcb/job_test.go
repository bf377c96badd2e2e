package pcb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	j := New(1, 5, 40, 800, 0)
	require.Equal(t, 1, j.Number)
	require.Equal(t, int64(800), j.TimeRemaining)
	assert.False(t, j.Blocked)
	assert.False(t, j.Terminated)
	assert.False(t, j.Running)
}

func TestEqual(t *testing.T) {
	a := New(1, 0, 0, 0, 0)
	b := New(1, 9, 9, 9, 9)
	c := New(2, 0, 0, 0, 0)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestCharge(t *testing.T) {
	j := New(1, 0, 100, 350, 0)
	exhausted := j.Charge(100)
	require.False(t, exhausted)
	assert.Equal(t, int64(250), j.TimeRemaining)

	exhausted = j.Charge(400)
	assert.True(t, exhausted)
	assert.Equal(t, int64(0), j.TimeRemaining, "time remaining floors at zero (J5)")
}

func TestPendingIO(t *testing.T) {
	j := New(1, 0, 0, 0, 0)
	assert.False(t, j.PendingIO)

	j.RequestIO()
	assert.Equal(t, 1, j.IOCount)
	assert.True(t, j.PendingIO)

	j.RequestIO()
	assert.Equal(t, 2, j.IOCount)

	j.CompleteIO()
	assert.Equal(t, 1, j.IOCount)
	assert.True(t, j.PendingIO)

	j.CompleteIO()
	assert.Equal(t, 0, j.IOCount)
	assert.False(t, j.PendingIO)
}

func TestCompleteIOFloor(t *testing.T) {
	j := New(1, 0, 0, 0, 0)
	j.CompleteIO()
	assert.Equal(t, 0, j.IOCount)
}

func TestRunnable(t *testing.T) {
	j := New(1, 0, 0, 0, 0)
	assert.True(t, j.Runnable())

	j.Blocked = true
	assert.False(t, j.Runnable())

	j.Blocked = false
	j.Terminated = true
	assert.False(t, j.Runnable())
}

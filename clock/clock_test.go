package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStopwatchAccumulates(t *testing.T) {
	s := NewStopwatch()
	s.Start()
	time.Sleep(5 * time.Millisecond)
	s.Stop()
	first := s.Get()
	assert.True(t, first > 0)
	s.Start()
	time.Sleep(5 * time.Millisecond)
	s.Stop()
	assert.True(t, s.Get() > first)
}

func TestTimerCountsDown(t *testing.T) {
	tm := NewTimer(50 * time.Millisecond)
	tm.Start()
	time.Sleep(5 * time.Millisecond)
	tm.Stop()
	assert.True(t, tm.Get() < 50*time.Millisecond)
	assert.True(t, tm.Get() > 0)
}

func TestTimerNeverGoesNegative(t *testing.T) {
	tm := NewTimer(1 * time.Millisecond)
	tm.Start()
	time.Sleep(5 * time.Millisecond)
	tm.Stop()
	assert.Equal(t, time.Duration(0), tm.Get())
}

func TestAllocateMoveTime(t *testing.T) {
	assert.Equal(t, 5*time.Second, AllocateMoveTime(100*time.Second, 0.05))
	assert.Equal(t, time.Duration(0), AllocateMoveTime(100*time.Second, 0))
	assert.Equal(t, 100*time.Second, AllocateMoveTime(100*time.Second, 1))
}

func TestSetRemainingOverwritesBudget(t *testing.T) {
	tm := NewTimer(1 * time.Second)
	tm.SetRemaining(10 * time.Second)
	assert.Equal(t, 10*time.Second, tm.Get())
}

package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSRTF_SelectsSmallestRemainingTime(t *testing.T) {
	s := NewSRTF()
	long := mustProc(t, 1, 0, 100, 1)
	short := mustProc(t, 2, 0, 5, 1)
	long.RemainingCPUTime = 60 // partially run

	s.Admit(long)
	s.Admit(short)

	assert.Same(t, short, s.Next())
	assert.Same(t, long, s.Next())
}

func TestSRTF_PreemptsOnStrictlySmallerRemainingTime(t *testing.T) {
	s := NewSRTF()
	running := mustProc(t, 1, 0, 50, 1)
	running.RemainingCPUTime = 30

	shorter := mustProc(t, 2, 10, 10, 1)
	equal := mustProc(t, 3, 10, 30, 1)

	assert.True(t, s.Preemptive())
	assert.True(t, s.ShouldPreempt(running, shorter))
	assert.False(t, s.ShouldPreempt(running, equal), "equal remaining time must not preempt")
}

func TestSRTF_NeverImposesAQuantum(t *testing.T) {
	s := NewSRTF()
	p := mustProc(t, 1, 0, 10, 1)
	_, bounded := s.TimeSliceFor(p)
	assert.False(t, bounded)
}

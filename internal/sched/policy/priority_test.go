package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriority_SelectsSmallestPriorityValue(t *testing.T) {
	pr := NewPriority(false, 1000)
	urgent := mustProc(t, 1, 0, 10, 1)
	lazy := mustProc(t, 2, 0, 10, 9)

	pr.Admit(lazy)
	pr.Admit(urgent)

	assert.Same(t, urgent, pr.Next())
	assert.Same(t, lazy, pr.Next())
}

func TestPriority_BreaksTiesByArrivalThenPID(t *testing.T) {
	pr := NewPriority(false, 1000)
	later := mustProc(t, 5, 10, 10, 3)
	earlier := mustProc(t, 1, 0, 10, 3)

	pr.Admit(later)
	pr.Admit(earlier)

	assert.Same(t, earlier, pr.Next())
	assert.Same(t, later, pr.Next())
}

func TestPriority_NonPreemptiveNeverPreempts(t *testing.T) {
	pr := NewPriority(false, 1000)
	running := mustProc(t, 1, 0, 10, 5)
	arriving := mustProc(t, 2, 0, 10, 1)
	assert.False(t, pr.Preemptive())
	assert.False(t, pr.ShouldPreempt(running, arriving))
}

func TestPriority_PreemptiveFormPreemptsOnStrictlyHigherUrgency(t *testing.T) {
	pr := NewPriority(true, 1000)
	running := mustProc(t, 1, 0, 10, 5)
	moreUrgent := mustProc(t, 2, 0, 10, 1)
	equal := mustProc(t, 3, 0, 10, 5)

	assert.True(t, pr.Preemptive())
	assert.True(t, pr.ShouldPreempt(running, moreUrgent))
	assert.False(t, pr.ShouldPreempt(running, equal))
}

func TestPriority_TickAgesReadyProcessesByOneStepPerInterval(t *testing.T) {
	pr := NewPriority(true, 100)
	p := mustProc(t, 1, 0, 10, 10)
	pr.Admit(p)

	pr.Tick(50) // under one interval, no aging yet
	assert.Equal(t, 10, p.Priority)

	pr.Tick(100) // crosses exactly one boundary
	assert.Equal(t, 9, p.Priority)
}

func TestPriority_TickAppliesMultipleStepsAcrossASparseGap(t *testing.T) {
	pr := NewPriority(true, 100)
	p := mustProc(t, 1, 0, 10, 10)
	pr.Admit(p)

	// A single call after 350 ticks must apply three whole-interval steps,
	// not just one, since nothing called Tick in between.
	pr.Tick(350)
	assert.Equal(t, 7, p.Priority)
}

func TestPriority_AgingNeverDecrementsBelowOne(t *testing.T) {
	pr := NewPriority(true, 100)
	p := mustProc(t, 1, 0, 10, 2)
	pr.Admit(p)

	pr.Tick(1000)
	assert.Equal(t, 1, p.Priority)
}

func TestPriority_TickIsANoOpWhenAgingDisabled(t *testing.T) {
	pr := NewPriority(true, 0)
	p := mustProc(t, 1, 0, 10, 5)
	pr.Admit(p)
	pr.Tick(10000)
	assert.Equal(t, 5, p.Priority)
}

func TestPriority_Name(t *testing.T) {
	assert.Equal(t, "Priority(P)", NewPriority(true, 100).Name())
	assert.Equal(t, "Priority(NP)", NewPriority(false, 100).Name())
}

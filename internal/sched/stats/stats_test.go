package stats

import (
	"testing"

	"github.com/schedsim/schedsim/internal/pcb"
	"github.com/stretchr/testify/assert"
)

func completedAt(t *testing.T, pid int, arrival, cpu, completion int64) *pcb.Process {
	t.Helper()
	p, err := pcb.New(pid, arrival, cpu, 0, 1)
	assert.NoError(t, err)
	p.RemainingCPUTime = 0
	p.FirstRunTime = arrival
	p.FirstRunSet = true
	p.CompletionTime = completion
	p.CompletionSet = true
	return p
}

func TestAggregate_EmptyRunIsFullyFair(t *testing.T) {
	s := Aggregate(nil, 0, 0)
	assert.Equal(t, 1.0, s.FairnessIndex)
	assert.Equal(t, 0.0, s.CPUUtilisation)
	assert.Equal(t, 0.0, s.Throughput)
}

func TestAggregate_SingleProcessIsPerfectlyFair(t *testing.T) {
	p := completedAt(t, 1, 0, 50, 50)
	s := Aggregate([]*pcb.Process{p}, 50, 0)

	assert.Equal(t, 1.0, s.FairnessIndex)
	assert.Equal(t, float64(50), s.Turnaround.Mean)
	assert.Equal(t, float64(50), s.Turnaround.Min)
	assert.Equal(t, float64(50), s.Turnaround.Max)
	assert.Equal(t, float64(50), s.Turnaround.Median)
	assert.Equal(t, 0.0, s.Turnaround.Std)
	assert.Equal(t, 100.0, s.CPUUtilisation)
}

func TestAggregate_CPUUtilisationExcludesIdleTime(t *testing.T) {
	p := completedAt(t, 1, 0, 50, 100)
	s := Aggregate([]*pcb.Process{p}, 100, 50)
	assert.InDelta(t, 50.0, s.CPUUtilisation, 0.0001)
}

func TestAggregate_ThroughputIsPerThousandTicks(t *testing.T) {
	p1 := completedAt(t, 1, 0, 10, 1000)
	p2 := completedAt(t, 2, 0, 10, 2000)
	s := Aggregate([]*pcb.Process{p1, p2}, 2000, 0)
	assert.InDelta(t, 1.0, s.Throughput, 0.0001)
}

func TestAggregate_FairnessIndexPenalisesSkew(t *testing.T) {
	equal := Aggregate([]*pcb.Process{
		completedAt(t, 1, 0, 10, 20),
		completedAt(t, 2, 0, 10, 20),
	}, 40, 0)
	skewed := Aggregate([]*pcb.Process{
		completedAt(t, 1, 0, 10, 10),
		completedAt(t, 2, 0, 10, 1000),
	}, 1010, 0)

	assert.Equal(t, 1.0, equal.FairnessIndex)
	assert.Less(t, skewed.FairnessIndex, equal.FairnessIndex)
	assert.GreaterOrEqual(t, skewed.FairnessIndex, 1.0/2.0)
}

func TestAggregate_MedianMatchesLinearInterpolationPercentile(t *testing.T) {
	procs := []*pcb.Process{
		completedAt(t, 1, 0, 10, 10),
		completedAt(t, 2, 0, 10, 30),
		completedAt(t, 3, 0, 10, 50),
		completedAt(t, 4, 0, 10, 70),
	}
	s := Aggregate(procs, 70, 0)
	// turnarounds: 10, 30, 50, 70 -> p50 interpolates between 30 and 50.
	assert.InDelta(t, 40.0, s.Turnaround.Median, 0.0001)
}

func TestPercentile_OutOfPackFractionalRank(t *testing.T) {
	values := []float64{10, 20, 30, 40}
	assert.InDelta(t, 10.0, Percentile(values, 0), 0.0001)
	assert.InDelta(t, 40.0, Percentile(values, 100), 0.0001)
	assert.InDelta(t, 32.5, Percentile(values, 75), 0.0001)
}

func TestPercentile_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Percentile(nil, 50))
}

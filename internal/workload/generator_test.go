package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSynthetic_DeterministicForSameSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumProcesses = 20

	a, err := GenerateSynthetic(cfg, 42)
	require.NoError(t, err)
	b, err := GenerateSynthetic(cfg, 42)
	require.NoError(t, err)

	require.Len(t, a, 20)
	require.Len(t, b, 20)
	for i := range a {
		assert.Equal(t, a[i].PID, b[i].PID)
		assert.Equal(t, a[i].ArrivalTime, b[i].ArrivalTime)
		assert.Equal(t, a[i].TotalCPUTime, b[i].TotalCPUTime)
		assert.Equal(t, a[i].IOBurstTime, b[i].IOBurstTime)
		assert.Equal(t, a[i].Priority, b[i].Priority)
	}
}

func TestGenerateSynthetic_DifferentSeedsDiffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumProcesses = 20

	a, err := GenerateSynthetic(cfg, 1)
	require.NoError(t, err)
	b, err := GenerateSynthetic(cfg, 2)
	require.NoError(t, err)

	differs := false
	for i := range a {
		if a[i].ArrivalTime != b[i].ArrivalTime || a[i].TotalCPUTime != b[i].TotalCPUTime {
			differs = true
			break
		}
	}
	assert.True(t, differs)
}

func TestGenerateSynthetic_EveryProcessHasValidFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumProcesses = 200

	procs, err := GenerateSynthetic(cfg, 7)
	require.NoError(t, err)
	require.Len(t, procs, 200)

	seenPIDs := make(map[int]bool)
	for _, p := range procs {
		assert.False(t, seenPIDs[p.PID], "duplicate pid %d", p.PID)
		seenPIDs[p.PID] = true
		assert.GreaterOrEqual(t, p.ArrivalTime, int64(0))
		assert.GreaterOrEqual(t, p.TotalCPUTime, int64(1))
		assert.GreaterOrEqual(t, p.IOBurstTime, int64(0))
		assert.GreaterOrEqual(t, p.Priority, cfg.PriorityMin)
		assert.LessOrEqual(t, p.Priority, cfg.PriorityMax)
	}
}

func TestGenerateSynthetic_ArrivalsAreNonDecreasing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumProcesses = 50

	procs, err := GenerateSynthetic(cfg, 9)
	require.NoError(t, err)

	for i := 1; i < len(procs); i++ {
		assert.GreaterOrEqual(t, procs[i].ArrivalTime, procs[i-1].ArrivalTime)
	}
}

func TestGenerateSynthetic_RejectsNonPositiveCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumProcesses = 0
	_, err := GenerateSynthetic(cfg, 1)
	assert.Error(t, err)
}

func TestGenerateSynthetic_RejectsDegenerateIOBurstRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IOBurstMin = 50
	cfg.IOBurstMax = 50
	_, err := GenerateSynthetic(cfg, 1)
	assert.Error(t, err)
}

func TestGenerateSynthetic_CPUIntensiveSkewsIOBurstsDown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumProcesses = 300
	cfg.WorkloadType = KindCPUIntensive

	procs, err := GenerateSynthetic(cfg, 3)
	require.NoError(t, err)

	var total int64
	for _, p := range procs {
		total += p.IOBurstTime
	}
	avg := float64(total) / float64(len(procs))
	assert.Less(t, avg, float64(cfg.IOBurstMax)/2)
}

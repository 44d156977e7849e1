package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/internal/pcb"
	"github.com/schedsim/schedsim/internal/sched/policy"
)

func mustProcess(t *testing.T, pid int, arrival, cpu, io int64, pri int) *pcb.Process {
	t.Helper()
	p, err := pcb.New(pid, arrival, cpu, io, pri)
	require.NoError(t, err)
	return p
}

func TestSimulation_FCFSThreeProcesses(t *testing.T) {
	procs := []*pcb.Process{
		mustProcess(t, 1, 0, 50, 0, 1),
		mustProcess(t, 2, 10, 30, 0, 1),
		mustProcess(t, 3, 20, 40, 0, 1),
	}
	cfg := Default()
	cfg.ContextSwitchTime = 0

	sim, err := New(procs, cfg)
	require.NoError(t, err)

	res, err := sim.Run()
	require.NoError(t, err)

	assert.Equal(t, "FCFS", res.PolicyName)
	require.Len(t, res.PerProcess, 3)
	assert.InDelta(t, (50.0+70.0+100.0)/3, res.Metrics[MetricAvgTurnaround], 0.01)
	assert.Contains(t, res.Metrics, MetricFairnessIndex)
}

func TestSimulation_RejectsDuplicatePID(t *testing.T) {
	procs := []*pcb.Process{
		mustProcess(t, 1, 0, 10, 0, 1),
		mustProcess(t, 1, 5, 10, 0, 1),
	}
	_, err := New(procs, Default())
	assert.Error(t, err)
}

func TestSimulation_RejectsEmptyWorkload(t *testing.T) {
	_, err := New(nil, Default())
	assert.Error(t, err)
}

func TestSimulation_UnboundedMaxTimeDoesNotTruncateANaturallyFinishingRun(t *testing.T) {
	procs := []*pcb.Process{mustProcess(t, 1, 0, 100, 20, 1)}
	cfg := Default()
	cfg.MaxTime = 0

	sim, err := New(procs, cfg)
	require.NoError(t, err)

	res, err := sim.Run()
	require.NoError(t, err)
	assert.Equal(t, 0, res.TruncatedCount)
	require.Len(t, res.PerProcess, 1)
}

func TestSimulation_RRPolicySelection(t *testing.T) {
	procs := []*pcb.Process{
		mustProcess(t, 1, 0, 40, 0, 1),
		mustProcess(t, 2, 0, 40, 0, 1),
	}
	cfg := Default()
	cfg.Policy = policy.NameRR
	cfg.RR.Quantum = 10
	cfg.ContextSwitchTime = 0

	sim, err := New(procs, cfg)
	require.NoError(t, err)
	res, err := sim.Run()
	require.NoError(t, err)
	assert.Equal(t, "RR", res.PolicyName)
}

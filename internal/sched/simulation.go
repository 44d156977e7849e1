// Package sched wires the pcb, event, policy, engine and stats packages
// into one runnable simulation, and assembles their output into the
// result shape spec.md §6 describes.
package sched

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/internal/pcb"
	"github.com/schedsim/schedsim/internal/sched/engine"
	"github.com/schedsim/schedsim/internal/sched/policy"
	"github.com/schedsim/schedsim/internal/sched/stats"
)

// Simulation runs one policy against one workload under one Config. It
// is single-use, matching engine.Engine's own single-use contract.
type Simulation struct {
	cfg       Config
	processes []*pcb.Process
}

// New validates the workload and configuration and returns a
// Simulation ready to Run. Duplicate pids and unknown policy names
// surface here as usage errors rather than at Run time, per spec.md §7.
func New(processes []*pcb.Process, cfg Config) (*Simulation, error) {
	if len(processes) == 0 {
		return nil, fmt.Errorf("sched: workload is empty")
	}
	seen := make(map[int]bool, len(processes))
	for _, p := range processes {
		if seen[p.PID] {
			return nil, fmt.Errorf("sched: duplicate pid %d", p.PID)
		}
		seen[p.PID] = true
	}
	switch cfg.Policy {
	case policy.NameFCFS, policy.NameSJF, policy.NameSRTF, policy.NameRR, policy.NamePriority, policy.NameMLFQ:
	default:
		return nil, fmt.Errorf("sched: unknown policy %q", cfg.Policy)
	}
	maxTime := cfg.MaxTime
	if maxTime <= 0 {
		maxTime = maxSimulationHorizon(processes, cfg.ContextSwitchTime)
	}
	cfg.MaxTime = maxTime
	return &Simulation{cfg: cfg, processes: processes}, nil
}

// maxSimulationHorizon is used when the config leaves max_time
// unbounded: the latest possible completion, so the engine's horizon
// check never truncates a workload that would have finished on its
// own. Worst case every process runs serially and every dispatch pays a
// context switch: a process is dispatched at most once per tick of CPU
// it needs, once more after its I/O, and once per preemption (at most
// one per arrival or I/O return).
func maxSimulationHorizon(processes []*pcb.Process, contextSwitchTime int64) int64 {
	var total int64
	for _, p := range processes {
		total += p.ArrivalTime + p.TotalCPUTime + p.IOBurstTime + 1
		total += contextSwitchTime * (p.TotalCPUTime + 3)
	}
	return total*2 + 1
}

// Run executes the simulation and returns its result. Logging follows
// sim/simulator.go's Infof-per-milestone shape: one line at the start
// naming the policy and workload size, one at the end with the
// headline numbers.
func (s *Simulation) Run() (*SimulationResult, error) {
	sched := s.cfg.NewScheduler()
	eng, err := engine.New(s.processes, sched, s.cfg.ContextSwitchTime, s.cfg.MaxTime)
	if err != nil {
		return nil, err
	}

	logrus.Infof("sched: starting %s run over %d processes (context_switch=%d, max_time=%d)",
		sched.Name(), len(s.processes), s.cfg.ContextSwitchTime, s.cfg.MaxTime)

	res := eng.Run()
	if res.TruncatedCount > 0 {
		logrus.Warnf("sched: %s run truncated at max_time=%d with %d process(es) unfinished",
			sched.Name(), s.cfg.MaxTime, res.TruncatedCount)
	}

	summary := stats.Aggregate(res.Completed, res.TotalTime, res.IdleTime)

	perProcess := make([]ProcessRecord, 0, len(res.Completed))
	for _, p := range res.Completed {
		perProcess = append(perProcess, ProcessRecord{
			PID:        p.PID,
			Arrival:    p.ArrivalTime,
			Completion: p.CompletionTime,
			Turnaround: p.Turnaround(),
			Waiting:    p.Waiting(),
			Response:   p.Response(),
			Priority:   p.BasePriority,
		})
	}

	metrics := map[string]float64{
		MetricAvgTurnaround: summary.Turnaround.Mean,
		MetricStdTurnaround: summary.Turnaround.Std,
		MetricMinTurnaround: summary.Turnaround.Min,
		MetricMaxTurnaround: summary.Turnaround.Max,
		MetricMedTurnaround: summary.Turnaround.Median,

		MetricAvgWaiting: summary.Waiting.Mean,
		MetricStdWaiting: summary.Waiting.Std,
		MetricMinWaiting: summary.Waiting.Min,
		MetricMaxWaiting: summary.Waiting.Max,
		MetricMedWaiting: summary.Waiting.Median,

		MetricAvgResponse: summary.Response.Mean,
		MetricStdResponse: summary.Response.Std,
		MetricMinResponse: summary.Response.Min,
		MetricMaxResponse: summary.Response.Max,
		MetricMedResponse: summary.Response.Median,

		MetricCPUUtilisation: summary.CPUUtilisation,
		MetricThroughput:     summary.Throughput,
		MetricFairnessIndex:  summary.FairnessIndex,
	}

	logrus.Infof("sched: %s finished at tick %d, %d completed, cpu_utilisation=%.1f%%, fairness=%.3f",
		sched.Name(), res.TotalTime, len(res.Completed), summary.CPUUtilisation, summary.FairnessIndex)

	return &SimulationResult{
		PolicyName:      sched.Name(),
		Metrics:         metrics,
		PerProcess:      perProcess,
		Gantt:           res.Gantt,
		CPUUtilisation:  summary.CPUUtilisation,
		TruncatedCount:  res.TruncatedCount,
		PreemptionCount: res.PreemptionCount,
		DispatchCount:   res.DispatchCount,
	}, nil
}

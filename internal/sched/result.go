package sched

import (
	"github.com/schedsim/schedsim/internal/sched/engine"
)

// ProcessRecord is one completed process's timing outcome, the
// per_process entry shape from spec.md §6's result object.
type ProcessRecord struct {
	PID        int   `json:"pid"`
	Arrival    int64 `json:"arrival"`
	Completion int64 `json:"completion"`
	Turnaround int64 `json:"turnaround"`
	Waiting    int64 `json:"waiting"`
	Response   int64 `json:"response"`
	Priority   int   `json:"priority"`
}

// SimulationResult is the full output of one Simulation.Run, assembled
// from the engine's raw Result plus the stats aggregate. Metrics are
// flattened into a string-keyed map, matching spec.md §6's
// {policy_name, metrics: map<string, number>, per_process, gantt,
// cpu_utilisation} shape so every policy's output is comparable by key
// lookup rather than by a fixed struct of named fields per metric.
type SimulationResult struct {
	PolicyName string                  `json:"policy_name"`
	Metrics    map[string]float64      `json:"metrics"`
	PerProcess []ProcessRecord         `json:"per_process"`
	Gantt      []engine.GanttSegment   `json:"gantt"`

	CPUUtilisation  float64 `json:"cpu_utilisation"`
	TruncatedCount  int     `json:"truncated_count"`
	PreemptionCount int     `json:"preemption_count"`
	DispatchCount   int     `json:"dispatch_count"`
}

const (
	MetricAvgTurnaround = "avg_turnaround"
	MetricStdTurnaround = "std_turnaround"
	MetricMinTurnaround = "min_turnaround"
	MetricMaxTurnaround = "max_turnaround"
	MetricMedTurnaround = "median_turnaround"

	MetricAvgWaiting = "avg_waiting"
	MetricStdWaiting = "std_waiting"
	MetricMinWaiting = "min_waiting"
	MetricMaxWaiting = "max_waiting"
	MetricMedWaiting = "median_waiting"

	MetricAvgResponse = "avg_response"
	MetricStdResponse = "std_response"
	MetricMinResponse = "min_response"
	MetricMaxResponse = "max_response"
	MetricMedResponse = "median_response"

	MetricCPUUtilisation = "cpu_utilisation"
	MetricThroughput     = "throughput"
	MetricFairnessIndex  = "fairness_index"
)

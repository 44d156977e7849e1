// Package stats aggregates a completed simulation run into the metric
// set spec.md §4.8 defines: per-metric mean/std/min/max/median over
// turnaround, waiting and response, plus the system-wide CPU
// utilisation, throughput and fairness figures.
package stats

import (
	"math"
	"sort"

	"github.com/schedsim/schedsim/internal/pcb"
)

// Distribution is mean/std/min/max/median over one metric across every
// completed process, mirroring the field set sim/cluster/metrics_test.go
// checks for its own per-instance distributions.
type Distribution struct {
	Mean   float64
	Std    float64
	Min    float64
	Max    float64
	Median float64
}

// Summary is the full metric set for one run.
type Summary struct {
	Turnaround Distribution
	Waiting    Distribution
	Response   Distribution

	CPUUtilisation float64
	Throughput     float64
	FairnessIndex  float64
}

// Aggregate computes a Summary from a completed process list and the
// engine's total simulated time and idle time. Processes
// truncated by max_time are not in completed and contribute nothing —
// per spec.md §7, a truncated run's metrics are over whoever actually
// finished.
func Aggregate(completed []*pcb.Process, totalTime, idleTime int64) Summary {
	n := len(completed)
	turnaround := make([]float64, n)
	waiting := make([]float64, n)
	response := make([]float64, n)
	for i, p := range completed {
		turnaround[i] = float64(p.Turnaround())
		waiting[i] = float64(p.Waiting())
		response[i] = float64(p.Response())
	}

	return Summary{
		Turnaround:     distributionOf(turnaround),
		Waiting:        distributionOf(waiting),
		Response:       distributionOf(response),
		CPUUtilisation: cpuUtilisation(totalTime, idleTime),
		Throughput:     throughput(n, totalTime),
		FairnessIndex:  fairnessIndex(turnaround),
	}
}

func cpuUtilisation(totalTime, idleTime int64) float64 {
	if totalTime == 0 {
		return 0
	}
	return 100 * float64(totalTime-idleTime) / float64(totalTime)
}

func throughput(completedCount int, totalTime int64) float64 {
	if totalTime == 0 {
		return 0
	}
	return float64(completedCount) / (float64(totalTime) / 1000)
}

// fairnessIndex is Jain's index over turnaround times: 1 if there are no
// completed processes or every turnaround is zero, per spec.md §4.8.
func fairnessIndex(values []float64) float64 {
	if len(values) == 0 {
		return 1
	}
	var sum, sumSq float64
	for _, v := range values {
		sum += v
		sumSq += v * v
	}
	if sumSq == 0 {
		return 1
	}
	return (sum * sum) / (float64(len(values)) * sumSq)
}

func distributionOf(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	return Distribution{
		Mean:   mean,
		Std:    populationStd(sorted, mean),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: percentile(sorted, 50),
	}
}

// populationStd is ddof=0 (divide by n, not n-1), matching
// original_source/src/statistics.py's reliance on numpy's np.std
// default — spec.md doesn't call for Bessel's correction.
func populationStd(sorted []float64, mean float64) float64 {
	var sumSq float64
	for _, v := range sorted {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(sorted)))
}

// percentile is linear-interpolation between ranks, ported from
// sim/metrics_utils.go's CalculatePercentile. sorted must already be
// sorted ascending.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))

	if lowerIdx == upperIdx {
		return sorted[lowerIdx]
	}
	if upperIdx >= n {
		return sorted[n-1]
	}
	lowerVal, upperVal := sorted[lowerIdx], sorted[upperIdx]
	return lowerVal + (upperVal-lowerVal)*(rank-float64(lowerIdx))
}

// Percentile exposes the same interpolation for callers that need an
// arbitrary percentile (e.g. a p99 turnaround report) beyond the
// median spec.md §4.8 names explicitly.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return percentile(sorted, p)
}

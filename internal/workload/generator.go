// Package workload builds process sets for the simulator, either
// synthetically from statistical distributions or parsed from a trace
// file (spec.md §6). Neither path is exercised by the core engine
// itself — spec.md §7 is explicit that the core never parses traces or
// generates workloads; this package is the "external generator" that
// intake describes.
package workload

import (
	"fmt"
	"hash/fnv"
	"math/rand"

	"github.com/schedsim/schedsim/internal/pcb"
)

// Kind selects the CPU/IO balance a synthetic workload leans toward,
// mirroring original_source's workload_type switch (cpu_intensive,
// io_intensive, mixed).
type Kind string

const (
	KindCPUIntensive Kind = "cpu_intensive"
	KindIOIntensive  Kind = "io_intensive"
	KindMixed        Kind = "mixed"
)

// Config is the knob set for GenerateSynthetic, carried over from
// original_source/src/workload_generator.py's WorkloadConfig —
// spec.md leaves the concrete distribution choices to "an external
// collaborator"; these are that collaborator's defaults.
type Config struct {
	NumProcesses  int     `yaml:"num_processes"`
	ArrivalLambda float64 `yaml:"arrival_lambda"` // exponential inter-arrival rate
	CPUBurstMean  float64 `yaml:"cpu_burst_mean"`
	CPUBurstStd   float64 `yaml:"cpu_burst_std"`
	IOBurstMin    int64   `yaml:"io_burst_min"`
	IOBurstMax    int64   `yaml:"io_burst_max"`
	PriorityMin   int     `yaml:"priority_min"`
	PriorityMax   int     `yaml:"priority_max"`
	CPUIORatio    float64 `yaml:"cpu_io_ratio"` // fraction of processes treated CPU-intensive under "mixed"
	WorkloadType  Kind    `yaml:"workload_type"`
}

// DefaultConfig mirrors WorkloadConfig's dataclass defaults.
func DefaultConfig() Config {
	return Config{
		NumProcesses:  100,
		ArrivalLambda: 0.01,
		CPUBurstMean:  50.0,
		CPUBurstStd:   20.0,
		IOBurstMin:    10,
		IOBurstMax:    100,
		PriorityMin:   1,
		PriorityMax:   10,
		CPUIORatio:    0.7,
		WorkloadType:  KindMixed,
	}
}

// seededRNG derives a *rand.Rand for the "workload" subsystem from a
// master seed, the same XOR-fnv1a64-of-subsystem-name construction
// sim/rng.go's PartitionedRNG uses — narrowed to a single subsystem
// since a standalone generator has no router/instance subsystems to
// isolate from.
func seededRNG(seed int64) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte("workload"))
	derived := seed ^ int64(h.Sum64())
	return rand.New(rand.NewSource(derived))
}

// GenerateSynthetic builds cfg.NumProcesses processes from Poisson
// arrivals (exponential inter-arrival times), a truncated-normal CPU
// burst, and an I/O burst whose range depends on whether that process
// landed on the CPU-intensive or I/O-intensive side of cpu_io_ratio —
// exactly original_source's generate_synthetic_workload, translated
// from numpy draws to math/rand ones.
func GenerateSynthetic(cfg Config, seed int64) ([]*pcb.Process, error) {
	if cfg.NumProcesses <= 0 {
		return nil, fmt.Errorf("workload: num_processes must be positive, got %d", cfg.NumProcesses)
	}
	if cfg.ArrivalLambda <= 0 {
		return nil, fmt.Errorf("workload: arrival_lambda must be positive, got %f", cfg.ArrivalLambda)
	}
	if cfg.IOBurstMax <= cfg.IOBurstMin {
		return nil, fmt.Errorf("workload: io_burst_max (%d) must exceed io_burst_min (%d)", cfg.IOBurstMax, cfg.IOBurstMin)
	}

	cpuIORatio := cfg.CPUIORatio
	switch cfg.WorkloadType {
	case KindCPUIntensive:
		cpuIORatio = 0.9
	case KindIOIntensive:
		cpuIORatio = 0.3
	}

	rng := seededRNG(seed)

	processes := make([]*pcb.Process, 0, cfg.NumProcesses)
	var arrival float64
	for i := 0; i < cfg.NumProcesses; i++ {
		arrival += rng.ExpFloat64() / cfg.ArrivalLambda

		cpuBurst := int64(rng.NormFloat64()*cfg.CPUBurstStd + cfg.CPUBurstMean)
		if cpuBurst < 1 {
			cpuBurst = 1
		}

		var ioBurst int64
		if rng.Float64() < cpuIORatio {
			ioBurst = rangedInt(rng, cfg.IOBurstMin, cfg.IOBurstMax/2)
		} else {
			ioBurst = rangedInt(rng, cfg.IOBurstMax/2, cfg.IOBurstMax)
		}

		priority := cfg.PriorityMin + rng.Intn(cfg.PriorityMax-cfg.PriorityMin+1)

		p, err := pcb.New(i+1, int64(arrival), cpuBurst, ioBurst, priority)
		if err != nil {
			return nil, fmt.Errorf("workload: generated process %d invalid: %w", i+1, err)
		}
		processes = append(processes, p)
	}
	return processes, nil
}

// rangedInt returns a uniform draw in [lo, hi), or lo if the range is
// empty (hi <= lo). GenerateSynthetic's lower split [IOBurstMin,
// IOBurstMax/2) is empty whenever IOBurstMin >= IOBurstMax/2, so that
// case does occur; every such draw is then IOBurstMin.
func rangedInt(rng *rand.Rand, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + int64(rng.Int63n(hi-lo))
}


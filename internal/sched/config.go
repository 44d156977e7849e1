package sched

import "github.com/schedsim/schedsim/internal/sched/policy"

// RRConfig groups round-robin's only knob.
type RRConfig struct {
	Quantum int64 `yaml:"quantum"` // ticks per slice, default 20
}

// MLFQConfig groups multilevel-feedback-queue knobs.
type MLFQConfig struct {
	Quanta             []int64 `yaml:"quanta"`              // per-level slice lengths, default [10, 20, 40]
	BoostInterval      int64   `yaml:"boost_interval"`      // ticks between full boosts, default 1000
	PromotionThreshold int     `yaml:"promotion_threshold"` // consecutive expiries before demotion, default 2
}

// PriorityConfig groups priority-policy knobs.
type PriorityConfig struct {
	Preemptive    bool  `yaml:"preemptive"`     // true = preemptive priority, false = NP
	AgingInterval int64 `yaml:"aging_interval"` // ticks between aging sweeps, default 1000; 0 disables aging
}

// Config is the full set of recognised configuration knobs from
// spec.md §6. Unset numeric fields are resolved to their defaults by
// Default() rather than by a zero-value fallback scattered through the
// simulation wiring, grounded on sim/config.go's grouped-struct style.
type Config struct {
	Policy policy.Name `yaml:"policy"`

	ContextSwitchTime int64 `yaml:"context_switch_time"` // ticks added per dispatch, default 2
	MaxTime           int64 `yaml:"max_time"`            // hard cap on simulated clock, 0 = unbounded

	RR       RRConfig       `yaml:"rr"`
	MLFQ     MLFQConfig     `yaml:"mlfq"`
	Priority PriorityConfig `yaml:"priority"`
}

// Default returns the configuration original_source/src/utils/config.py
// ships as its own defaults — spec.md §6 names the knobs but leaves
// their magnitudes as "e.g.", so the original's literal constants
// resolve the ambiguity.
func Default() Config {
	return Config{
		Policy:            policy.NameFCFS,
		ContextSwitchTime: 2,
		MaxTime:           0,
		RR: RRConfig{
			Quantum: 20,
		},
		MLFQ: MLFQConfig{
			Quanta:             []int64{10, 20, 40},
			BoostInterval:      1000,
			PromotionThreshold: 2,
		},
		Priority: PriorityConfig{
			Preemptive:    true,
			AgingInterval: 1000,
		},
	}
}

// NewScheduler builds the policy.Scheduler this config names.
func (c Config) NewScheduler() policy.Scheduler {
	return policy.New(c.Policy, policy.Params{
		RRQuantum:              c.RR.Quantum,
		PriorityPreemptive:     c.Priority.Preemptive,
		PriorityAgingInterval:  c.Priority.AgingInterval,
		MLFQQuanta:             c.MLFQ.Quanta,
		MLFQBoostInterval:      c.MLFQ.BoostInterval,
		MLFQPromotionThreshold: c.MLFQ.PromotionThreshold,
	})
}

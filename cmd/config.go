package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/internal/sched"
	"github.com/schedsim/schedsim/internal/sched/policy"
)

// scenarioFlags mirrors sched.Config's YAML shape for --config scenario
// files, matching default_config.go's KnownFields(true) strict-parse
// style so a typo'd key fails loudly instead of being silently ignored.
type scenarioFlags struct {
	Policy            string           `yaml:"policy"`
	ContextSwitchTime int64            `yaml:"context_switch_time"`
	MaxTime           int64            `yaml:"max_time"`
	RR                sched.RRConfig   `yaml:"rr"`
	MLFQ              sched.MLFQConfig `yaml:"mlfq"`
	Priority          struct {
		Preemptive    *bool `yaml:"preemptive"`
		AgingInterval int64 `yaml:"aging_interval"`
	} `yaml:"priority"`
}

func loadScenarioFile(path string) (scenarioFlags, error) {
	var cfg scenarioFlags
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cmd: reading scenario file: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("cmd: parsing scenario file %s: %w", path, err)
	}
	return cfg, nil
}

// buildConfig assembles a sched.Config from defaults, CLI flags, and an
// optional --config scenario file, in that increasing-priority order —
// a scenario file overrides individual flags since it's the more
// deliberate input when both are given.
func buildConfig() (sched.Config, error) {
	cfg := sched.Default()
	cfg.Policy = policy.Name(policyName)
	cfg.ContextSwitchTime = contextSwitchTime
	cfg.MaxTime = maxTime
	cfg.RR.Quantum = rrQuantum
	cfg.MLFQ.Quanta = mlfqQuanta
	cfg.MLFQ.BoostInterval = mlfqBoostInterval
	cfg.MLFQ.PromotionThreshold = mlfqPromotion
	cfg.Priority.AgingInterval = priorityAging
	cfg.Priority.Preemptive = priorityPreempt

	if scenarioFile == "" {
		return cfg, nil
	}

	scenario, err := loadScenarioFile(scenarioFile)
	if err != nil {
		return cfg, err
	}
	if scenario.Policy != "" {
		cfg.Policy = policy.Name(scenario.Policy)
	}
	if scenario.ContextSwitchTime != 0 {
		cfg.ContextSwitchTime = scenario.ContextSwitchTime
	}
	if scenario.MaxTime != 0 {
		cfg.MaxTime = scenario.MaxTime
	}
	if scenario.RR.Quantum != 0 {
		cfg.RR.Quantum = scenario.RR.Quantum
	}
	if len(scenario.MLFQ.Quanta) > 0 {
		cfg.MLFQ.Quanta = scenario.MLFQ.Quanta
	}
	if scenario.MLFQ.BoostInterval != 0 {
		cfg.MLFQ.BoostInterval = scenario.MLFQ.BoostInterval
	}
	if scenario.MLFQ.PromotionThreshold != 0 {
		cfg.MLFQ.PromotionThreshold = scenario.MLFQ.PromotionThreshold
	}
	if scenario.Priority.Preemptive != nil {
		cfg.Priority.Preemptive = *scenario.Priority.Preemptive
	}
	if scenario.Priority.AgingInterval != 0 {
		cfg.Priority.AgingInterval = scenario.Priority.AgingInterval
	}
	return cfg, nil
}

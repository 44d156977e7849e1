package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/internal/pcb"
	"github.com/schedsim/schedsim/internal/sched"
	"github.com/schedsim/schedsim/internal/workload"
)

// loadWorkload returns the process set run/compare operate on: a trace
// file if --trace was given, otherwise a synthetic workload seeded by
// --seed. The core never does this itself per spec.md §7 — everything
// here is the "external generator" the core's intake contract assumes.
func loadWorkload() ([]*pcb.Process, error) {
	if traceFile != "" {
		return workload.LoadTraceFile(traceFile)
	}

	cfg := workload.DefaultConfig()
	cfg.NumProcesses = numProcesses
	cfg.WorkloadType = workload.Kind(workloadType)
	procs, err := workload.GenerateSynthetic(cfg, workloadSeed)
	if err != nil {
		return nil, err
	}
	logrus.Infof("cmd: generated %d synthetic process(es) (seed=%d, type=%s)", len(procs), workloadSeed, workloadType)
	return procs, nil
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling policy against a workload",
	RunE: func(cmd *cobra.Command, args []string) error {
		setLogLevel()

		procs, err := loadWorkload()
		if err != nil {
			return err
		}
		cfg, err := buildConfig()
		if err != nil {
			return err
		}

		sim, err := sched.New(procs, cfg)
		if err != nil {
			return err
		}
		res, err := sim.Run()
		if err != nil {
			return err
		}

		return writeResult(res)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run every policy on the same workload and print a comparison table",
	RunE: func(cmd *cobra.Command, args []string) error {
		setLogLevel()

		procs, err := loadWorkload()
		if err != nil {
			return err
		}

		results := make([]*sched.SimulationResult, 0, len(allPolicies))
		for _, name := range allPolicies {
			cfg, err := buildConfig()
			if err != nil {
				return err
			}
			cfg.Policy = name

			sim, err := sched.New(clonedWorkload(procs), cfg)
			if err != nil {
				return err
			}
			res, err := sim.Run()
			if err != nil {
				return fmt.Errorf("policy %s: %w", name, err)
			}
			results = append(results, res)
		}

		printComparisonTable(results)
		return nil
	},
}

// clonedWorkload copies the process set so each policy in compare gets
// its own untouched PCBs — the engine mutates them in place as it runs.
func clonedWorkload(procs []*pcb.Process) []*pcb.Process {
	out := make([]*pcb.Process, len(procs))
	for i, p := range procs {
		fresh, err := pcb.New(p.PID, p.ArrivalTime, p.TotalCPUTime, p.IOBurstTime, p.BasePriority)
		if err != nil {
			panic(fmt.Sprintf("cmd: re-validating already-valid process %d failed: %v", p.PID, err))
		}
		out[i] = fresh
	}
	return out
}

func writeResult(res *sched.SimulationResult) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("cmd: marshaling result: %w", err)
	}

	if outputFile == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		return fmt.Errorf("cmd: writing result file: %w", err)
	}
	logrus.Infof("cmd: wrote result to %s", outputFile)
	return nil
}

func printComparisonTable(results []*sched.SimulationResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "POLICY\tAVG_TURNAROUND\tAVG_WAITING\tCPU_UTIL%\tTHROUGHPUT\tFAIRNESS\tPREEMPTIONS")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.1f\t%.3f\t%.3f\t%d\n",
			r.PolicyName,
			r.Metrics[sched.MetricAvgTurnaround],
			r.Metrics[sched.MetricAvgWaiting],
			r.Metrics[sched.MetricCPUUtilisation],
			r.Metrics[sched.MetricThroughput],
			r.Metrics[sched.MetricFairnessIndex],
			r.PreemptionCount,
		)
	}
}

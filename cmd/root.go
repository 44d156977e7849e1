// cmd/root.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/internal/sched/policy"
)

var (
	logLevel string

	policyName        string
	contextSwitchTime int64
	maxTime           int64
	rrQuantum         int64
	mlfqQuanta        []int64
	mlfqBoostInterval int64
	mlfqPromotion     int
	priorityAging     int64
	priorityPreempt   bool

	traceFile    string
	workloadSeed int64
	numProcesses int
	workloadType string

	scenarioFile string
	outputFile   string
)

var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Discrete-event simulator for CPU scheduling policies",
}

var allPolicies = []policy.Name{
	policy.NameFCFS,
	policy.NameSJF,
	policy.NameSRTF,
	policy.NameRR,
	policy.NamePriority,
	policy.NameMLFQ,
}

func setLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the root command, matching the teacher's
// Execute/os.Exit(1)-on-error shape.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func registerWorkloadFlags(c *cobra.Command) {
	c.Flags().StringVar(&traceFile, "trace", "", "trace file to load the workload from (overrides synthetic generation)")
	c.Flags().Int64Var(&workloadSeed, "seed", 1, "RNG seed for synthetic workload generation")
	c.Flags().IntVar(&numProcesses, "n", 100, "number of synthetic processes to generate when --trace is not set")
	c.Flags().StringVar(&workloadType, "workload-type", "mixed", "synthetic workload mix: cpu_intensive, io_intensive, mixed")
	c.Flags().StringVar(&scenarioFile, "config", "", "YAML scenario file overriding policy/context-switch/max-time defaults")
	c.Flags().StringVar(&outputFile, "out", "", "write the JSON result here instead of stdout")
}

func registerPolicyFlags(c *cobra.Command) {
	c.Flags().Int64Var(&contextSwitchTime, "context-switch", 2, "ticks added on every dispatch")
	c.Flags().Int64Var(&maxTime, "max-time", 0, "hard cap on simulated clock (0 = unbounded)")
	c.Flags().Int64Var(&rrQuantum, "rr-quantum", 20, "round-robin time slice")
	c.Flags().Int64SliceVar(&mlfqQuanta, "mlfq-quanta", []int64{10, 20, 40}, "per-level MLFQ time slices")
	c.Flags().Int64Var(&mlfqBoostInterval, "mlfq-boost-interval", 1000, "MLFQ boost interval")
	c.Flags().IntVar(&mlfqPromotion, "mlfq-promotion-threshold", 2, "consecutive quantum expiries before MLFQ demotes a process")
	c.Flags().Int64Var(&priorityAging, "priority-aging-interval", 1000, "priority aging sweep interval")
	c.Flags().BoolVar(&priorityPreempt, "priority-preemptive", true, "preemptive priority scheduling")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "log level (debug, info, warn, error)")

	registerWorkloadFlags(runCmd)
	registerPolicyFlags(runCmd)
	runCmd.Flags().StringVar(&policyName, "policy", "fcfs", "scheduling policy: fcfs, sjf, srtf, rr, priority, mlfq")

	registerWorkloadFlags(compareCmd)
	registerPolicyFlags(compareCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}

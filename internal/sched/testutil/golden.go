// Package testutil provides shared test fixtures for the scheduler:
// a small set of named scenarios used to check spec.md §8's
// determinism and fairness-bound properties across every policy.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset is the structure of testdata/scenarios.json.
type GoldenDataset struct {
	Scenarios []GoldenScenario `json:"scenarios"`
}

// GoldenScenario names a workload/policy combination to replay.
// Unlike a traditional golden file, it carries no precomputed expected
// metrics — the RNG-driven synthetic workload makes hand-verified
// expected numbers brittle to regenerate by hand. What it fixes is the
// input: loading it twice and running it twice must produce identical
// output (spec.md §8 property 8), and the output must respect the
// fairness, utilisation and per-process timing bounds that
// golden_test.go checks, regardless of policy.
type GoldenScenario struct {
	Name              string  `json:"name"`
	Policy            string  `json:"policy"`
	Seed              int64   `json:"seed"`
	NumProcesses      int     `json:"num_processes"`
	WorkloadType      string  `json:"workload_type"`
	ContextSwitchTime int64   `json:"context_switch_time"`
	MaxTime           int64   `json:"max_time"`
	RRQuantum         int64   `json:"rr_quantum"`
}

// LoadGoldenDataset loads testdata/scenarios.json, resolved relative to
// this source file's location rather than the test binary's working
// directory.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "scenarios.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("failed to parse golden dataset: %v", err)
	}
	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative
// tolerance, for the rare metric a test does want to pin down exactly.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/internal/sched/policy"
)

func resetFlagVars(t *testing.T) {
	t.Helper()
	policyName = "fcfs"
	contextSwitchTime = 2
	maxTime = 0
	rrQuantum = 20
	mlfqQuanta = []int64{10, 20, 40}
	mlfqBoostInterval = 1000
	mlfqPromotion = 2
	priorityAging = 1000
	priorityPreempt = true
	scenarioFile = ""
}

func TestBuildConfig_UsesFlagValuesWithNoScenarioFile(t *testing.T) {
	resetFlagVars(t)
	policyName = "rr"
	rrQuantum = 99

	cfg, err := buildConfig()
	require.NoError(t, err)
	assert.Equal(t, policy.NameRR, cfg.Policy)
	assert.Equal(t, int64(99), cfg.RR.Quantum)
}

func TestBuildConfig_ScenarioFileOverridesFlags(t *testing.T) {
	resetFlagVars(t)
	policyName = "fcfs"

	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("policy: mlfq\nmlfq:\n  boost_interval: 500\n"), 0o644))
	scenarioFile = path

	cfg, err := buildConfig()
	require.NoError(t, err)
	assert.Equal(t, policy.NameMLFQ, cfg.Policy)
	assert.Equal(t, int64(500), cfg.MLFQ.BoostInterval)
}

func TestBuildConfig_ScenarioFileOmittingPriorityDoesNotZeroDefault(t *testing.T) {
	resetFlagVars(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("policy: priority\n"), 0o644))
	scenarioFile = path

	cfg, err := buildConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Priority.Preemptive, "priority.preemptive must keep its true default when the scenario file omits the section")
}

func TestBuildConfig_ScenarioFileCanExplicitlyDisablePreemption(t *testing.T) {
	resetFlagVars(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("policy: priority\npriority:\n  preemptive: false\n"), 0o644))
	scenarioFile = path

	cfg, err := buildConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Priority.Preemptive)
}

func TestLoadScenarioFile_RejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("policy: fcfs\ntypo_field: 1\n"), 0o644))

	_, err := loadScenarioFile(path)
	assert.Error(t, err)
}

func TestLoadScenarioFile_MissingFileIsAnError(t *testing.T) {
	_, err := loadScenarioFile("/nonexistent/scenario.yaml")
	assert.Error(t, err)
}

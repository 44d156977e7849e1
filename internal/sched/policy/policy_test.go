package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/internal/pcb"
)

func mustProc(t *testing.T, pid int, arrival, cpu int64, priority int) *pcb.Process {
	t.Helper()
	p, err := pcb.New(pid, arrival, cpu, 0, priority)
	require.NoError(t, err)
	return p
}

func TestNew_ConstructsEachKnownVariant(t *testing.T) {
	params := Params{
		RRQuantum:              20,
		PriorityPreemptive:     true,
		PriorityAgingInterval:  1000,
		MLFQQuanta:             []int64{10, 20, 40},
		MLFQBoostInterval:      1000,
		MLFQPromotionThreshold: 1,
	}
	names := []Name{NameFCFS, NameSJF, NameSRTF, NameRR, NamePriority, NameMLFQ}
	for _, n := range names {
		n := n
		t.Run(string(n), func(t *testing.T) {
			s := New(n, params)
			require.NotNil(t, s)
			assert.Equal(t, 0, s.Len())
		})
	}
}

func TestNew_PanicsOnUnknownName(t *testing.T) {
	assert.Panics(t, func() { New(Name("bogus"), Params{}) })
}

package policy

import (
	"sort"

	"github.com/schedsim/schedsim/internal/pcb"
)

// SRTF (shortest remaining time first) is SJF's preemptive sibling:
// selection is by smallest RemainingCPUTime, and an arriving or
// IO-returning process preempts the running one if it has strictly less
// remaining work.
type SRTF struct {
	queue []*pcb.Process
}

// NewSRTF creates an empty shortest-remaining-time-first scheduler.
func NewSRTF() *SRTF {
	return &SRTF{}
}

func (s *SRTF) Admit(p *pcb.Process) {
	s.queue = append(s.queue, p)
}

func (s *SRTF) Next() *pcb.Process {
	if len(s.queue) == 0 {
		return nil
	}
	sort.SliceStable(s.queue, func(i, j int) bool {
		a, b := s.queue[i], s.queue[j]
		if a.RemainingCPUTime != b.RemainingCPUTime {
			return a.RemainingCPUTime < b.RemainingCPUTime
		}
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		return a.PID < b.PID
	})
	p := s.queue[0]
	s.queue = s.queue[1:]
	return p
}

func (s *SRTF) Preemptive() bool { return true }

func (s *SRTF) ShouldPreempt(running, arriving *pcb.Process) bool {
	return arriving.RemainingCPUTime < running.RemainingCPUTime
}

func (s *SRTF) OnQuantumExpired(p *pcb.Process) {
	// SRTF never imposes a quantum.
	s.queue = append(s.queue, p)
}

func (s *SRTF) TimeSliceFor(_ *pcb.Process) (int64, bool) { return 0, false }

func (s *SRTF) Tick(_ int64) {}

func (s *SRTF) Len() int { return len(s.queue) }

func (s *SRTF) Name() string { return "SRTF" }

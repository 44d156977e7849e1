package policy

import (
	"sort"

	"github.com/schedsim/schedsim/internal/pcb"
)

// SJF selects the ready process with the smallest total CPU time,
// breaking ties by arrival time then PID for determinism — the same
// three-key tie-break shape as the teacher's SJFScheduler.OrderQueue.
// Never preempts and never imposes a quantum.
type SJF struct {
	queue []*pcb.Process
}

// NewSJF creates an empty shortest-job-first scheduler.
func NewSJF() *SJF {
	return &SJF{}
}

func (s *SJF) Admit(p *pcb.Process) {
	s.queue = append(s.queue, p)
}

func (s *SJF) Next() *pcb.Process {
	if len(s.queue) == 0 {
		return nil
	}
	sort.SliceStable(s.queue, func(i, j int) bool {
		a, b := s.queue[i], s.queue[j]
		if a.TotalCPUTime != b.TotalCPUTime {
			return a.TotalCPUTime < b.TotalCPUTime
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

func (s *SJF) Preemptive() bool { return false }

func (s *SJF) ShouldPreempt(_, _ *pcb.Process) bool { return false }

func (s *SJF) OnQuantumExpired(p *pcb.Process) {
	s.queue = append(s.queue, p)
}

func (s *SJF) TimeSliceFor(_ *pcb.Process) (int64, bool) { return 0, false }

func (s *SJF) Tick(_ int64) {}

func (s *SJF) Len() int { return len(s.queue) }

func (s *SJF) Name() string { return "SJF" }

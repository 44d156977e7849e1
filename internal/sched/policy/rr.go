package policy

import "github.com/schedsim/schedsim/internal/pcb"

// RR serves processes FIFO with a fixed quantum; a process that exhausts
// its quantum is reinstated at the tail. Never preempts on arrival — only
// the quantum itself forces a handoff.
type RR struct {
	queue    []*pcb.Process
	Quantum  int64
}

// NewRR creates a round-robin scheduler with the given quantum in ticks.
func NewRR(quantum int64) *RR {
	return &RR{Quantum: quantum}
}

func (r *RR) Admit(p *pcb.Process) {
	r.queue = append(r.queue, p)
}

func (r *RR) Next() *pcb.Process {
	if len(r.queue) == 0 {
		return nil
	}
	p := r.queue[0]
	r.queue = r.queue[1:]
	return p
}

func (r *RR) Preemptive() bool { return false }

func (r *RR) ShouldPreempt(_, _ *pcb.Process) bool { return false }

func (r *RR) OnQuantumExpired(p *pcb.Process) {
	r.queue = append(r.queue, p)
}

func (r *RR) TimeSliceFor(_ *pcb.Process) (int64, bool) { return r.Quantum, true }

func (r *RR) Tick(_ int64) {}

func (r *RR) Len() int { return len(r.queue) }

func (r *RR) Name() string { return "RR" }

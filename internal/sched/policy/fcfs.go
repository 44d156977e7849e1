package policy

import "github.com/schedsim/schedsim/internal/pcb"

// FCFS serves processes strictly in admit order. Never preempts and never
// imposes a quantum — a dispatched process runs to CPU-burst completion.
type FCFS struct {
	queue []*pcb.Process
}

// NewFCFS creates an empty first-come-first-served scheduler.
func NewFCFS() *FCFS {
	return &FCFS{}
}

func (f *FCFS) Admit(p *pcb.Process) {
	f.queue = append(f.queue, p)
}

func (f *FCFS) Next() *pcb.Process {
	if len(f.queue) == 0 {
		return nil
	}
	p := f.queue[0]
	f.queue = f.queue[1:]
	return p
}

func (f *FCFS) Preemptive() bool { return false }

func (f *FCFS) ShouldPreempt(_, _ *pcb.Process) bool { return false }

func (f *FCFS) OnQuantumExpired(p *pcb.Process) {
	// FCFS never imposes a quantum; a quantum expiry cannot legitimately
	// reach this scheduler.
	f.queue = append(f.queue, p)
}

func (f *FCFS) TimeSliceFor(_ *pcb.Process) (int64, bool) { return 0, false }

func (f *FCFS) Tick(_ int64) {}

func (f *FCFS) Len() int { return len(f.queue) }

func (f *FCFS) Name() string { return "FCFS" }

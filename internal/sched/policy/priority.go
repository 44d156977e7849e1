package policy

import (
	"sort"

	"github.com/schedsim/schedsim/internal/pcb"
)

// Priority selects the ready process with the smallest priority value
// (smaller = more urgent), ties broken by arrival then PID. In its
// preemptive form an arrival or I/O return with strictly smaller priority
// than the running process preempts immediately; the non-preemptive form
// never preempts.
//
// Aging runs on every Tick once AgingInterval has elapsed since the last
// sweep: every ready process with Priority > 1 is decremented by one per
// whole AgingInterval elapsed (floored at 1), preventing starvation of
// low-priority work — grounded
// on original_source's PriorityScheduler.apply_aging elapsed-gate shape.
type Priority struct {
	queue         []*pcb.Process
	preemptive    bool
	AgingInterval int64
	lastAging     int64
}

// NewPriority creates a priority scheduler. preemptive selects P vs NP;
// agingInterval is the virtual-time gap between aging sweeps.
func NewPriority(preemptive bool, agingInterval int64) *Priority {
	return &Priority{preemptive: preemptive, AgingInterval: agingInterval}
}

func (pr *Priority) Admit(p *pcb.Process) {
	pr.queue = append(pr.queue, p)
}

func (pr *Priority) Next() *pcb.Process {
	if len(pr.queue) == 0 {
		return nil
	}
	sort.SliceStable(pr.queue, func(i, j int) bool {
		a, b := pr.queue[i], pr.queue[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		return a.PID < b.PID
	})
	p := pr.queue[0]
	pr.queue = pr.queue[1:]
	return p
}

func (pr *Priority) Preemptive() bool { return pr.preemptive }

func (pr *Priority) ShouldPreempt(running, arriving *pcb.Process) bool {
	if !pr.preemptive {
		return false
	}
	return arriving.Priority < running.Priority
}

func (pr *Priority) OnQuantumExpired(p *pcb.Process) {
	// Priority never imposes a quantum.
	pr.queue = append(pr.queue, p)
}

func (pr *Priority) TimeSliceFor(_ *pcb.Process) (int64, bool) { return 0, false }

// Tick is invoked unconditionally at every engine event pop, which can
// leave arbitrarily long gaps between calls (e.g. one process running
// uninterrupted for a thousand ticks). steps counts how many whole
// aging_interval boundaries were crossed since the last sweep, so a
// sparse call sequence still ages by the correct amount rather than by
// one step regardless of how much virtual time passed.
func (pr *Priority) Tick(now int64) {
	if pr.AgingInterval <= 0 {
		return
	}
	steps := (now - pr.lastAging) / pr.AgingInterval
	if steps <= 0 {
		return
	}
	pr.lastAging += steps * pr.AgingInterval
	for _, p := range pr.queue {
		if p.Priority > 1 {
			dec := int64(p.Priority - 1)
			if dec > steps {
				dec = steps
			}
			p.Priority -= int(dec)
		}
	}
}

func (pr *Priority) Len() int { return len(pr.queue) }

func (pr *Priority) Name() string {
	if pr.preemptive {
		return "Priority(P)"
	}
	return "Priority(NP)"
}

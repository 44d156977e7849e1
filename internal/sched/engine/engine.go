// Package engine implements the discrete-event CPU scheduling simulator:
// the event loop described in spec.md §4.4-4.7, wired to a pcb.Process
// table, an event.Queue and a policy.Scheduler. It advances virtual time
// by consuming events, never by per-tick polling.
package engine

import (
	"fmt"

	"github.com/schedsim/schedsim/internal/pcb"
	"github.com/schedsim/schedsim/internal/sched/event"
	"github.com/schedsim/schedsim/internal/sched/policy"
)

// GanttSegment is one contiguous span a process held the CPU.
type GanttSegment struct {
	Start int64
	End   int64
	PID   int
}

// Result is the engine's raw output, before the stats package aggregates
// it into a SimulationResult.
type Result struct {
	Completed             []*pcb.Process
	TruncatedCount        int
	Gantt                 []GanttSegment
	TotalTime             int64
	IdleTime              int64
	DispatchCount         int // every hand-off of the CPU to a process, C>0 or not
	ContextSwitchOverhead int64
	PreemptionCount       int
}

// Engine drives one simulation run. It is single-use: construct, call
// Run once, discard.
type Engine struct {
	scheduler         policy.Scheduler
	processes         map[int]*pcb.Process
	queue             *event.Queue
	contextSwitchTime int64
	maxTime           int64

	clock   int64
	running *pcb.Process

	ganttOpen    bool
	ganttStart   int64
	ganttPID     int
	dispatchedAt int64 // decidedAt of the currently open dispatch, for switch-overhead accrual

	completed             []*pcb.Process
	truncatedCount        int
	gantt                 []GanttSegment
	idleTime              int64
	dispatchCount         int
	contextSwitchOverhead int64
	preemptions           int
}

// New builds an Engine for the given process set. contextSwitchTime is
// the flat per-dispatch overhead C; maxTime is the simulation horizon.
// Returns a usage error for duplicate pids — a malformed workload, not a
// programmer error.
func New(processes []*pcb.Process, sched policy.Scheduler, contextSwitchTime, maxTime int64) (*Engine, error) {
	table := make(map[int]*pcb.Process, len(processes))
	q := event.New()
	for _, p := range processes {
		if _, dup := table[p.PID]; dup {
			return nil, fmt.Errorf("engine: duplicate pid %d", p.PID)
		}
		table[p.PID] = p
		q.Schedule(event.Event{Timestamp: p.ArrivalTime, Kind: event.KindArrival, PID: p.PID})
	}
	return &Engine{
		scheduler:         sched,
		processes:         table,
		queue:             q,
		contextSwitchTime: contextSwitchTime,
		maxTime:           maxTime,
	}, nil
}

// Run executes the simulation to completion or the configured horizon.
func (e *Engine) Run() *Result {
	truncated := false

	for {
		if e.running == nil && e.queue.IsEmpty() && e.scheduler.Len() == 0 {
			break
		}

		e.scheduler.Tick(e.clock)

		ev, ok := e.queue.Peek()
		if !ok {
			if e.running != nil {
				panic("engine: process running with no pending completion event")
			}
			break
		}
		if ev.Timestamp > e.maxTime {
			truncated = true
			break
		}
		ev, _ = e.queue.PopNext()

		if ev.Timestamp < e.clock {
			panic(fmt.Sprintf("engine: clock went backwards: event at %d, clock at %d", ev.Timestamp, e.clock))
		}
		if delta := ev.Timestamp - e.clock; delta > 0 {
			if e.running == nil {
				e.idleTime += delta
			}
			e.clock = ev.Timestamp
		}

		proc, known := e.processes[ev.PID]
		if !known {
			panic(fmt.Sprintf("engine: event for unknown pid %d", ev.PID))
		}

		switch ev.Kind {
		case event.KindArrival:
			e.handleArrival(proc)
		case event.KindIOBurstComplete:
			if proc.State == pcb.StateWaiting {
				e.handleIOComplete(proc)
			}
		case event.KindCPUBurstComplete:
			if proc.State == pcb.StateRunning && proc.DispatchSeq() == ev.DispatchSeq {
				e.handleCPUBurstComplete(proc)
			}
		case event.KindQuantumExpired:
			if proc.State == pcb.StateRunning && proc.DispatchSeq() == ev.DispatchSeq {
				e.handleQuantumExpired(proc)
			}
		}

		if e.running == nil && e.scheduler.Len() > 0 {
			e.dispatch(e.clock)
		}
	}

	return e.finish(truncated)
}

func (e *Engine) handleArrival(p *pcb.Process) {
	p.EnterReady(e.clock)
	e.scheduler.Admit(p)
	e.maybePreempt(p)
}

func (e *Engine) handleIOComplete(p *pcb.Process) {
	p.EnterReady(e.clock)
	e.scheduler.Admit(p)
	e.maybePreempt(p)
}

func (e *Engine) maybePreempt(arriving *pcb.Process) {
	if e.running == nil {
		return
	}
	// The running process's RemainingCPUTime is only brought up to date
	// when it leaves the CPU; compare against what it has left as of now.
	consumed := e.running.CPUConsumedSince(e.clock)
	if consumed < 0 {
		consumed = 0
	}
	e.running.RemainingCPUTime -= consumed
	shouldPreempt := e.scheduler.ShouldPreempt(e.running, arriving)
	e.running.RemainingCPUTime += consumed
	if shouldPreempt {
		e.preempt(e.clock)
	}
}

// preempt takes the running process off the CPU at t and re-admits it. If
// t falls before the process's dispatch finished its context switch, the
// switch is simply aborted: consumeCPU clamps to zero, closeRunningSegment
// no-ops (the Gantt segment never opened since end <= start), and the
// ticks already spent switching toward it are accrued as overhead by
// closeRunningSegment, up to t.
func (e *Engine) preempt(t int64) {
	p := e.running
	e.closeRunningSegment(t)
	p.Preempt(t)
	e.preemptions++
	e.scheduler.Admit(p)
	e.running = nil
}

func (e *Engine) handleCPUBurstComplete(p *pcb.Process) {
	p.FinishBurst(e.clock)
	if p.RemainingCPUTime != 0 {
		panic(fmt.Sprintf("engine: pid %d natural completion left remaining=%d", p.PID, p.RemainingCPUTime))
	}
	e.closeRunningSegment(e.clock)
	if p.NeedsIO() {
		ioTime := p.StartIO()
		e.queue.Schedule(event.Event{Timestamp: e.clock + ioTime, Kind: event.KindIOBurstComplete, PID: p.PID})
	} else {
		p.Terminate(e.clock)
		e.completed = append(e.completed, p)
	}
	e.running = nil
}

func (e *Engine) handleQuantumExpired(p *pcb.Process) {
	e.closeRunningSegment(e.clock)
	p.QuantumExpire(e.clock)
	e.scheduler.OnQuantumExpired(p)
	e.running = nil
}

// dispatch implements spec.md §4.6: select the next process, pay the
// context-switch cost, and schedule the pair of events (natural
// completion, and quantum expiry if the policy imposes a shorter slice)
// that the validity check in Run will later arbitrate between.
func (e *Engine) dispatch(decidedAt int64) {
	q := e.scheduler.Next()
	if q == nil {
		return
	}

	effectiveStart := decidedAt
	if e.contextSwitchTime > 0 {
		effectiveStart = decidedAt + e.contextSwitchTime
	}
	e.dispatchCount++

	seq := q.Dispatch(decidedAt, effectiveStart)
	e.running = q
	e.ganttOpen = true
	e.ganttStart = effectiveStart
	e.ganttPID = q.PID
	e.dispatchedAt = decidedAt

	e.queue.Schedule(event.Event{
		Timestamp:   effectiveStart + q.RemainingCPUTime,
		Kind:        event.KindCPUBurstComplete,
		PID:         q.PID,
		DispatchSeq: seq,
	})

	if slice, ok := e.scheduler.TimeSliceFor(q); ok && slice < q.RemainingCPUTime {
		e.queue.Schedule(event.Event{
			Timestamp:   effectiveStart + slice,
			Kind:        event.KindQuantumExpired,
			PID:         q.PID,
			DispatchSeq: seq,
		})
	}
}

// closeRunningSegment ends the currently open dispatch at end, both the
// Gantt segment (if the context switch actually completed) and the
// switch-overhead accrual for [dispatchedAt, ganttStart). A dispatch
// aborted by a mid-switch preemption (end before ganttStart) contributes
// only the time it actually spent switching, not the full nominal
// contextSwitchTime, so CPU service + idle + overhead still sums to T.
func (e *Engine) closeRunningSegment(end int64) {
	if !e.ganttOpen {
		return
	}
	switchEnd := end
	if switchEnd > e.ganttStart {
		switchEnd = e.ganttStart
	}
	if switchEnd > e.dispatchedAt {
		e.contextSwitchOverhead += switchEnd - e.dispatchedAt
	}
	if end > e.ganttStart {
		e.gantt = append(e.gantt, GanttSegment{Start: e.ganttStart, End: end, PID: e.ganttPID})
	}
	e.ganttOpen = false
}

func (e *Engine) finish(truncated bool) *Result {
	if truncated {
		if e.clock < e.maxTime {
			gap := e.maxTime - e.clock
			if e.running == nil {
				e.idleTime += gap
			}
			e.clock = e.maxTime
		}
		if e.running != nil {
			e.closeRunningSegment(e.clock)
			e.running = nil
		}
		for _, p := range e.processes {
			if p.State != pcb.StateTerminated {
				e.truncatedCount++
			}
		}
	}

	return &Result{
		Completed:             e.completed,
		TruncatedCount:        e.truncatedCount,
		Gantt:                 e.gantt,
		TotalTime:             e.clock,
		IdleTime:              e.idleTime,
		DispatchCount:         e.dispatchCount,
		ContextSwitchOverhead: e.contextSwitchOverhead,
		PreemptionCount:       e.preemptions,
	}
}

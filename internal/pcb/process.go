// Package pcb defines the process control block simulated by the scheduler.
package pcb

import "fmt"

// State is the lifecycle state of a simulated process.
type State string

const (
	StateNew        State = "NEW"
	StateReady      State = "READY"
	StateRunning    State = "RUNNING"
	StateWaiting    State = "WAITING"
	StateTerminated State = "TERMINATED"
)

// Process models one simulated process's identity, workload and runtime
// state. Workload fields are immutable after construction; everything
// else is mutated by the engine and the scheduler as the process moves
// through its lifecycle.
type Process struct {
	// Identity
	PID int

	// Workload (immutable after creation)
	ArrivalTime  int64
	TotalCPUTime int64
	IOBurstTime  int64
	BasePriority int

	// Mutable state
	State             State
	RemainingCPUTime  int64
	Priority          int
	QueueLevel        int // MLFQ only, starts 0
	FirstRunTime      int64
	FirstRunSet       bool
	CompletionTime    int64
	CompletionSet     bool
	AccWaitingTime    int64
	ContextSwitches   int

	// readySince is the virtual time of the most recent transition into
	// READY; accumulated waiting time is computed lazily on the way out
	// of READY so the engine never has to walk the ready set per tick.
	readySince    int64
	readySinceSet bool

	// dispatchSeq is bumped on every dispatch. Events captured at dispatch
	// time carry the dispatchSeq they were issued under; the engine
	// discards any event whose dispatchSeq no longer matches, which is
	// the validity check spec.md §4.5 describes in lieu of a decrease-key
	// heap operation.
	dispatchSeq uint64

	// dispatchTime is the clock at which the process was last set RUNNING
	// (after any context-switch delay), used to compute CPU consumed on
	// preemption.
	dispatchTime int64

	// mlfqRunCount tracks consecutive quantum expirations at the current
	// MLFQ queue level; reset on demotion, or by a boost that finds the
	// process queued.
	mlfqRunCount int

	// ioDone gates the single post-CPU I/O hop: a process goes WAITING at
	// most once, the first time its CPU demand is exhausted. A second
	// exhaustion (the zero-length re-dispatch after I/O returns it to
	// READY with nothing left to run) terminates instead of waiting again.
	ioDone bool
}

// New constructs a Process in state NEW. Returns an error for malformed
// workload parameters — a usage error per spec.md §7, not a panic, since
// a caller assembling a batch of processes from an external source (a
// trace file, a generator) should be able to reject one bad record
// without aborting construction of the whole batch.
func New(pid int, arrival, totalCPU, ioBurst int64, priority int) (*Process, error) {
	if pid <= 0 {
		return nil, fmt.Errorf("pcb: pid must be positive, got %d", pid)
	}
	if arrival < 0 {
		return nil, fmt.Errorf("pcb: arrival time must be >= 0, got %d", arrival)
	}
	if totalCPU < 1 {
		return nil, fmt.Errorf("pcb: total cpu time must be >= 1, got %d", totalCPU)
	}
	if ioBurst < 0 {
		return nil, fmt.Errorf("pcb: io burst time must be >= 0, got %d", ioBurst)
	}
	if priority < 1 {
		return nil, fmt.Errorf("pcb: priority must be >= 1, got %d", priority)
	}
	return &Process{
		PID:              pid,
		ArrivalTime:      arrival,
		TotalCPUTime:     totalCPU,
		IOBurstTime:      ioBurst,
		BasePriority:     priority,
		State:            StateNew,
		RemainingCPUTime: totalCPU,
		Priority:         priority,
	}, nil
}

// DispatchSeq returns the current dispatch epoch.
func (p *Process) DispatchSeq() uint64 { return p.dispatchSeq }

// Dispatch marks the process RUNNING. decidedAt is the clock at which the
// engine chose to dispatch it (when it stops accumulating waiting time);
// effectiveStart is decidedAt plus any context-switch delay (when CPU
// consumption actually begins). Returns the new dispatch epoch for the
// engine to stamp onto the completion/quantum events it schedules for
// this run.
func (p *Process) Dispatch(decidedAt, effectiveStart int64) uint64 {
	p.leaveReady(decidedAt)
	p.State = StateRunning
	p.dispatchTime = effectiveStart
	p.dispatchSeq++
	if !p.FirstRunSet {
		p.FirstRunTime = effectiveStart
		p.FirstRunSet = true
	}
	return p.dispatchSeq
}

// EnterReady transitions the process to READY at clock t, stamping the
// ready-since marker used for O(1) waiting-time accounting.
func (p *Process) EnterReady(t int64) {
	p.State = StateReady
	p.readySince = t
	p.readySinceSet = true
}

// leaveReady accumulates waiting time for the interval since the process
// last entered READY. No-op if the process was not READY.
func (p *Process) leaveReady(t int64) {
	if p.readySinceSet {
		p.AccWaitingTime += t - p.readySince
		p.readySinceSet = false
	}
}

// CPUConsumedSince returns how much CPU time has elapsed since dispatch.
func (p *Process) CPUConsumedSince(t int64) int64 {
	return t - p.dispatchTime
}

// consumeCPU decrements RemainingCPUTime by the CPU time actually consumed
// since dispatch and returns the amount consumed. Shared by every path
// that takes the process off the CPU. Clamped at zero: a process
// preempted while its dispatch's context switch is still in flight (t
// before its effective start) consumed nothing yet.
func (p *Process) consumeCPU(t int64) int64 {
	consumed := p.CPUConsumedSince(t)
	if consumed < 0 {
		consumed = 0
	}
	p.RemainingCPUTime -= consumed
	return consumed
}

// Preempt decrements remaining CPU time by the time actually consumed
// since dispatch, transitions back to READY, and bumps the context-switch
// counter. Returns the CPU time consumed, for the engine's accounting.
// This is the involuntary path — an arrival or I/O return outranked the
// running process — distinct from a voluntary quantum expiry.
func (p *Process) Preempt(t int64) int64 {
	consumed := p.consumeCPU(t)
	p.ContextSwitches++
	p.EnterReady(t)
	return consumed
}

// QuantumExpire decrements remaining CPU time by the quantum consumed and
// transitions back to READY. Unlike Preempt, this does not bump
// ContextSwitches — a process that simply ran out its slice was not
// outranked by anything.
func (p *Process) QuantumExpire(t int64) int64 {
	consumed := p.consumeCPU(t)
	p.EnterReady(t)
	return consumed
}

// FinishBurst drives RemainingCPUTime to zero on an uninterrupted
// CPU_BURST_COMPLETE — the process ran to the end of whatever remained at
// dispatch. It does not change state; the caller decides between the
// post-CPU I/O hop and termination via NeedsIO/StartIO.
func (p *Process) FinishBurst(t int64) int64 {
	return p.consumeCPU(t)
}

// NeedsIO reports whether the process still owes its single post-CPU I/O
// wait. False once StartIO has been called, or if it never had one.
func (p *Process) NeedsIO() bool {
	return p.IOBurstTime > 0 && !p.ioDone
}

// StartIO marks the I/O hop taken and transitions to WAITING, returning
// the duration the engine should schedule IO_BURST_COMPLETE after.
func (p *Process) StartIO() int64 {
	p.ioDone = true
	p.EnterWaiting()
	return p.IOBurstTime
}

// Terminate marks the process TERMINATED at clock t. Panics if
// RemainingCPUTime isn't exactly zero — an internal invariant breach per
// spec.md §7, never a runtime condition a caller can trigger validly.
func (p *Process) Terminate(t int64) {
	if p.RemainingCPUTime != 0 {
		panic(fmt.Sprintf("pcb: terminate called on pid %d with remaining=%d", p.PID, p.RemainingCPUTime))
	}
	p.leaveReady(t)
	p.State = StateTerminated
	p.CompletionTime = t
	p.CompletionSet = true
}

// EnterWaiting transitions RUNNING -> WAITING for the post-burst I/O hop.
func (p *Process) EnterWaiting() {
	p.State = StateWaiting
}

// Turnaround, Waiting and Response are only meaningful once the process
// has completed.
func (p *Process) Turnaround() int64 { return p.CompletionTime - p.ArrivalTime }
func (p *Process) Waiting() int64    { return p.AccWaitingTime }
func (p *Process) Response() int64   { return p.FirstRunTime - p.ArrivalTime }

// MLFQRunCount and its mutators back the MLFQ policy's demotion counter.
func (p *Process) MLFQRunCount() int        { return p.mlfqRunCount }
func (p *Process) IncMLFQRunCount()         { p.mlfqRunCount++ }
func (p *Process) ResetMLFQRunCount()       { p.mlfqRunCount = 0 }

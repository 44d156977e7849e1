// Package policy implements the six CPU scheduling policies behind one
// contract, per spec.md §4.2–§4.3. Each variant is a small state machine
// over READY processes; none is required to be goroutine-safe — the
// engine drives exactly one policy from a single goroutine, the same
// assumption the teacher's PartitionedRNG documents for itself.
package policy

import "github.com/schedsim/schedsim/internal/pcb"

// Scheduler is the contract every policy variant implements.
type Scheduler interface {
	// Admit adds a READY process to the policy's internal structure.
	Admit(p *pcb.Process)

	// Next removes and returns the selected process, or nil if empty.
	Next() *pcb.Process

	// Preemptive reports whether this policy ever preempts a running
	// process on arrival or I/O return.
	Preemptive() bool

	// ShouldPreempt is called whenever a process becomes READY while
	// another is RUNNING; it decides whether that arrival preempts the
	// running process immediately.
	ShouldPreempt(running, arriving *pcb.Process) bool

	// OnQuantumExpired reinstates p in the policy's structure (placement
	// is policy-dependent: RR appends to the tail, MLFQ may demote)
	// if p still has work remaining.
	OnQuantumExpired(p *pcb.Process)

	// TimeSliceFor returns the quantum the engine should enforce for p's
	// next dispatch, or (0, false) if p should run to CPU-burst
	// completion uninterrupted.
	TimeSliceFor(p *pcb.Process) (int64, bool)

	// Tick is a per-event-pop maintenance hook for background work:
	// priority aging, MLFQ boosts. It is called unconditionally by the
	// engine on every event pop (spec.md §9's resolved Open Question);
	// implementations that don't need periodic maintenance no-op.
	Tick(now int64)

	// Len reports how many processes the policy currently holds ready.
	// The engine uses this, not a type switch, to decide whether it still
	// has work to dispatch.
	Len() int

	// Name identifies the policy for SimulationResult.PolicyName.
	Name() string
}

// Package event defines the simulator's event types and its deterministic
// min-priority queue.
package event

// Kind enumerates the four event types the engine dispatches.
type Kind string

const (
	KindArrival          Kind = "ARRIVAL"
	KindCPUBurstComplete Kind = "CPU_BURST_COMPLETE"
	KindIOBurstComplete  Kind = "IO_BURST_COMPLETE"
	KindQuantumExpired   Kind = "QUANTUM_EXPIRED"
)

// Event is a timestamped, typed occurrence the engine consumes in
// timestamp order. PID identifies the target process; DispatchSeq is the
// process's dispatch epoch at the time this event was scheduled, used by
// the engine to recognize and discard obsolete events (spec.md §4.5).
type Event struct {
	Seq         uint64 // insertion sequence, the FIFO tie-breaker
	Timestamp   int64
	Kind        Kind
	PID         int
	DispatchSeq uint64
}

// Queue is a min-priority queue of events ordered by (timestamp,
// insertion sequence) — ties are broken strictly by insertion order, no
// secondary key on event kind (spec.md §3's "Ordering"). It implements
// container/heap.Interface.
type Queue struct {
	events  []Event
	nextSeq uint64
}

// New returns an empty event queue.
func New() *Queue {
	return &Queue{}
}

func (q *Queue) Len() int { return len(q.events) }

func (q *Queue) Less(i, j int) bool {
	a, b := q.events[i], q.events[j]
	if a.Timestamp != b.Timestamp {
		return a.Timestamp < b.Timestamp
	}
	return a.Seq < b.Seq
}

func (q *Queue) Swap(i, j int) { q.events[i], q.events[j] = q.events[j], q.events[i] }

func (q *Queue) Push(x any) { q.events = append(q.events, x.(Event)) }

func (q *Queue) Pop() any {
	old := q.events
	n := len(old)
	item := old[n-1]
	q.events = old[:n-1]
	return item
}

// IsEmpty reports whether the queue has no pending events.
func (q *Queue) IsEmpty() bool { return len(q.events) == 0 }

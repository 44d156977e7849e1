package event

import "container/heap"

func init() {
	// Queue satisfies heap.Interface; this blank assertion documents that
	// intent where a reader first looks, without needing an instance.
	var _ heap.Interface = (*Queue)(nil)
}

// Schedule inserts e into the queue, stamping it with the next insertion
// sequence number for the FIFO tie-break in Less.
func (q *Queue) Schedule(e Event) {
	e.Seq = q.nextSeq
	q.nextSeq++
	heap.Push(q, e)
}

// PopNext removes and returns the earliest-ordered event. The second
// return is false if the queue was empty.
func (q *Queue) PopNext() (Event, bool) {
	if q.IsEmpty() {
		return Event{}, false
	}
	return heap.Pop(q).(Event), true
}

// Peek returns the earliest-ordered event without removing it.
func (q *Queue) Peek() (Event, bool) {
	if q.IsEmpty() {
		return Event{}, false
	}
	return q.events[0], true
}

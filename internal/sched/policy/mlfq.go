package policy

import "github.com/schedsim/schedsim/internal/pcb"

// MLFQ is a multilevel feedback queue: N FIFO queues, one per priority
// level, each with its own quantum. Selection picks the head of the
// lowest-indexed non-empty queue. A process that exhausts its quantum
// PromotionThreshold times at the same level is demoted one level (never
// past the last). A periodic boost moves every queued process back to
// level 0 and resets its run count; a process that is running or waiting
// on I/O when the boost fires is not held here and keeps its level and
// run count.
//
// Grounded on original_source's MLFQScheduler — same demotion-counter and
// boost-interval shapes — adapted from Python deques to Go slices and
// from a free-running elapsed check to the Tick contract shared by every
// policy here.
type MLFQ struct {
	queues             [][]*pcb.Process
	Quanta             []int64
	BoostInterval      int64
	PromotionThreshold int
	lastBoost          int64
}

// NewMLFQ creates an MLFQ scheduler with len(quanta) levels. quanta[i] is
// the time slice for level i; quanta must be non-empty.
func NewMLFQ(quanta []int64, boostInterval int64, promotionThreshold int) *MLFQ {
	return &MLFQ{
		queues:             make([][]*pcb.Process, len(quanta)),
		Quanta:             quanta,
		BoostInterval:      boostInterval,
		PromotionThreshold: promotionThreshold,
	}
}

func (m *MLFQ) numLevels() int { return len(m.queues) }

func (m *MLFQ) Admit(p *pcb.Process) {
	if p.QueueLevel >= m.numLevels() {
		p.QueueLevel = m.numLevels() - 1
	}
	m.queues[p.QueueLevel] = append(m.queues[p.QueueLevel], p)
}

func (m *MLFQ) Next() *pcb.Process {
	for level := 0; level < m.numLevels(); level++ {
		if len(m.queues[level]) > 0 {
			p := m.queues[level][0]
			m.queues[level] = m.queues[level][1:]
			return p
		}
	}
	return nil
}

func (m *MLFQ) Preemptive() bool { return true }

func (m *MLFQ) ShouldPreempt(running, arriving *pcb.Process) bool {
	return arriving.QueueLevel < running.QueueLevel
}

func (m *MLFQ) OnQuantumExpired(p *pcb.Process) {
	p.IncMLFQRunCount()
	if p.MLFQRunCount() >= m.PromotionThreshold && p.QueueLevel < m.numLevels()-1 {
		p.QueueLevel++
		p.ResetMLFQRunCount()
	}
	m.Admit(p)
}

func (m *MLFQ) TimeSliceFor(p *pcb.Process) (int64, bool) {
	level := p.QueueLevel
	if level >= len(m.Quanta) {
		level = len(m.Quanta) - 1
	}
	return m.Quanta[level], true
}

func (m *MLFQ) Tick(now int64) {
	if m.BoostInterval <= 0 {
		return
	}
	steps := (now - m.lastBoost) / m.BoostInterval
	if steps <= 0 {
		return
	}
	m.lastBoost += steps * m.BoostInterval
	for _, p := range m.queues[0] {
		p.ResetMLFQRunCount()
	}
	for level := 1; level < m.numLevels(); level++ {
		for _, p := range m.queues[level] {
			p.QueueLevel = 0
			p.ResetMLFQRunCount()
			m.queues[0] = append(m.queues[0], p)
		}
		m.queues[level] = nil
	}
}

func (m *MLFQ) Len() int {
	n := 0
	for _, q := range m.queues {
		n += len(q)
	}
	return n
}

func (m *MLFQ) Name() string { return "MLFQ" }

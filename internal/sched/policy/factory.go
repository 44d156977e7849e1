package policy

import "fmt"

// Name identifies a policy variant by its configuration key.
type Name string

const (
	NameFCFS         Name = "fcfs"
	NameSJF          Name = "sjf"
	NameSRTF         Name = "srtf"
	NameRR           Name = "rr"
	NamePriority     Name = "priority"
	NameMLFQ         Name = "mlfq"
)

// Params bundles the construction knobs every variant might need; fields
// irrelevant to a given variant are ignored.
type Params struct {
	RRQuantum          int64
	PriorityPreemptive bool
	PriorityAgingInterval int64
	MLFQQuanta         []int64
	MLFQBoostInterval  int64
	MLFQPromotionThreshold int
}

// New creates a Scheduler by name. Unknown names panic — this is a
// construction-time programmer error, not a runtime condition, grounded
// on the teacher's NewScheduler/NewPriorityPolicy panic-on-unknown shape.
func New(name Name, params Params) Scheduler {
	switch name {
	case NameFCFS:
		return NewFCFS()
	case NameSJF:
		return NewSJF()
	case NameSRTF:
		return NewSRTF()
	case NameRR:
		return NewRR(params.RRQuantum)
	case NamePriority:
		return NewPriority(params.PriorityPreemptive, params.PriorityAgingInterval)
	case NameMLFQ:
		return NewMLFQ(params.MLFQQuanta, params.MLFQBoostInterval, params.MLFQPromotionThreshold)
	default:
		panic(fmt.Sprintf("policy: unknown scheduler %q; valid options: [fcfs, sjf, srtf, rr, priority, mlfq]", name))
	}
}

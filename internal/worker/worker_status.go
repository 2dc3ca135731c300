package worker

import "github.com/google/uuid"

// Action is an administrator transition on an existing worker.
type Action string

const (
	ActionApprove    Action = "approve"
	ActionReject     Action = "reject"
	ActionBlock      Action = "block"
	ActionUnblock    Action = "unblock"
	ActionDeactivate Action = "deactivate"
)

type transition struct {
	from string
	to   string
}

var transitions = map[Action]transition{
	ActionApprove:    {from: StatusRequested, to: StatusActive},
	ActionReject:     {from: StatusRequested, to: StatusRejected},
	ActionBlock:      {from: StatusActive, to: StatusBlocked},
	ActionUnblock:    {from: StatusBlocked, to: StatusActive},
	ActionDeactivate: {from: StatusActive, to: StatusInactive},
}

// priorState is what a phone lookup found before a self-enrollment. The set
// of implementations is closed; enroll dispatches on it with one type switch.
type priorState interface {
	priorState()
}

type (
	// noPrior: the phone is unknown.
	noPrior struct{}
	// rejectedPrior: an earlier application was denied; it is replaced.
	rejectedPrior struct{ worker *Worker }
	// pendingPrior: an administrator pre-registered this phone.
	pendingPrior struct{ worker *Worker }
	// returningPrior: inactive at the same company, reactivated in place.
	returningPrior struct{ worker *Worker }
	// transferPrior: inactive at another company, moved and re-requested.
	transferPrior struct{ worker *Worker }
	// heldPrior: the phone belongs to a live or blocked worker.
	heldPrior struct{ worker *Worker }
)

func (noPrior) priorState()        {}
func (rejectedPrior) priorState()  {}
func (pendingPrior) priorState()   {}
func (returningPrior) priorState() {}
func (transferPrior) priorState()  {}
func (heldPrior) priorState()      {}

func classifyPrior(existing *Worker, targetCompany uuid.UUID) priorState {
	if existing == nil {
		return noPrior{}
	}
	switch existing.Status {
	case StatusRejected:
		return rejectedPrior{worker: existing}
	case StatusPending:
		return pendingPrior{worker: existing}
	case StatusInactive:
		if existing.CompanyID == targetCompany {
			return returningPrior{worker: existing}
		}
		return transferPrior{worker: existing}
	default:
		return heldPrior{worker: existing}
	}
}

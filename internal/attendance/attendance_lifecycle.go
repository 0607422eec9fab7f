package attendance

import (
	"math"

	attendanceerrors "construct-erp/internal/attendance/errors"
	"construct-erp/internal/domain"
)

type Status string

const (
	StatusSubmitted        Status = "submitted"
	StatusInchargeReviewed Status = "incharge_reviewed"
	StatusAdminApproved    Status = "admin_approved"
	StatusRejected         Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusSubmitted, StatusInchargeReviewed, StatusAdminApproved, StatusRejected:
		return true
	default:
		return false
	}
}

type Action string

const (
	ActionSubmit  Action = "submit"
	ActionReview  Action = "review"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionEdit    Action = "edit"
)

// Actor is the authenticated caller driving a transition.
type Actor struct {
	ID     string
	Role   string
	SiteID string
	Name   string
}

// transitions lists the source states each action accepts. Approve and edit
// are accepted from every state.
var transitions = map[Action][]Status{
	ActionReview: {StatusSubmitted, StatusInchargeReviewed},
	ActionReject: {StatusSubmitted, StatusInchargeReviewed},
}

// TargetStatus is the status an action leaves the record in. Edit keeps the
// current status.
func TargetStatus(action Action, current Status) Status {
	switch action {
	case ActionSubmit:
		return StatusSubmitted
	case ActionReview:
		return StatusInchargeReviewed
	case ActionApprove:
		return StatusAdminApproved
	case ActionReject:
		return StatusRejected
	default:
		return current
	}
}

// CanTransition reports whether action may run on a record in status from.
func CanTransition(from Status, action Action) bool {
	switch action {
	case ActionApprove, ActionEdit:
		return from.Valid()
	case ActionSubmit:
		return from == ""
	}
	for _, s := range transitions[action] {
		if s == from {
			return true
		}
	}
	return false
}

// Authorize checks the actor's role for action and, when record is not nil,
// the actor's site scope. A site mismatch reads as not found.
func Authorize(actor Actor, action Action, record *AttendanceRecord) error {
	switch action {
	case ActionSubmit:
		if actor.Role != domain.RoleForeman {
			return attendanceerrors.ErrUnauthorized
		}
		return nil
	case ActionReview:
		if actor.Role != domain.RoleSiteIncharge {
			return attendanceerrors.ErrUnauthorized
		}
	case ActionApprove, ActionEdit:
		if actor.Role != domain.RoleAdmin {
			return attendanceerrors.ErrUnauthorized
		}
	case ActionReject:
		if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleSiteIncharge {
			return attendanceerrors.ErrUnauthorized
		}
	default:
		return attendanceerrors.ErrUnauthorized
	}

	if record == nil {
		return nil
	}
	if actor.Role == domain.RoleSiteIncharge && record.SiteID != actor.SiteID {
		return attendanceerrors.ErrRecordNotFound
	}
	return nil
}

func CountPresent(entries []AttendanceEntry) int {
	n := 0
	for _, e := range entries {
		if e.IsPresent {
			n++
		}
	}
	return n
}

// ResolveFormula fills the work-unit pair: X full 8-hour blocks and Y
// remaining hours, unless supplied.
func ResolveFormula(hours float64, x *int, y *float64) (int, float64) {
	fx := int(math.Floor(hours / 8))
	fy := math.Mod(hours, 8)
	if x != nil {
		fx = *x
	}
	if y != nil {
		fy = *y
	}
	return fx, fy
}

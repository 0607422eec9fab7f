package events

import "time"

const AttendanceLifecycleTopic = "erp.attendance.lifecycle.v1"

const AggregateAttendance = "attendance_record"

const (
	AttendanceSubmitted = "attendance.submitted"
	AttendanceReviewed  = "attendance.reviewed"
	AttendanceApproved  = "attendance.approved"
	AttendanceRejected  = "attendance.rejected"
	AttendanceUpdated   = "attendance.updated"
)

// AttendanceLifecycleEvent is published once per committed transition.
// Totals are the values after the transition.
type AttendanceLifecycleEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	RecordID       string    `json:"record_id"`
	SiteID         string    `json:"site_id"`
	SiteName       string    `json:"site_name"`
	ForemanID      string    `json:"foreman_id"`
	Date           string    `json:"date"`
	Status         string    `json:"status"`
	ActorID        string    `json:"actor_id"`
	ActorRole      string    `json:"actor_role"`
	TotalWorkers   int       `json:"total_workers"`
	PresentWorkers int       `json:"present_workers"`
	OccurredAt     time.Time `json:"occurred_at"`
}

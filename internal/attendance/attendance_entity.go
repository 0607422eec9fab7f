package attendance

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceRecord struct {
	ID               uuid.UUID         `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SiteID           string            `gorm:"column:site_id;type:varchar(64);not null;index"`
	SiteName         string            `gorm:"column:site_name;type:varchar(150);not null"`
	ForemanID        string            `gorm:"column:foreman_id;type:varchar(64);not null;uniqueIndex:uq_attendance_foreman_date,priority:1"`
	ForemanName      string            `gorm:"column:foreman_name;type:varchar(150)"`
	Date             time.Time         `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_foreman_date,priority:2;index"`
	Status           Status            `gorm:"column:status;type:varchar(30);not null;index"`
	InTime           *string           `gorm:"column:in_time;type:varchar(10)"`
	OutTime          *string           `gorm:"column:out_time;type:varchar(10)"`
	SubmittedAt      time.Time         `gorm:"column:submitted_at;not null"`
	ReviewedAt       *time.Time        `gorm:"column:reviewed_at"`
	ApprovedAt       *time.Time        `gorm:"column:approved_at"`
	RejectedAt       *time.Time        `gorm:"column:rejected_at"`
	MarkedBy         string            `gorm:"column:marked_by;type:varchar(64);not null"`
	ReviewedBy       *string           `gorm:"column:reviewed_by;type:varchar(64)"`
	ApprovedBy       *string           `gorm:"column:approved_by;type:varchar(64)"`
	RejectedBy       *string           `gorm:"column:rejected_by;type:varchar(64)"`
	InchargeComments *string           `gorm:"column:incharge_comments;type:text"`
	AdminComments    *string           `gorm:"column:admin_comments;type:text"`
	RejectionReason  *string           `gorm:"column:rejection_reason;type:text"`
	TotalWorkers     int               `gorm:"column:total_workers;not null"`
	PresentWorkers   int               `gorm:"column:present_workers;not null"`
	CreatedAt        time.Time         `gorm:"column:created_at"`
	UpdatedAt        time.Time         `gorm:"column:updated_at"`
	Entries          []AttendanceEntry `gorm:"foreignKey:RecordID;references:ID"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// AttendanceEntry is one worker's line in a record. A worker has at most
// one entry per work date across all records.
type AttendanceEntry struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RecordID    uuid.UUID `gorm:"column:record_id;type:uuid;not null;index"`
	SiteID      string    `gorm:"column:site_id;type:varchar(64);not null"`
	WorkerID    string    `gorm:"column:worker_id;type:varchar(64);not null;uniqueIndex:uq_attendance_entry_worker_date,priority:1"`
	Date        time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_entry_worker_date,priority:2"`
	Position    int       `gorm:"column:position;not null;default:0"`
	WorkerName  string    `gorm:"column:worker_name;type:varchar(150)"`
	Designation string    `gorm:"column:designation;type:varchar(100)"`
	IsPresent   bool      `gorm:"column:is_present;not null"`
	HoursWorked float64   `gorm:"column:hours_worked;not null;default:0"`
	FormulaX    int       `gorm:"column:formula_x;not null;default:0"`
	FormulaY    float64   `gorm:"column:formula_y;not null;default:0"`
	Remarks     *string   `gorm:"column:remarks;type:text"`
}

func (AttendanceEntry) TableName() string {
	return "attendance_entries"
}

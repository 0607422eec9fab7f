package summary

import (
	"time"

	"github.com/google/uuid"
)

// SiteDailySummary is the projection of one approved attendance record.
type SiteDailySummary struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RecordID       uuid.UUID `gorm:"column:record_id;type:uuid;not null;uniqueIndex:uq_site_daily_summary_record"`
	SiteID         string    `gorm:"column:site_id;type:varchar(64);not null;index:idx_site_daily_summary_site_date,priority:1"`
	SiteName       string    `gorm:"column:site_name;type:varchar(150)"`
	Date           time.Time `gorm:"column:date;type:date;not null;index:idx_site_daily_summary_site_date,priority:2"`
	TotalWorkers   int       `gorm:"column:total_workers;not null"`
	PresentWorkers int       `gorm:"column:present_workers;not null"`
	ApprovedAt     time.Time `gorm:"column:approved_at;not null"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (SiteDailySummary) TableName() string {
	return "site_daily_summaries"
}

// DailyTotal aggregates every site for one work date.
type DailyTotal struct {
	Date           time.Time `gorm:"column:date"`
	TotalWorkers   int64     `gorm:"column:total_workers"`
	PresentWorkers int64     `gorm:"column:present_workers"`
}

package summary

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=summary_repo.go -destination=mock/summary_repo_mock.go -package=mock
type Repository interface {
	Upsert(ctx context.Context, s *SiteDailySummary) error
	DeleteByRecord(ctx context.Context, recordID uuid.UUID) error
	TotalsBetween(ctx context.Context, from, to time.Time) ([]DailyTotal, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, s *SiteDailySummary) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "record_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"site_id", "site_name", "date", "total_workers", "present_workers", "approved_at", "updated_at",
			}),
		}).
		Create(s).Error
}

func (r *repository) DeleteByRecord(ctx context.Context, recordID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("record_id = ?", recordID).
		Delete(&SiteDailySummary{}).Error
}

// TotalsBetween sums workers per work date in [from, to], oldest first.
func (r *repository) TotalsBetween(ctx context.Context, from, to time.Time) ([]DailyTotal, error) {
	var rows []DailyTotal
	err := r.db.WithContext(ctx).
		Model(&SiteDailySummary{}).
		Select("date, SUM(total_workers) AS total_workers, SUM(present_workers) AS present_workers").
		Where("date >= ? AND date <= ?", from.Format(dateLayout), to.Format(dateLayout)).
		Group("date").
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}

package summary

import (
	"context"
	"fmt"
	"math"
	"time"

	"construct-erp/internal/events"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	statusApproved = "admin_approved"
	WeekDays       = 7
)

// DayStat is one work date of the weekly dashboard series.
type DayStat struct {
	Date           string  `json:"date"`
	Day            string  `json:"day"`
	TotalWorkers   int64   `json:"totalWorkers"`
	PresentWorkers int64   `json:"presentWorkers"`
	AttendanceRate float64 `json:"attendanceRate"`
}

//go:generate mockgen -source=summary_service.go -destination=mock/summary_service_mock.go -package=mock
type Service interface {
	ApplyEvent(ctx context.Context, event events.AttendanceLifecycleEvent) error
	Weekly(ctx context.Context, workDate time.Time) ([]DayStat, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("summary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("summary.service")
	}
	return &service{repo: repo, logger: l}
}

// ApplyEvent keeps the projection in step with the record: approved records
// are upserted, any other status removes a stale row.
func (s *service) ApplyEvent(ctx context.Context, event events.AttendanceLifecycleEvent) error {
	recordID, err := uuid.Parse(event.RecordID)
	if err != nil {
		return fmt.Errorf("summary: invalid record id %q: %w", event.RecordID, err)
	}

	if event.Status != statusApproved {
		if err := s.repo.DeleteByRecord(ctx, recordID); err != nil {
			return err
		}
		s.logger.Debug("summary cleared",
			zap.String("record_id", event.RecordID),
			zap.String("status", event.Status),
		)
		return nil
	}

	date, err := time.Parse(dateLayout, event.Date)
	if err != nil {
		return fmt.Errorf("summary: invalid date %q: %w", event.Date, err)
	}
	approvedAt := event.OccurredAt
	if approvedAt.IsZero() {
		approvedAt = time.Now().UTC()
	}

	row := &SiteDailySummary{
		RecordID:       recordID,
		SiteID:         event.SiteID,
		SiteName:       event.SiteName,
		Date:           date,
		TotalWorkers:   event.TotalWorkers,
		PresentWorkers: event.PresentWorkers,
		ApprovedAt:     approvedAt,
	}
	if err := s.repo.Upsert(ctx, row); err != nil {
		return err
	}

	s.logger.Info("summary upserted",
		zap.String("request_id", event.RequestID),
		zap.String("record_id", event.RecordID),
		zap.String("site_id", event.SiteID),
		zap.String("date", event.Date),
	)
	return nil
}

// Weekly returns the seven work dates ending at workDate. Dates without
// approved records are reported as zero.
func (s *service) Weekly(ctx context.Context, workDate time.Time) ([]DayStat, error) {
	end := time.Date(workDate.Year(), workDate.Month(), workDate.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -(WeekDays - 1))

	rows, err := s.repo.TotalsBetween(ctx, start, end)
	if err != nil {
		s.logger.Error("weekly totals failed", zap.Error(err))
		return nil, err
	}

	byDate := make(map[string]DailyTotal, len(rows))
	for _, r := range rows {
		byDate[r.Date.Format(dateLayout)] = r
	}

	out := make([]DayStat, 0, WeekDays)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		total := byDate[key]
		stat := DayStat{
			Date:           key,
			Day:            d.Weekday().String()[:3],
			TotalWorkers:   total.TotalWorkers,
			PresentWorkers: total.PresentWorkers,
		}
		if total.TotalWorkers > 0 {
			stat.AttendanceRate = math.Round(float64(total.PresentWorkers)/float64(total.TotalWorkers)*1000) / 10
		}
		out = append(out, stat)
	}
	return out, nil
}

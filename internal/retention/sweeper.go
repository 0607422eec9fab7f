// Package retention removes attendance records past the retention period.
package retention

import (
	"context"
	"time"

	"construct-erp/internal/attendance"
	"construct-erp/internal/bootstrap"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const DefaultDays = 40

type Result struct {
	Cutoff  time.Time
	Deleted int64
}

type Sweeper struct {
	db     *gorm.DB
	repo   attendance.Repository
	days   int
	audit  bootstrap.AuditLogger
	now    func() time.Time
	logger *zap.Logger
}

func NewSweeper(db *gorm.DB, repo attendance.Repository, days int, audit bootstrap.AuditLogger, logger ...*zap.Logger) *Sweeper {
	l := zap.L().Named("retention.sweeper")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("retention.sweeper")
	}
	if days <= 0 {
		days = DefaultDays
	}
	return &Sweeper{
		db:     db,
		repo:   repo,
		days:   days,
		audit:  audit,
		now:    time.Now,
		logger: l,
	}
}

// Cutoff is the first work date that is kept.
func (s *Sweeper) Cutoff(now time.Time) time.Time {
	y, m, d := now.UTC().AddDate(0, 0, -s.days).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Sweep deletes records dated before the cutoff, entries included, in one
// transaction.
func (s *Sweeper) Sweep(ctx context.Context) (Result, error) {
	res := Result{Cutoff: s.Cutoff(s.now())}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.repo.WithTx(tx).DeleteBefore(ctx, res.Cutoff)
		if err != nil {
			return err
		}
		res.Deleted = n
		return nil
	})
	if err != nil {
		s.logger.Error("retention sweep failed",
			zap.Time("cutoff", res.Cutoff),
			zap.Error(err),
		)
		return Result{}, err
	}

	s.logger.Info("retention sweep finished",
		zap.Time("cutoff", res.Cutoff),
		zap.Int64("deleted", res.Deleted),
	)
	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "RETENTION_SWEEP",
			Message: "Expired attendance records removed",
			Meta: map[string]any{
				"cutoff":  res.Cutoff.Format("2006-01-02"),
				"deleted": res.Deleted,
				"days":    s.days,
			},
		})
	}
	return res, nil
}

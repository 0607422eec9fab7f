package retention

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultSchedule = "@every 24h"
	sweepTimeout    = 4 * time.Minute
)

// Scheduler runs the sweeper on a cron schedule, skipping a run while the
// previous one is still going.
type Scheduler struct {
	cron    *cron.Cron
	sweeper *Sweeper
	logger  *zap.Logger
}

func NewScheduler(sweeper *Sweeper, schedule string, logger ...*zap.Logger) (*Scheduler, error) {
	l := zap.L().Named("retention.scheduler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("retention.scheduler")
	}
	if schedule == "" {
		schedule = DefaultSchedule
	}

	s := &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		sweeper: sweeper,
		logger:  l,
	}
	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, err
	}
	l.Info("retention schedule registered", zap.String("schedule", schedule))
	return s, nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if _, err := s.sweeper.Sweep(ctx); err != nil {
		s.logger.Error("scheduled retention sweep failed", zap.Error(err))
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("retention scheduler stop timed out")
	}
}

// Entries reports how many jobs are registered.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

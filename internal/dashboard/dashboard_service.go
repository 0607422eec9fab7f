package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"construct-erp/internal/attendance"
	"construct-erp/internal/shared/querymap"
	"construct-erp/internal/site"
	"construct-erp/internal/summary"
	"construct-erp/internal/timewindow"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const CacheTTL = 60 * time.Second

func StatsCacheKey(windowStart time.Time) string {
	return "dashboard:stats:" + windowStart.UTC().Format(time.RFC3339)
}

// RecordCounter counts attendance records matching a filter.
type RecordCounter interface {
	Count(ctx context.Context, filter querymap.Filter) (int64, error)
}

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Stats(ctx context.Context) (StatsResponse, error)
}

type service struct {
	sites     site.Repository
	records   RecordCounter
	summaries summary.Service
	windows   *timewindow.Resolver
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(
	sites site.Repository,
	records RecordCounter,
	summaries summary.Service,
	windows *timewindow.Resolver,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	if windows == nil {
		windows = timewindow.NewResolver(timewindow.SystemClock{})
	}
	return &service{
		sites:     sites,
		records:   records,
		summaries: summaries,
		windows:   windows,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

// Stats is cached per window start; concurrent misses share one computation.
func (s *service) Stats(ctx context.Context) (StatsResponse, error) {
	snap := timewindow.Current(ctx, s.windows)
	cacheKey := StatsCacheKey(snap.Current.Start)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp StatsResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("dashboard cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.compute(ctx, snap)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, string(jsonData), CacheTTL).Err(); err != nil {
					s.logger.Warn("dashboard cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("dashboard stats failed", zap.Error(err))
		return StatsResponse{}, err
	}

	return v.(StatsResponse), nil
}

func (s *service) compute(ctx context.Context, snap timewindow.Snapshot) (StatsResponse, error) {
	resp := StatsResponse{
		WindowStart: snap.Current.Start.UTC().Format(time.RFC3339),
		WindowEnd:   snap.Current.End.UTC().Format(time.RFC3339),
	}
	workDate := snap.Current.WorkDate()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		resp.TotalSites, err = s.sites.CountSites(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.TotalWorkers, err = s.sites.CountWorkers(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.PendingApprovals, err = s.records.Count(gctx, querymap.Where(
			querymap.In(attendance.FieldStatus, []string{
				string(attendance.StatusSubmitted),
				string(attendance.StatusInchargeReviewed),
			}),
		))
		return err
	})
	g.Go(func() (err error) {
		resp.TodayAttendance, err = s.records.Count(gctx, querymap.Where(
			querymap.Eq(attendance.FieldDate, workDate.Format("2006-01-02")),
		))
		return err
	})
	g.Go(func() (err error) {
		resp.ApprovedInWindow, err = s.records.Count(gctx, querymap.Where(
			querymap.Eq(attendance.FieldStatus, string(attendance.StatusAdminApproved)),
			querymap.Gte(attendance.FieldApprovedAt, snap.Current.Start),
			querymap.Lt(attendance.FieldApprovedAt, snap.Current.End),
		))
		return err
	})
	g.Go(func() (err error) {
		resp.WeeklyStats, err = s.summaries.Weekly(gctx, workDate)
		return err
	})

	if err := g.Wait(); err != nil {
		return StatsResponse{}, err
	}
	return resp, nil
}

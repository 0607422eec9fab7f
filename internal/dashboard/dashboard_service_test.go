package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"construct-erp/internal/attendance"
	attendanceMock "construct-erp/internal/attendance/mock"
	"construct-erp/internal/dashboard"
	"construct-erp/internal/shared/querymap"
	siteMock "construct-erp/internal/site/mock"
	"construct-erp/internal/summary"
	summaryMock "construct-erp/internal/summary/mock"
	"construct-erp/internal/timewindow"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deps struct {
	sites     *siteMock.MockRepository
	records   *attendanceMock.MockRepository
	summaries *summaryMock.MockService
	redismock redismock.ClientMock
	svc       dashboard.Service
}

var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func setup(t *testing.T) *deps {
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()

	d := &deps{
		sites:     siteMock.NewMockRepository(ctrl),
		records:   attendanceMock.NewMockRepository(ctrl),
		summaries: summaryMock.NewMockService(ctrl),
		redismock: redisMock,
	}
	resolver := timewindow.NewResolver(timewindow.FixedClock{At: now}, timewindow.WithLocation(time.UTC))
	d.svc = dashboard.NewService(d.sites, d.records, d.summaries, resolver, rdb)
	return d
}

func countByFilter(_ context.Context, f querymap.Filter) (int64, error) {
	first := f.Conditions[0]
	switch {
	case first.Op == querymap.OpIn:
		return 4, nil
	case first.Field == attendance.FieldDate:
		return 6, nil
	case len(f.Conditions) == 3:
		return 2, nil
	}
	return 0, errors.New("unexpected filter")
}

func expectCompute(d *deps, weekly []summary.DayStat) {
	d.sites.EXPECT().CountSites(gomock.Any()).Return(int64(3), nil)
	d.sites.EXPECT().CountWorkers(gomock.Any()).Return(int64(120), nil)
	d.records.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(countByFilter).Times(3)
	d.summaries.EXPECT().Weekly(gomock.Any(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).Return(weekly, nil)
}

func TestService_Stats_Miss(t *testing.T) {
	d := setup(t)
	key := dashboard.StatsCacheKey(time.Date(2024, 3, 1, 5, 30, 0, 0, time.UTC))
	assert.Equal(t, "dashboard:stats:2024-03-01T05:30:00Z", key)

	weekly := []summary.DayStat{{Date: "2024-03-01", Day: "Fri", TotalWorkers: 10, PresentWorkers: 7, AttendanceRate: 70}}
	expectCompute(d, weekly)

	want := dashboard.StatsResponse{
		TotalSites:       3,
		TotalWorkers:     120,
		PendingApprovals: 4,
		TodayAttendance:  6,
		ApprovedInWindow: 2,
		WindowStart:      "2024-03-01T05:30:00Z",
		WindowEnd:        "2024-03-02T05:30:00Z",
		WeeklyStats:      weekly,
	}
	raw, err := json.Marshal(want)
	require.NoError(t, err)

	d.redismock.ExpectGet(key).RedisNil()
	d.redismock.ExpectSet(key, string(raw), dashboard.CacheTTL).SetVal("OK")

	got, err := d.svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, d.redismock.ExpectationsWereMet())
}

func TestService_Stats_Hit(t *testing.T) {
	d := setup(t)
	key := dashboard.StatsCacheKey(time.Date(2024, 3, 1, 5, 30, 0, 0, time.UTC))

	cached := dashboard.StatsResponse{TotalSites: 9, WindowStart: "2024-03-01T05:30:00Z"}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)
	d.redismock.ExpectGet(key).SetVal(string(raw))

	got, err := d.svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.TotalSites)
	assert.NoError(t, d.redismock.ExpectationsWereMet())
}

func TestService_Stats_UsesRequestSnapshot(t *testing.T) {
	d := setup(t)
	resolver := timewindow.NewResolver(timewindow.SystemClock{}, timewindow.WithLocation(time.UTC))
	ctx := timewindow.WithSnapshot(context.Background(), resolver.SnapshotAt(time.Date(2024, 3, 2, 5, 29, 0, 0, time.UTC)))

	d.redismock.ExpectGet(dashboard.StatsCacheKey(time.Date(2024, 3, 1, 5, 30, 0, 0, time.UTC))).SetVal(`{"totalSites":1}`)

	got, err := d.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.TotalSites)
	assert.NoError(t, d.redismock.ExpectationsWereMet())
}

func TestService_Stats_ComputeError(t *testing.T) {
	d := setup(t)
	key := dashboard.StatsCacheKey(time.Date(2024, 3, 1, 5, 30, 0, 0, time.UTC))

	d.sites.EXPECT().CountSites(gomock.Any()).Return(int64(0), errors.New("db down"))
	d.sites.EXPECT().CountWorkers(gomock.Any()).Return(int64(1), nil).AnyTimes()
	d.records.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(countByFilter).AnyTimes()
	d.summaries.EXPECT().Weekly(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	d.redismock.ExpectGet(key).RedisNil()

	_, err := d.svc.Stats(context.Background())
	assert.EqualError(t, err, "db down")
	assert.NoError(t, d.redismock.ExpectationsWereMet())
}

func TestService_Stats_WithoutRedis(t *testing.T) {
	ctrl := gomock.NewController(t)
	sites := siteMock.NewMockRepository(ctrl)
	records := attendanceMock.NewMockRepository(ctrl)
	summaries := summaryMock.NewMockService(ctrl)
	d := &deps{sites: sites, records: records, summaries: summaries}
	expectCompute(d, nil)

	resolver := timewindow.NewResolver(timewindow.FixedClock{At: now}, timewindow.WithLocation(time.UTC))
	svc := dashboard.NewService(sites, records, summaries, resolver, nil)

	got, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(120), got.TotalWorkers)
	assert.Equal(t, int64(2), got.ApprovedInWindow)
}

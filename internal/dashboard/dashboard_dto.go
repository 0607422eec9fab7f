package dashboard

import "construct-erp/internal/summary"

type StatsResponse struct {
	TotalSites       int64             `json:"totalSites"`
	TotalWorkers     int64             `json:"totalWorkers"`
	PendingApprovals int64             `json:"pendingApprovals"`
	TodayAttendance  int64             `json:"todayAttendance"`
	ApprovedInWindow int64             `json:"approvedInWindow"`
	WindowStart      string            `json:"windowStart"`
	WindowEnd        string            `json:"windowEnd"`
	WeeklyStats      []summary.DayStat `json:"weeklyStats"`
}

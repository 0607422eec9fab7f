package app

import (
	"context"
	"strings"

	"construct-erp/internal/attendance"
	"construct-erp/internal/auth"
	"construct-erp/internal/messaging/kafka"
	"construct-erp/internal/site"
	"construct-erp/internal/summary"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the services use.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	if err := tx.AutoMigrate(
		&site.Site{},
		&site.Worker{},
		&auth.User{},
		&attendance.AttendanceRecord{},
		&attendance.AttendanceEntry{},
		&summary.SiteDailySummary{},
	); err != nil {
		return err
	}
	for _, stmt := range strings.Split(kafka.OutboxDDL, ";") {
		if stmt = strings.TrimSpace(stmt); stmt == "" {
			continue
		}
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

package consumer

import (
	"context"
	"encoding/json"
	"time"

	"construct-erp/internal/events"
	"construct-erp/internal/summary"

	"go.uber.org/zap"
)

var (
	applyBackoff    = time.Second
	maxApplyBackoff = 30 * time.Second
)

// ConsumeAttendanceLifecycle projects lifecycle events into daily site
// summaries until ctx is cancelled. Undecodable messages are committed and
// dropped. A message that fails to apply is retried with backoff before the
// next one is fetched, since a later commit would move the group offset past
// it.
func ConsumeAttendanceLifecycle(
	ctx context.Context,
	reader MessageReader,
	summaryService summary.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_lifecycle")
	log.Info("attendance lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance lifecycle consumer stopped")
				return
			}
			log.Error("fetch attendance lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance lifecycle event failed",
				zap.String("key", string(msg.Key)),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if !applyWithRetry(ctx, summaryService, event, log) {
			log.Info("attendance lifecycle consumer stopped")
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("attendance event projected",
			zap.String("record_id", event.RecordID),
			zap.String("event_type", event.EventType),
			zap.String("status", event.Status),
		)
	}
}

// applyWithRetry reports false when ctx ends before the event applies.
func applyWithRetry(ctx context.Context, summaryService summary.Service, event events.AttendanceLifecycleEvent, log *zap.Logger) bool {
	backoff := applyBackoff
	for attempt := 1; ; attempt++ {
		err := summaryService.ApplyEvent(ctx, event)
		if err == nil {
			return true
		}
		log.Error("apply attendance event to summary failed",
			zap.String("record_id", event.RecordID),
			zap.String("event_type", event.EventType),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", backoff),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(backoff):
		}
		if backoff *= 2; backoff > maxApplyBackoff {
			backoff = maxApplyBackoff
		}
	}
}

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"construct-erp/internal/events"
	"construct-erp/internal/messaging/kafka/consumer"
	"construct-erp/internal/shared/config"
	"construct-erp/internal/shared/connection"
	"construct-erp/internal/summary"

	"go.uber.org/zap"
)

const SummaryConsumerGroup = "construct-erp-summary"

// RunConsumer projects attendance lifecycle events into daily site
// summaries until SIGINT/SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, connectRetries)
	if err != nil {
		return err
	}
	defer closeDB(gormDB, logger)

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	summaryService := summary.NewService(summary.NewRepository(gormDB))

	reader := consumer.NewReader([]string{cfg.KafkaBroker}, SummaryConsumerGroup, events.AttendanceLifecycleTopic)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeAttendanceLifecycle(ctx, reader, summaryService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}

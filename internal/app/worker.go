package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"construct-erp/internal/attendance"
	"construct-erp/internal/bootstrap"
	"construct-erp/internal/messaging/kafka"
	"construct-erp/internal/messaging/kafka/producer"
	"construct-erp/internal/retention"
	"construct-erp/internal/shared/config"
	"construct-erp/internal/shared/connection"

	"go.uber.org/zap"
)

const schedulerStopTimeout = 5 * time.Minute

// RunWorker relays the outbox to kafka and, when enabled, runs the retention
// schedule. It blocks until SIGINT/SIGTERM.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, connectRetries)
	if err != nil {
		return err
	}
	defer closeDB(gormDB, logger)

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		producer.DefaultPollInterval,
	)

	var scheduler *retention.Scheduler
	if cfg.Retention.Enabled {
		sweeper := retention.NewSweeper(
			gormDB,
			attendance.NewRepository(gormDB),
			cfg.Retention.Days,
			bootstrap.NewStdoutAuditLogger(),
		)
		scheduler, err = retention.NewScheduler(sweeper, cfg.Retention.Schedule)
		if err != nil {
			return err
		}
		scheduler.Start()
	} else {
		logger.Info("retention sweep disabled")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	if scheduler != nil {
		stopCtx, stop := context.WithTimeout(context.Background(), schedulerStopTimeout)
		defer stop()
		scheduler.Stop(stopCtx)
	}

	return nil
}

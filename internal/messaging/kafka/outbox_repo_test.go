package kafka_test

import (
	"context"
	"testing"
	"time"

	"construct-erp/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newOutboxRepo(t *testing.T) (kafka.OutboxRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return kafka.NewOutboxRepository(db), mock
}

func validEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            "0b8f3f55-8a44-4c1b-9f0e-6de0b0b8f1a1",
		RequestID:     "req-1",
		AggregateType: "attendance_record",
		AggregateID:   "rec-1",
		EventType:     "attendance.submitted",
		Topic:         "erp.attendance.lifecycle.v1",
		Payload:       []byte(`{"recordId":"rec-1"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestOutboxRepository_Create(t *testing.T) {
	repo, mock := newOutboxRepo(t)
	e := validEvent()

	mock.ExpectExec(`INSERT INTO outbox_events`).
		WithArgs(e.ID, e.RequestID, e.AggregateType, e.AggregateID, e.EventType, e.Topic, e.Payload, e.Status).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_Create_Invalid(t *testing.T) {
	repo, mock := newOutboxRepo(t)

	e := validEvent()
	e.Status = "queued"
	assert.ErrorContains(t, repo.Create(context.Background(), e), "invalid outbox status")

	e = validEvent()
	e.Payload = nil
	assert.ErrorContains(t, repo.Create(context.Background(), e), "payload is required")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	repo, mock := newOutboxRepo(t)
	next := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM outbox_events\s+WHERE status IN \(\$1, \$2\)`).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at",
		}).AddRow("o-1", "req-1", "attendance_record", "rec-1", "attendance.approved", "erp.attendance.lifecycle.v1", []byte(`{}`), "failed", 2, next))

	got, err := repo.ListPending(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "req-1", got[0].RequestID)
	assert.Equal(t, 2, got[0].RetryCount)
	assert.Equal(t, next, got[0].NextRetryAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSentAndFailed(t *testing.T) {
	repo, mock := newOutboxRepo(t)

	mock.ExpectExec(`UPDATE outbox_events\s+SET\s+status = \$1,\s+processed_at = NOW\(\)`).
		WithArgs(kafka.OutboxStatusSent, "o-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`retry_count = retry_count \+ 1`).
		WithArgs(kafka.OutboxStatusFailed, "timeout", "o-2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkSent(context.Background(), "o-1"))
	require.NoError(t, repo.MarkFailed(context.Background(), "o-2", "timeout"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

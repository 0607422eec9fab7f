package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"construct-erp/internal/events"
	summaryMock "construct-erp/internal/summary/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// queueReader serves queued messages and cancels the consumer once drained.
type queueReader struct {
	mu        sync.Mutex
	queue     []kafkago.Message
	committed []string
	cancel    context.CancelFunc
}

func (r *queueReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) == 0 {
		r.cancel()
		return kafkago.Message{}, context.Canceled
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *queueReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, string(m.Key))
	}
	return nil
}

func message(t *testing.T, key string, event events.AttendanceLifecycleEvent) kafkago.Message {
	t.Helper()
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return kafkago.Message{Key: []byte(key), Value: raw}
}

func fastRetries(t *testing.T) {
	t.Helper()
	prev := applyBackoff
	applyBackoff = time.Millisecond
	t.Cleanup(func() { applyBackoff = prev })
}

func TestConsumeAttendanceLifecycle(t *testing.T) {
	fastRetries(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := summaryMock.NewMockService(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	approved := events.AttendanceLifecycleEvent{EventType: events.AttendanceApproved, RecordID: "rec-1", Status: "admin_approved", Date: "2024-03-01"}
	flaky := events.AttendanceLifecycleEvent{EventType: events.AttendanceRejected, RecordID: "rec-3", Status: "rejected"}
	after := events.AttendanceLifecycleEvent{EventType: events.AttendanceSubmitted, RecordID: "rec-4", Status: "submitted"}

	reader := &queueReader{
		queue: []kafkago.Message{
			message(t, "rec-1", approved),
			{Key: []byte("rec-2"), Value: []byte("not json")},
			message(t, "rec-3", flaky),
			message(t, "rec-4", after),
		},
		cancel: cancel,
	}

	gomock.InOrder(
		svc.EXPECT().ApplyEvent(gomock.Any(), approved).Return(nil),
		svc.EXPECT().ApplyEvent(gomock.Any(), flaky).Return(errors.New("db down")),
		svc.EXPECT().ApplyEvent(gomock.Any(), flaky).Return(nil),
		svc.EXPECT().ApplyEvent(gomock.Any(), after).Return(nil),
	)

	ConsumeAttendanceLifecycle(ctx, reader, svc, zap.NewNop())

	assert.Equal(t, []string{"rec-1", "rec-2", "rec-3", "rec-4"}, reader.committed)
	assert.Empty(t, reader.queue)
}

func TestConsumeAttendanceLifecycle_FailedApplyBlocksLaterCommits(t *testing.T) {
	fastRetries(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := summaryMock.NewMockService(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stuck := events.AttendanceLifecycleEvent{EventType: events.AttendanceApproved, RecordID: "rec-1", Status: "admin_approved"}
	next := events.AttendanceLifecycleEvent{EventType: events.AttendanceApproved, RecordID: "rec-2", Status: "admin_approved"}

	reader := &queueReader{
		queue:  []kafkago.Message{message(t, "rec-1", stuck), message(t, "rec-2", next)},
		cancel: cancel,
	}

	attempts := 0
	svc.EXPECT().ApplyEvent(gomock.Any(), stuck).DoAndReturn(func(context.Context, events.AttendanceLifecycleEvent) error {
		attempts++
		if attempts == 3 {
			cancel()
		}
		return errors.New("db down")
	}).Times(3)

	ConsumeAttendanceLifecycle(ctx, reader, svc, zap.NewNop())

	assert.Empty(t, reader.committed)
	require.Len(t, reader.queue, 1)
	assert.Equal(t, "rec-2", string(reader.queue[0].Key))
}

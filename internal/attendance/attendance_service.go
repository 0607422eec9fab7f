package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	attendanceerrors "construct-erp/internal/attendance/errors"
	"construct-erp/internal/domain"
	"construct-erp/internal/events"
	"construct-erp/internal/messaging/kafka"
	"construct-erp/internal/shared/contextutil"
	"construct-erp/internal/shared/querymap"
	"construct-erp/internal/site"
	"construct-erp/internal/timewindow"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	listLimit   = 50
	recentLimit = 10
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, actor Actor, req SubmitAttendanceRequest) (AttendanceResponse, error)
	SaveDraft(ctx context.Context, actor Actor, req SubmitAttendanceRequest) error
	CheckSubmission(ctx context.Context, actor Actor, date string) (CheckSubmissionResponse, error)
	PendingReview(ctx context.Context, actor Actor) ([]AttendanceResponse, error)
	Review(ctx context.Context, actor Actor, id string, req ReviewAttendanceRequest) (AttendanceResponse, error)
	PendingAdmin(ctx context.Context) ([]AttendanceResponse, error)
	Approve(ctx context.Context, actor Actor, id string, req ApproveAttendanceRequest) (AttendanceResponse, error)
	Reject(ctx context.Context, actor Actor, id string, req RejectAttendanceRequest) (AttendanceResponse, error)
	Update(ctx context.Context, actor Actor, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Approved(ctx context.Context) ([]AttendanceResponse, error)
	ByForeman(ctx context.Context, foremanID string) ([]AttendanceResponse, error)
	ForemanCurrent(ctx context.Context, foremanID string) (*AttendanceResponse, error)
	ForemanHistory(ctx context.Context, foremanID string) ([]AttendanceResponse, error)
	Recent(ctx context.Context, actor Actor) ([]AttendanceResponse, error)
}

type service struct {
	db      *gorm.DB
	repo    Repository
	sites   site.Repository
	outbox  kafka.OutboxRepository
	windows *timewindow.Resolver
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, sites site.Repository, windows *timewindow.Resolver, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, sites, nil, windows, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	sites site.Repository,
	outboxRepo kafka.OutboxRepository,
	windows *timewindow.Resolver,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if windows == nil {
		windows = timewindow.NewResolver(timewindow.SystemClock{})
	}
	return &service{
		db:      db,
		repo:    repo,
		sites:   sites,
		outbox:  outboxRepo,
		windows: windows,
		now:     time.Now,
		logger:  l,
	}
}

func byID(id uuid.UUID) querymap.Filter {
	return querymap.Where(querymap.Eq(FieldID, id))
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, attendanceerrors.ErrRecordNotFound
	}
	return uid, nil
}

func parseDate(v string) (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidDate
	}
	return d, nil
}

// toEntries rejects a body that lists the same worker twice; entries are
// unique per worker and date.
func toEntries(reqs []EntryRequest) ([]AttendanceEntry, error) {
	out := make([]AttendanceEntry, 0, len(reqs))
	seen := make(map[string]struct{}, len(reqs))
	for _, r := range reqs {
		if _, dup := seen[r.WorkerID]; dup {
			return nil, attendanceerrors.ErrDuplicateWorker
		}
		seen[r.WorkerID] = struct{}{}

		x, y := ResolveFormula(r.HoursWorked, r.FormulaX, r.FormulaY)
		out = append(out, AttendanceEntry{
			WorkerID:    r.WorkerID,
			WorkerName:  r.WorkerName,
			Designation: r.Designation,
			IsPresent:   r.IsPresent,
			HoursWorked: r.HoursWorked,
			FormulaX:    x,
			FormulaY:    y,
			Remarks:     r.Remarks,
		})
	}
	return out, nil
}

func (s *service) Submit(ctx context.Context, actor Actor, req SubmitAttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit attendance requested",
		zap.String("request_id", rid),
		zap.String("foreman_id", actor.ID),
		zap.String("date", req.Date),
		zap.Int("entries", len(req.Entries)),
	)

	if err := Authorize(actor, ActionSubmit, nil); err != nil {
		return AttendanceResponse{}, err
	}
	if strings.TrimSpace(req.Date) == "" || len(req.Entries) == 0 {
		return AttendanceResponse{}, attendanceerrors.ErrMissingFields
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if actor.SiteID == "" {
		return AttendanceResponse{}, attendanceerrors.ErrNoSite
	}

	entries, err := toEntries(req.Entries)
	if err != nil {
		return AttendanceResponse{}, err
	}
	rec := &AttendanceRecord{
		ID:             uuid.New(),
		SiteID:         actor.SiteID,
		SiteName:       site.ResolveName(ctx, s.sites, actor.SiteID),
		ForemanID:      actor.ID,
		ForemanName:    actor.Name,
		Date:           date,
		Status:         TargetStatus(ActionSubmit, ""),
		InTime:         req.InTime,
		OutTime:        req.OutTime,
		SubmittedAt:    s.now().UTC(),
		MarkedBy:       actor.ID,
		TotalWorkers:   len(entries),
		PresentWorkers: CountPresent(entries),
		Entries:        entries,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		n, err := qtx.Count(ctx, querymap.Where(
			querymap.Eq(FieldForemanID, actor.ID),
			querymap.Eq(FieldDate, date.Format(dateLayout)),
		))
		if err != nil {
			return err
		}
		if n > 0 {
			return attendanceerrors.ErrAlreadySubmitted
		}

		if err := qtx.Insert(ctx, rec); err != nil {
			s.logger.Error("submit attendance persist failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}
		return s.enqueue(ctx, tx, events.AttendanceSubmitted, rec, actor)
	})
	if err != nil {
		if errors.Is(err, attendanceerrors.ErrAlreadySubmitted) {
			s.logger.Warn("submit attendance duplicate",
				zap.String("foreman_id", actor.ID),
				zap.String("date", req.Date),
			)
		}
		return AttendanceResponse{}, err
	}

	s.logger.Info("submit attendance success",
		zap.String("request_id", rid),
		zap.String("record_id", rec.ID.String()),
		zap.Int("total_workers", rec.TotalWorkers),
		zap.Int("present_workers", rec.PresentWorkers),
	)
	return mapToResponse(*rec), nil
}

func (s *service) SaveDraft(ctx context.Context, actor Actor, req SubmitAttendanceRequest) error {
	if err := Authorize(actor, ActionSubmit, nil); err != nil {
		return err
	}
	s.logger.Debug("save draft accepted",
		zap.String("foreman_id", actor.ID),
		zap.String("date", req.Date),
		zap.Int("entries", len(req.Entries)),
	)
	return nil
}

func (s *service) CheckSubmission(ctx context.Context, actor Actor, date string) (CheckSubmissionResponse, error) {
	d, err := parseDate(date)
	if err != nil {
		return CheckSubmissionResponse{}, err
	}

	n, err := s.repo.Count(ctx, querymap.Where(
		querymap.Eq(FieldForemanID, actor.ID),
		querymap.Eq(FieldDate, d.Format(dateLayout)),
	))
	if err != nil {
		s.logger.Error("check submission failed", zap.Error(err))
		return CheckSubmissionResponse{}, err
	}
	return CheckSubmissionResponse{HasSubmitted: n > 0}, nil
}

func (s *service) PendingReview(ctx context.Context, actor Actor) ([]AttendanceResponse, error) {
	if actor.SiteID == "" {
		return []AttendanceResponse{}, nil
	}
	return s.list(ctx, "pending review", querymap.
		Where(querymap.Eq(FieldSiteID, actor.SiteID), querymap.Eq(FieldStatus, string(StatusSubmitted))).
		OrderBy(FieldSubmittedAt, true).
		Take(listLimit))
}

func (s *service) PendingAdmin(ctx context.Context) ([]AttendanceResponse, error) {
	return s.list(ctx, "pending admin", querymap.
		Where(querymap.Eq(FieldStatus, string(StatusInchargeReviewed))).
		OrderBy(FieldSubmittedAt, true).
		Take(listLimit))
}

func (s *service) Approved(ctx context.Context) ([]AttendanceResponse, error) {
	return s.list(ctx, "approved", querymap.
		Where(querymap.Eq(FieldStatus, string(StatusAdminApproved))).
		OrderBy(FieldApprovedAt, true).
		Take(listLimit))
}

func (s *service) ByForeman(ctx context.Context, foremanID string) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindByForeman(ctx, foremanID)
	if err != nil {
		s.logger.Error("records by foreman failed", zap.String("foreman_id", foremanID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

// ForemanCurrent returns the foreman's approved record whose approval time
// (or work date) falls in the current window, or nil.
func (s *service) ForemanCurrent(ctx context.Context, foremanID string) (*AttendanceResponse, error) {
	snap := timewindow.Current(ctx, s.windows)
	rec, err := s.repo.FindOne(ctx, querymap.
		Where(
			querymap.Eq(FieldForemanID, foremanID),
			querymap.Eq(FieldStatus, string(StatusAdminApproved)),
			querymap.Gte(FieldEffectiveApprovedAt, snap.Current.Start),
			querymap.Lt(FieldEffectiveApprovedAt, snap.Current.End),
		).
		OrderBy(FieldEffectiveApprovedAt, true))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("foreman current record failed", zap.String("foreman_id", foremanID), zap.Error(err))
		return nil, err
	}

	resp := mapToResponse(*rec)
	return &resp, nil
}

// ForemanHistory lists approved records in the lookback range that ends at
// the current window's start, newest work date first.
func (s *service) ForemanHistory(ctx context.Context, foremanID string) ([]AttendanceResponse, error) {
	snap := timewindow.Current(ctx, s.windows)
	return s.list(ctx, "foreman history", querymap.
		Where(
			querymap.Eq(FieldForemanID, foremanID),
			querymap.Eq(FieldStatus, string(StatusAdminApproved)),
			querymap.Gte(FieldEffectiveApprovedAt, snap.History.From),
			querymap.Lt(FieldEffectiveApprovedAt, snap.History.To),
		).
		OrderBy(FieldDate, true))
}

func (s *service) Recent(ctx context.Context, actor Actor) ([]AttendanceResponse, error) {
	f := querymap.Filter{}
	switch actor.Role {
	case domain.RoleForeman:
		f = f.And(querymap.Eq(FieldForemanID, actor.ID))
	case domain.RoleSiteIncharge:
		f = f.And(querymap.Eq(FieldSiteID, actor.SiteID))
	}
	return s.list(ctx, "recent", f.OrderBy(FieldSubmittedAt, true).Take(recentLimit))
}

func (s *service) list(ctx context.Context, name string, f querymap.Filter) ([]AttendanceResponse, error) {
	rows, err := s.repo.List(ctx, f)
	if err != nil {
		s.logger.Error("list attendance failed", zap.String("listing", name), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) Review(ctx context.Context, actor Actor, id string, req ReviewAttendanceRequest) (AttendanceResponse, error) {
	if err := Authorize(actor, ActionReview, nil); err != nil {
		return AttendanceResponse{}, err
	}
	if req.Entries == nil {
		return AttendanceResponse{}, attendanceerrors.ErrMissingEntries
	}

	entries, err := toEntries(req.Entries)
	if err != nil {
		return AttendanceResponse{}, err
	}
	return s.transition(ctx, actor, id, ActionReview, func(qtx Repository, rec *AttendanceRecord, now time.Time) (map[string]any, error) {
		if err := qtx.UpsertEntries(ctx, rec, entries); err != nil {
			return nil, err
		}
		partial := map[string]any{
			FieldStatus:         string(StatusInchargeReviewed),
			FieldReviewedAt:     now,
			FieldReviewedBy:     actor.ID,
			FieldPresentWorkers: CountPresent(entries),
		}
		if req.Comments != nil {
			partial[FieldInchargeComments] = *req.Comments
		}
		return partial, nil
	})
}

func (s *service) Approve(ctx context.Context, actor Actor, id string, req ApproveAttendanceRequest) (AttendanceResponse, error) {
	if err := Authorize(actor, ActionApprove, nil); err != nil {
		return AttendanceResponse{}, err
	}

	return s.transition(ctx, actor, id, ActionApprove, func(_ Repository, _ *AttendanceRecord, now time.Time) (map[string]any, error) {
		partial := map[string]any{
			FieldStatus:     string(StatusAdminApproved),
			FieldApprovedAt: now,
			FieldApprovedBy: actor.ID,
		}
		if req.Comments != nil {
			partial[FieldAdminComments] = *req.Comments
		}
		return partial, nil
	})
}

func (s *service) Reject(ctx context.Context, actor Actor, id string, req RejectAttendanceRequest) (AttendanceResponse, error) {
	if err := Authorize(actor, ActionReject, nil); err != nil {
		return AttendanceResponse{}, err
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return AttendanceResponse{}, attendanceerrors.ErrMissingReason
	}

	return s.transition(ctx, actor, id, ActionReject, func(_ Repository, _ *AttendanceRecord, now time.Time) (map[string]any, error) {
		return map[string]any{
			FieldStatus:          string(StatusRejected),
			FieldRejectedAt:      now,
			FieldRejectedBy:      actor.ID,
			FieldRejectionReason: reason,
		}, nil
	})
}

// Update is the admin direct edit. The status is left as it is.
func (s *service) Update(ctx context.Context, actor Actor, id string, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	if err := Authorize(actor, ActionEdit, nil); err != nil {
		return AttendanceResponse{}, err
	}

	var entries []AttendanceEntry
	if req.Entries != nil {
		var err error
		if entries, err = toEntries(req.Entries); err != nil {
			return AttendanceResponse{}, err
		}
	}

	return s.transition(ctx, actor, id, ActionEdit, func(qtx Repository, rec *AttendanceRecord, _ time.Time) (map[string]any, error) {
		partial := map[string]any{}
		if req.Entries != nil {
			if err := qtx.UpsertEntries(ctx, rec, entries); err != nil {
				return nil, err
			}
			partial[FieldPresentWorkers] = CountPresent(entries)
		}
		if req.InTime != nil && *req.InTime != "" {
			partial[FieldInTime] = *req.InTime
		}
		if req.OutTime != nil && *req.OutTime != "" {
			partial[FieldOutTime] = *req.OutTime
		}
		if req.AdminComments != nil && *req.AdminComments != "" {
			partial[FieldAdminComments] = *req.AdminComments
		}
		return partial, nil
	})
}

type mutation func(qtx Repository, rec *AttendanceRecord, now time.Time) (map[string]any, error)

// transition loads the record, checks scope and source state, applies the
// mutation and queues the lifecycle event, all in one transaction.
func (s *service) transition(ctx context.Context, actor Actor, id string, action Action, mutate mutation) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	recordID, err := parseID(id)
	if err != nil {
		return AttendanceResponse{}, err
	}

	var updated *AttendanceRecord
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		rec, err := qtx.FindOne(ctx, byID(recordID))
		if err != nil {
			return mapRepositoryError(err)
		}
		if err := Authorize(actor, action, rec); err != nil {
			return err
		}
		if !CanTransition(rec.Status, action) {
			s.logger.Warn("attendance transition rejected",
				zap.String("record_id", id),
				zap.String("status", string(rec.Status)),
				zap.String("action", string(action)),
			)
			return attendanceerrors.ErrInvalidTransition
		}

		partial, err := mutate(qtx, rec, s.now().UTC())
		if err != nil {
			return mapRepositoryError(err)
		}
		if err := qtx.Update(ctx, recordID, partial); err != nil {
			return mapRepositoryError(err)
		}

		updated, err = qtx.FindOne(ctx, byID(recordID))
		if err != nil {
			return mapRepositoryError(err)
		}
		return s.enqueue(ctx, tx, eventTypeFor(action), updated, actor)
	})
	if err != nil {
		s.logger.Debug("attendance transition failed",
			zap.String("request_id", rid),
			zap.String("record_id", id),
			zap.String("action", string(action)),
			zap.Error(err),
		)
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance transition success",
		zap.String("request_id", rid),
		zap.String("record_id", id),
		zap.String("action", string(action)),
		zap.String("status", string(updated.Status)),
		zap.String("actor_id", actor.ID),
	)
	return mapToResponse(*updated), nil
}

func eventTypeFor(action Action) string {
	switch action {
	case ActionSubmit:
		return events.AttendanceSubmitted
	case ActionReview:
		return events.AttendanceReviewed
	case ActionApprove:
		return events.AttendanceApproved
	case ActionReject:
		return events.AttendanceRejected
	default:
		return events.AttendanceUpdated
	}
}

func (s *service) enqueue(ctx context.Context, tx *gorm.DB, eventType string, rec *AttendanceRecord, actor Actor) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.AttendanceLifecycleEvent{
		EventType:      eventType,
		RequestID:      rid,
		RecordID:       rec.ID.String(),
		SiteID:         rec.SiteID,
		SiteName:       rec.SiteName,
		ForemanID:      rec.ForemanID,
		Date:           rec.Date.Format(dateLayout),
		Status:         string(rec.Status),
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		TotalWorkers:   rec.TotalWorkers,
		PresentWorkers: rec.PresentWorkers,
		OccurredAt:     s.now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: events.AggregateAttendance,
		AggregateID:   rec.ID.String(),
		EventType:     eventType,
		Topic:         events.AttendanceLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("attendance outbox persist failed",
			zap.String("record_id", rec.ID.String()),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(time.RFC3339)
	return &v
}

func mapToResponse(r AttendanceRecord) AttendanceResponse {
	entries := make([]EntryResponse, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, EntryResponse{
			WorkerID:    e.WorkerID,
			WorkerName:  e.WorkerName,
			Designation: e.Designation,
			IsPresent:   e.IsPresent,
			HoursWorked: e.HoursWorked,
			FormulaX:    e.FormulaX,
			FormulaY:    e.FormulaY,
			Remarks:     e.Remarks,
		})
	}

	return AttendanceResponse{
		ID:               r.ID.String(),
		Date:             r.Date.Format(dateLayout),
		SiteID:           r.SiteID,
		SiteName:         r.SiteName,
		ForemanID:        r.ForemanID,
		ForemanName:      r.ForemanName,
		Status:           string(r.Status),
		Entries:          entries,
		InTime:           r.InTime,
		OutTime:          r.OutTime,
		SubmittedAt:      r.SubmittedAt.UTC().Format(time.RFC3339),
		ReviewedAt:       formatTime(r.ReviewedAt),
		ApprovedAt:       formatTime(r.ApprovedAt),
		RejectedAt:       formatTime(r.RejectedAt),
		MarkedBy:         r.MarkedBy,
		ReviewedBy:       r.ReviewedBy,
		ApprovedBy:       r.ApprovedBy,
		RejectedBy:       r.RejectedBy,
		InchargeComments: r.InchargeComments,
		AdminComments:    r.AdminComments,
		RejectionReason:  r.RejectionReason,
		TotalWorkers:     r.TotalWorkers,
		PresentWorkers:   r.PresentWorkers,
	}
}

func mapToListResponse(rows []AttendanceRecord) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapToResponse(r))
	}
	return out
}

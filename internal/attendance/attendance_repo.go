package attendance

import (
	"context"
	"time"

	"construct-erp/internal/shared/querymap"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByForeman(ctx context.Context, foremanID string) ([]AttendanceRecord, error)
	FindOne(ctx context.Context, filter querymap.Filter) (*AttendanceRecord, error)
	List(ctx context.Context, filter querymap.Filter) ([]AttendanceRecord, error)
	Count(ctx context.Context, filter querymap.Filter) (int64, error)
	Insert(ctx context.Context, record *AttendanceRecord) error
	UpsertEntries(ctx context.Context, record *AttendanceRecord, entries []AttendanceEntry) error
	Update(ctx context.Context, id uuid.UUID, partial map[string]any) error
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func orderedEntries(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *repository) query(ctx context.Context, filter querymap.Filter) (*gorm.DB, error) {
	return recordFields.Apply(r.db.WithContext(ctx).Model(&AttendanceRecord{}), filter)
}

func (r *repository) FindByForeman(ctx context.Context, foremanID string) ([]AttendanceRecord, error) {
	return r.List(ctx, querymap.Where(querymap.Eq(FieldForemanID, foremanID)).OrderBy(FieldSubmittedAt, true))
}

func (r *repository) FindOne(ctx context.Context, filter querymap.Filter) (*AttendanceRecord, error) {
	q, err := r.query(ctx, filter)
	if err != nil {
		return nil, err
	}

	var rec AttendanceRecord
	if err := q.Preload("Entries", orderedEntries).Take(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) List(ctx context.Context, filter querymap.Filter) ([]AttendanceRecord, error) {
	q, err := r.query(ctx, filter)
	if err != nil {
		return nil, err
	}

	var rows []AttendanceRecord
	if err := q.Preload("Entries", orderedEntries).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Count(ctx context.Context, filter querymap.Filter) (int64, error) {
	filter.Orders = nil
	filter.Limit = 0
	q, err := r.query(ctx, filter)
	if err != nil {
		return 0, err
	}

	var n int64
	err = q.Count(&n).Error
	return n, err
}

func (r *repository) Insert(ctx context.Context, record *AttendanceRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	entries := record.Entries
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(record).Error; err != nil {
		return err
	}
	return r.upsert(ctx, record, entries)
}

// UpsertEntries replaces the record's entries: rows are upserted by
// (worker_id, date) and entries of workers no longer listed are removed.
func (r *repository) UpsertEntries(ctx context.Context, record *AttendanceRecord, entries []AttendanceEntry) error {
	if err := r.upsert(ctx, record, entries); err != nil {
		return err
	}

	del := r.db.WithContext(ctx).Where("record_id = ?", record.ID)
	if len(entries) > 0 {
		workerIDs := make([]string, 0, len(entries))
		for _, e := range entries {
			workerIDs = append(workerIDs, e.WorkerID)
		}
		del = del.Where("worker_id NOT IN ?", workerIDs)
	}
	return del.Delete(&AttendanceEntry{}).Error
}

func (r *repository) upsert(ctx context.Context, record *AttendanceRecord, entries []AttendanceEntry) error {
	if len(entries) == 0 {
		return nil
	}
	for i := range entries {
		if entries[i].ID == uuid.Nil {
			entries[i].ID = uuid.New()
		}
		entries[i].RecordID = record.ID
		entries[i].SiteID = record.SiteID
		entries[i].Date = record.Date
		entries[i].Position = i
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "worker_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"record_id", "site_id", "position", "worker_name", "designation",
				"is_present", "hours_worked", "formula_x", "formula_y", "remarks",
			}),
		}).
		Create(&entries).Error
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, partial map[string]any) error {
	cols, err := recordFields.Assignments(partial)
	if err != nil {
		return err
	}
	if len(cols) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).
		Model(&AttendanceRecord{}).
		Where("id = ?", id).
		Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteBefore removes records whose work date is before cutoff, entries
// first. It returns the number of records removed.
func (r *repository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	day := cutoff.Format(dateLayout)
	if err := r.db.WithContext(ctx).
		Where("record_id IN (?)", r.db.Model(&AttendanceRecord{}).Select("id").Where("date < ?", day)).
		Delete(&AttendanceEntry{}).Error; err != nil {
		return 0, err
	}

	res := r.db.WithContext(ctx).Where("date < ?", day).Delete(&AttendanceRecord{})
	return res.RowsAffected, res.Error
}

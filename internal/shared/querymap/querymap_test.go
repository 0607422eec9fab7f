package querymap_test

import (
	"strings"
	"testing"

	"construct-erp/internal/shared/querymap"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type row struct {
	ID string
}

func (row) TableName() string { return "attendance_records" }

var fields = querymap.NewFieldMap("record", map[string]string{
	"id":                  "id",
	"siteId":              "site_id",
	"status":              "status",
	"submittedAt":         "submitted_at",
	"effectiveApprovedAt": "COALESCE(approved_at, date)",
	"approvedAt":          "approved_at",
})

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func compile(t *testing.T, f querymap.Filter) (string, []any) {
	t.Helper()
	q, err := fields.Apply(dryRunDB(t).Model(&row{}), f)
	require.NoError(t, err)

	var out []row
	stmt := q.Find(&out).Statement
	return stmt.SQL.String(), stmt.Vars
}

func TestApply_EqualityOrderAndLimit(t *testing.T) {
	sql, vars := compile(t, querymap.
		Where(querymap.Eq("siteId", "site-1"), querymap.Eq("status", "submitted")).
		OrderBy("submittedAt", true).
		Take(50))

	assert.True(t, strings.HasPrefix(sql,
		`SELECT * FROM "attendance_records" WHERE site_id = $1 AND status = $2 ORDER BY submitted_at DESC LIMIT `), sql)
	require.GreaterOrEqual(t, len(vars), 2)
	assert.Equal(t, []any{"site-1", "submitted"}, vars[:2])
}

func TestApply_RangeAndIn(t *testing.T) {
	sql, vars := compile(t, querymap.
		Where(
			querymap.In("status", []string{"submitted", "incharge_reviewed"}),
			querymap.Gte("effectiveApprovedAt", "2024-01-01"),
			querymap.Lt("effectiveApprovedAt", "2024-02-01"),
		))

	assert.Contains(t, sql, "status IN ($1,$2)")
	assert.Contains(t, sql, "COALESCE(approved_at, date) >= $3")
	assert.Contains(t, sql, "COALESCE(approved_at, date) < $4")
	assert.Len(t, vars, 4)
}

func TestApply_NullChecks(t *testing.T) {
	sql, vars := compile(t, querymap.Where(querymap.IsNull("approvedAt", false)))
	assert.Contains(t, sql, "approved_at IS NOT NULL")
	assert.Empty(t, vars)

	_, err := fields.Apply(dryRunDB(t), querymap.Where(querymap.Condition{Field: "approvedAt", Op: querymap.OpIsNull, Value: "yes"}))
	assert.Error(t, err)
}

func TestApply_RejectsUnknownFields(t *testing.T) {
	db := dryRunDB(t)

	_, err := fields.Apply(db, querymap.Where(querymap.Eq("status; DROP TABLE users", "x")))
	assert.ErrorContains(t, err, "unknown record field")

	_, err = fields.Apply(db, querymap.Filter{}.OrderBy("nope", false))
	assert.Error(t, err)

	_, err = fields.Apply(db, querymap.Where(querymap.Condition{Field: "status", Op: "like", Value: "%"}))
	assert.ErrorContains(t, err, "unsupported operator")
}

func TestFilter_BuildersDoNotAlias(t *testing.T) {
	base := querymap.Where(querymap.Eq("status", "submitted"))
	a := base.And(querymap.Eq("siteId", "a"))
	b := base.And(querymap.Eq("siteId", "b"))

	assert.Len(t, base.Conditions, 1)
	assert.Equal(t, "a", a.Conditions[1].Value)
	assert.Equal(t, "b", b.Conditions[1].Value)
}

func TestAssignments(t *testing.T) {
	got, err := fields.Assignments(map[string]any{"status": "admin_approved", "approvedAt": "now"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"status": "admin_approved", "approved_at": "now"}, got)

	_, err = fields.Assignments(map[string]any{"effectiveApprovedAt": "x"})
	assert.ErrorContains(t, err, "computed")

	_, err = fields.Assignments(map[string]any{"unknown": 1})
	assert.Error(t, err)
}

func TestFields_Sorted(t *testing.T) {
	assert.Equal(t, []string{"approvedAt", "effectiveApprovedAt", "id", "siteId", "status", "submittedAt"}, fields.Fields())
}

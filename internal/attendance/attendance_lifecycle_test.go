package attendance

import (
	"testing"

	attendanceerrors "construct-erp/internal/attendance/errors"
	"construct-erp/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from   Status
		action Action
		want   bool
	}{
		{"", ActionSubmit, true},
		{StatusSubmitted, ActionSubmit, false},
		{StatusSubmitted, ActionReview, true},
		{StatusInchargeReviewed, ActionReview, true},
		{StatusAdminApproved, ActionReview, false},
		{StatusRejected, ActionReview, false},
		{StatusSubmitted, ActionApprove, true},
		{StatusInchargeReviewed, ActionApprove, true},
		{StatusAdminApproved, ActionApprove, true},
		{StatusRejected, ActionApprove, true},
		{StatusSubmitted, ActionReject, true},
		{StatusInchargeReviewed, ActionReject, true},
		{StatusAdminApproved, ActionReject, false},
		{StatusRejected, ActionReject, false},
		{StatusRejected, ActionEdit, true},
		{"bogus", ActionEdit, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.action))
		})
	}
}

func TestTargetStatus(t *testing.T) {
	assert.Equal(t, StatusSubmitted, TargetStatus(ActionSubmit, ""))
	assert.Equal(t, StatusInchargeReviewed, TargetStatus(ActionReview, StatusSubmitted))
	assert.Equal(t, StatusAdminApproved, TargetStatus(ActionApprove, StatusSubmitted))
	assert.Equal(t, StatusRejected, TargetStatus(ActionReject, StatusInchargeReviewed))
	assert.Equal(t, StatusInchargeReviewed, TargetStatus(ActionEdit, StatusInchargeReviewed))
}

func TestAuthorize(t *testing.T) {
	rec := &AttendanceRecord{SiteID: "site-a"}
	foreman := Actor{ID: "f1", Role: domain.RoleForeman, SiteID: "site-a"}
	incharge := Actor{ID: "i1", Role: domain.RoleSiteIncharge, SiteID: "site-a"}
	otherIncharge := Actor{ID: "i2", Role: domain.RoleSiteIncharge, SiteID: "site-b"}
	admin := Actor{ID: "a1", Role: domain.RoleAdmin}

	assert.NoError(t, Authorize(foreman, ActionSubmit, nil))
	assert.ErrorIs(t, Authorize(admin, ActionSubmit, nil), attendanceerrors.ErrUnauthorized)

	assert.NoError(t, Authorize(incharge, ActionReview, rec))
	assert.ErrorIs(t, Authorize(otherIncharge, ActionReview, rec), attendanceerrors.ErrRecordNotFound)
	assert.ErrorIs(t, Authorize(admin, ActionReview, rec), attendanceerrors.ErrUnauthorized)

	assert.NoError(t, Authorize(admin, ActionApprove, rec))
	assert.ErrorIs(t, Authorize(incharge, ActionApprove, rec), attendanceerrors.ErrUnauthorized)

	assert.NoError(t, Authorize(admin, ActionReject, rec))
	assert.NoError(t, Authorize(incharge, ActionReject, rec))
	assert.ErrorIs(t, Authorize(otherIncharge, ActionReject, rec), attendanceerrors.ErrRecordNotFound)
	assert.ErrorIs(t, Authorize(foreman, ActionReject, rec), attendanceerrors.ErrUnauthorized)

	assert.NoError(t, Authorize(admin, ActionEdit, rec))
	assert.ErrorIs(t, Authorize(foreman, ActionEdit, rec), attendanceerrors.ErrUnauthorized)
	assert.ErrorIs(t, Authorize(admin, Action("delete"), rec), attendanceerrors.ErrUnauthorized)
}

func TestCountPresent(t *testing.T) {
	entries := []AttendanceEntry{{IsPresent: true}, {IsPresent: false}, {IsPresent: true}}
	assert.Equal(t, 2, CountPresent(entries))
	assert.Equal(t, 0, CountPresent(nil))
}

func TestResolveFormula(t *testing.T) {
	x, y := ResolveFormula(10, nil, nil)
	assert.Equal(t, 1, x)
	assert.Equal(t, 2.0, y)

	x, y = ResolveFormula(7.5, nil, nil)
	assert.Equal(t, 0, x)
	assert.Equal(t, 7.5, y)

	x, y = ResolveFormula(16, nil, nil)
	assert.Equal(t, 2, x)
	assert.Equal(t, 0.0, y)

	fx, fy := 3, 1.5
	x, y = ResolveFormula(10, &fx, &fy)
	assert.Equal(t, 3, x)
	assert.Equal(t, 1.5, y)
}

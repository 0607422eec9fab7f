package attendance_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"construct-erp/internal/attendance"
	attendanceerrors "construct-erp/internal/attendance/errors"
	attendanceMock "construct-erp/internal/attendance/mock"
	"construct-erp/internal/domain"
	"construct-erp/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withActor(a attendance.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, a.ID)
		c.Set(middleware.ContextRole, a.Role)
		c.Set(middleware.ContextSiteID, a.SiteID)
		c.Set(middleware.ContextName, a.Name)
		c.Next()
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var res map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

var foremanActor = attendance.Actor{ID: "foreman-1", Role: domain.RoleForeman, SiteID: "site-a", Name: "foreman1"}

func TestHandler_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := attendanceMock.NewMockService(ctrl)
	handler := attendance.NewHandler(mockService, nil)
	router := setupRouter()
	router.POST("/attendance/submit", withActor(foremanActor), handler.Submit)

	t.Run("created", func(t *testing.T) {
		mockService.EXPECT().
			Submit(gomock.Any(), foremanActor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ attendance.Actor, req attendance.SubmitAttendanceRequest) (attendance.AttendanceResponse, error) {
				assert.Equal(t, "2024-03-01", req.Date)
				require.Len(t, req.Entries, 1)
				assert.True(t, req.Entries[0].IsPresent)
				return attendance.AttendanceResponse{ID: "rec-1", Status: "submitted", TotalWorkers: 1, PresentWorkers: 1}, nil
			})

		w := doJSON(t, router, http.MethodPost, "/attendance/submit", map[string]any{
			"date":    "2024-03-01",
			"entries": []map[string]any{{"workerId": "w-1", "isPresent": true, "hoursWorked": 9}},
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		res := decode(t, w)
		assert.Equal(t, "Attendance submitted successfully", res["message"])
		assert.Equal(t, "rec-1", res["data"].(map[string]interface{})["id"])
	})

	t.Run("duplicate", func(t *testing.T) {
		mockService.EXPECT().
			Submit(gomock.Any(), foremanActor, gomock.Any()).
			Return(attendance.AttendanceResponse{}, attendanceerrors.ErrAlreadySubmitted)

		w := doJSON(t, router, http.MethodPost, "/attendance/submit", map[string]any{
			"date":    "2024-03-01",
			"entries": []map[string]any{{"workerId": "w-1"}},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Attendance already submitted for this date", decode(t, w)["message"])
	})

	t.Run("entry without worker id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/attendance/submit", map[string]any{
			"date":    "2024-03-01",
			"entries": []map[string]any{{"isPresent": true}},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Review(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incharge := attendance.Actor{ID: "incharge-1", Role: domain.RoleSiteIncharge, SiteID: "site-a"}
	mockService := attendanceMock.NewMockService(ctrl)
	handler := attendance.NewHandler(mockService, nil)
	router := setupRouter()
	router.POST("/attendance/review/:id", withActor(incharge), handler.Review)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			Review(gomock.Any(), incharge, "rec-1", gomock.Any()).
			Return(attendance.AttendanceResponse{ID: "rec-1", Status: "incharge_reviewed", PresentWorkers: 7}, nil)

		w := doJSON(t, router, http.MethodPost, "/attendance/review/rec-1", map[string]any{
			"entries": []map[string]any{{"workerId": "w-1", "isPresent": true}},
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Attendance reviewed successfully", decode(t, w)["message"])
	})

	t.Run("other site is not found", func(t *testing.T) {
		mockService.EXPECT().
			Review(gomock.Any(), incharge, "rec-2", gomock.Any()).
			Return(attendance.AttendanceResponse{}, attendanceerrors.ErrRecordNotFound)

		w := doJSON(t, router, http.MethodPost, "/attendance/review/rec-2", map[string]any{
			"entries": []map[string]any{{"workerId": "w-1"}},
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Record not found", decode(t, w)["message"])
	})
}

func TestHandler_Approve_EmptyBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := attendance.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	mockService := attendanceMock.NewMockService(ctrl)
	handler := attendance.NewHandler(mockService, nil)
	router := setupRouter()
	router.POST("/attendance/admin-approve/:id", withActor(admin), handler.Approve)

	mockService.EXPECT().
		Approve(gomock.Any(), admin, "rec-1", attendance.ApproveAttendanceRequest{}).
		Return(attendance.AttendanceResponse{ID: "rec-1", Status: "admin_approved"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/attendance/admin-approve/rec-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Attendance approved successfully", decode(t, w)["message"])
}

func TestHandler_Reject_InvalidTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := attendance.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	mockService := attendanceMock.NewMockService(ctrl)
	handler := attendance.NewHandler(mockService, nil)
	router := setupRouter()
	router.POST("/attendance/reject/:id", withActor(admin), handler.Reject)

	mockService.EXPECT().
		Reject(gomock.Any(), admin, "rec-1", attendance.RejectAttendanceRequest{Reason: "late"}).
		Return(attendance.AttendanceResponse{}, attendanceerrors.ErrInvalidTransition)

	w := doJSON(t, router, http.MethodPost, "/attendance/reject/rec-1", map[string]any{"reason": "late"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_STATE", w.Header().Get("X-Error-Code"))
}

func TestHandler_CheckSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := attendanceMock.NewMockService(ctrl)
	handler := attendance.NewHandler(mockService, nil)
	router := setupRouter()
	router.GET("/attendance/check/:date", withActor(foremanActor), handler.CheckSubmission)

	mockService.EXPECT().
		CheckSubmission(gomock.Any(), foremanActor, "2024-03-01").
		Return(attendance.CheckSubmissionResponse{HasSubmitted: true}, nil)

	w := doJSON(t, router, http.MethodGet, "/attendance/check/2024-03-01", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["data"].(map[string]interface{})["hasSubmitted"])
}

func TestHandler_ForemanCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := attendanceMock.NewMockService(ctrl)
	handler := attendance.NewHandler(mockService, nil)
	router := setupRouter()
	router.GET("/attendance/foreman/:foremanId/current", handler.ForemanCurrent)

	t.Run("nothing approved yet", func(t *testing.T) {
		mockService.EXPECT().ForemanCurrent(gomock.Any(), "foreman-1").Return(nil, nil)

		w := doJSON(t, router, http.MethodGet, "/attendance/foreman/foreman-1/current", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		res := decode(t, w)
		assert.Equal(t, true, res["success"])
		v, ok := res["data"]
		assert.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("approved record", func(t *testing.T) {
		mockService.EXPECT().ForemanCurrent(gomock.Any(), "foreman-1").
			Return(&attendance.AttendanceResponse{ID: "rec-9", Status: "admin_approved"}, nil)

		w := doJSON(t, router, http.MethodGet, "/attendance/foreman/foreman-1/current", nil)
		assert.Equal(t, "rec-9", decode(t, w)["data"].(map[string]interface{})["id"])
	})
}

func TestHandler_Recent_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := attendanceMock.NewMockService(ctrl)
	handler := attendance.NewHandler(mockService, nil)
	router := setupRouter()
	router.GET("/attendance/recent", withActor(foremanActor), handler.Recent)

	mockService.EXPECT().Recent(gomock.Any(), foremanActor).Return(nil, assert.AnError)

	w := doJSON(t, router, http.MethodGet, "/attendance/recent", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])
}

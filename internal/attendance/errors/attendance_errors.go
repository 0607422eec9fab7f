package attendanceerrors

import (
	"net/http"

	"construct-erp/internal/shared/apperror"
)

var (
	ErrMissingFields = apperror.New(
		apperror.CodeValidation,
		"Missing required fields",
		http.StatusBadRequest,
	)
	ErrAlreadySubmitted = apperror.New(
		apperror.CodeDuplicate,
		"Attendance already submitted for this date",
		http.StatusBadRequest,
	)
	ErrMissingEntries = apperror.New(
		apperror.CodeValidation,
		"Missing entries",
		http.StatusBadRequest,
	)
	ErrDuplicateWorker = apperror.New(
		apperror.CodeValidation,
		"Each worker can appear only once",
		http.StatusBadRequest,
	)
	ErrMissingReason = apperror.New(
		apperror.CodeValidation,
		"Rejection reason is required",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeValidation,
		"Date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Attendance record cannot move to that status",
		http.StatusBadRequest,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Record not found",
		http.StatusNotFound,
	)
	ErrUnauthorized = apperror.New(
		apperror.CodeUnauthorized,
		"Unauthorized",
		http.StatusUnauthorized,
	)
	ErrNoSite = apperror.New(
		apperror.CodeValidation,
		"Account is not assigned to a site",
		http.StatusBadRequest,
	)
)

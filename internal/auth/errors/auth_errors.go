package autherrors

import (
	"net/http"

	"construct-erp/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid user id in token",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrCurrentPasswordWrong = apperror.New(
		apperror.CodeValidation,
		"Current password is incorrect",
		http.StatusBadRequest,
	)
	ErrPasswordTooShort = apperror.New(
		apperror.CodeValidation,
		"New password must be at least 4 characters long",
		http.StatusBadRequest,
	)
	ErrUsernameTaken = apperror.New(
		apperror.CodeDuplicate,
		"Username already exists",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeValidation,
		"Role must be admin, site_incharge or foreman",
		http.StatusBadRequest,
	)
	ErrSiteRequired = apperror.New(
		apperror.CodeValidation,
		"Site is required for foreman and site_incharge accounts",
		http.StatusBadRequest,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Internal server error",
		http.StatusInternalServerError,
	)
)

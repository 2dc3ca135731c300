package attendanceerrors

import (
	"net/http"

	"go-sitepass/internal/shared/apperror"
)

var (
	ErrAlreadyOpen = apperror.New(
		apperror.CodeAlreadyOpen,
		"You are already checked in for this work day",
		http.StatusConflict,
	)

	ErrAlreadyCompleted = apperror.New(
		apperror.CodeAlreadyCompleted,
		"Attendance for this work day is already completed",
		http.StatusConflict,
	)

	ErrNoOpenSession = apperror.New(
		apperror.CodeNoOpenSession,
		"There is no open check-in for the current work day",
		http.StatusBadRequest,
	)

	ErrQRExpired = apperror.New(
		apperror.CodeQRExpired,
		"The QR code has expired, refresh it and try again",
		http.StatusBadRequest,
	)

	ErrQRInvalid = apperror.New(
		apperror.CodeQRInvalid,
		"The QR code is not valid",
		http.StatusForbidden,
	)

	ErrInvalidMonth = apperror.New(
		apperror.CodeValidation,
		"month must be formatted as YYYY-MM",
		http.StatusBadRequest,
	)
)

package workererrors

import (
	"net/http"

	"go-sitepass/internal/shared/apperror"
)

var (
	ErrWorkerNotFound = apperror.New(
		apperror.CodeNotFound,
		"worker not found",
		http.StatusNotFound,
	)
	ErrPhoneInUse = apperror.New(
		apperror.CodeConflict,
		"this phone number is already registered",
		http.StatusConflict,
	)
	ErrConsentRequired = apperror.New(
		apperror.CodeValidation,
		"all required consents must be accepted",
		http.StatusBadRequest,
	)
	ErrInvalidBirthDate = apperror.New(
		apperror.CodeValidation,
		"birthDate must be a valid YYYYMMDD date",
		http.StatusBadRequest,
	)
	ErrInvalidPhone = apperror.New(
		apperror.CodeValidation,
		"phone must be a valid mobile number",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeValidation,
		"role must be WORKER or TEAM_ADMIN",
		http.StatusBadRequest,
	)
	ErrTeamOutsideSite = apperror.New(
		apperror.CodeValidation,
		"team must belong to the worker's company and site",
		http.StatusBadRequest,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidTransition,
		"the worker's current status does not allow this action",
		http.StatusBadRequest,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"you do not manage this worker",
		http.StatusForbidden,
	)
	ErrInvalidInviteReference = apperror.New(
		apperror.CodeInvalidToken,
		"invite link is invalid or expired",
		http.StatusBadRequest,
	)
	ErrInviteNotPending = apperror.New(
		apperror.CodeConflict,
		"this invite was already used",
		http.StatusConflict,
	)
)

var notActiveMessages = map[string]string{
	"PENDING":   "consent is required, finish signing up first",
	"REQUESTED": "your enrollment is waiting for approval",
	"BLOCKED":   "access is blocked, contact your administrator",
	"INACTIVE":  "this account is inactive, contact your administrator",
	"REJECTED":  "your enrollment was rejected, contact your administrator",
}

// NotActive is returned when a non-ACTIVE worker attempts an action that
// requires ACTIVE. The message depends on the status.
func NotActive(status string) *apperror.AppError {
	msg, ok := notActiveMessages[status]
	if !ok {
		msg = "this account cannot perform the action in its current state"
	}
	return apperror.New(apperror.CodeWorkerNotActive, msg, http.StatusForbidden).
		WithDetails(map[string]string{"status": status})
}

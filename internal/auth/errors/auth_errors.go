package autherrors

import (
	"net/http"

	"go-sitepass/internal/shared/apperror"
)

var (
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Access token not found",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeInvalidToken,
		"Token is invalid",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeTokenExpired,
		"Access token has expired",
		http.StatusUnauthorized,
	)

	// ErrRefreshInvalid covers unknown, expired and already rotated refresh tokens.
	ErrRefreshInvalid = apperror.New(
		apperror.CodeInvalidToken,
		"Refresh token is invalid or has been used",
		http.StatusUnauthorized,
	)

	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrWorkerNotFound = apperror.New(
		apperror.CodeNotFound,
		"No worker is registered for this phone number",
		http.StatusNotFound,
	)

	ErrPhoneMismatch = apperror.New(
		apperror.CodeInvalidToken,
		"Verification token does not belong to this phone number",
		http.StatusBadRequest,
	)
)

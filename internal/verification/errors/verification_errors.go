package verificationerrors

import (
	"net/http"

	"go-sitepass/internal/shared/apperror"
)

var (
	ErrInvalidPhone = apperror.New(
		apperror.CodeValidation,
		"phone must be a valid mobile number",
		http.StatusBadRequest,
	)
	ErrInvalidPurpose = apperror.New(
		apperror.CodeValidation,
		"purpose must be ENROLL or AUTHENTICATE",
		http.StatusBadRequest,
	)
	ErrPhoneNotRegistered = apperror.New(
		apperror.CodeNotFound,
		"no worker is registered with this phone",
		http.StatusNotFound,
	)
	ErrResendTooSoon = apperror.New(
		apperror.CodeTooManyRequests,
		"a code was sent recently, wait before requesting another",
		http.StatusTooManyRequests,
	)
	ErrChallengeNotFound = apperror.New(
		apperror.CodeInvalidToken,
		"no pending verification for this phone, request a new code",
		http.StatusBadRequest,
	)
	ErrCodeExpired = apperror.New(
		apperror.CodeInvalidToken,
		"verification code expired",
		http.StatusBadRequest,
	)
	ErrTooManyAttempts = apperror.New(
		apperror.CodeInvalidToken,
		"too many failed attempts, request a new code",
		http.StatusBadRequest,
	)
	ErrCodeMismatch = apperror.New(
		apperror.CodeInvalidToken,
		"verification code does not match",
		http.StatusBadRequest,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeInvalidToken,
		"verification token is invalid or expired",
		http.StatusBadRequest,
	)
	ErrTokenConsumed = apperror.New(
		apperror.CodeInvalidToken,
		"verification token was already used",
		http.StatusBadRequest,
	)
	ErrCodeDeliveryFailed = apperror.New(
		apperror.CodeDependencyFailure,
		"verification code could not be delivered",
		http.StatusBadGateway,
	)
)

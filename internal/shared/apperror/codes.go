package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput      = "INVALID_INPUT"
	CodeValidation        = "VALIDATION_ERROR"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInvalidToken      = "INVALID_TOKEN"
	CodeTokenExpired      = "TOKEN_EXPIRED"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeWorkerNotActive   = "WORKER_NOT_ACTIVE"
	CodeAlreadyOpen       = "ALREADY_OPEN"
	CodeAlreadyCompleted  = "ALREADY_COMPLETED"
	CodeNoOpenSession     = "NO_OPEN_SESSION"
	CodeQRExpired         = "QR_EXPIRED"
	CodeQRInvalid         = "QR_INVALID"
	CodeTooManyRequests   = "TOO_MANY_REQUESTS"
	CodeProcessing        = "PROCESSING"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeDependencyFailure  = "DEPENDENCY_FAILURE"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

package domain

// EnforceRequest asks whether a worker holding Role may perform Action on
// Resource. WorkerID is carried for logging only; policies are per role.
type EnforceRequest struct {
	WorkerID string `json:"worker_id"`
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// Resources and actions named by route guards and the built-in policy.
const (
	ResourceAttendance = "attendance"
	ResourceWorker     = "worker"
	ResourceRBAC       = "rbac"

	ActionRead   = "read"
	ActionWrite  = "write"
	ActionInvite = "invite"
	ActionManage = "manage"
)

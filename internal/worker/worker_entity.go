package worker

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "PENDING"
	StatusRequested = "REQUESTED"
	StatusActive    = "ACTIVE"
	StatusInactive  = "INACTIVE"
	StatusBlocked   = "BLOCKED"
	StatusRejected  = "REJECTED"
)

const (
	RoleWorker     = "WORKER"
	RoleTeamAdmin  = "TEAM_ADMIN"
	RoleSiteAdmin  = "SITE_ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// Worker is one enrollment of a person under a company, site and team. The
// phone is unique among live statuses (uq_workers_phone_live).
type Worker struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Phone       string    `gorm:"type:varchar(20);not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	BirthDate   time.Time `gorm:"type:date;not null"`
	Gender      *string   `gorm:"type:varchar(10)"`
	Nationality *string   `gorm:"type:varchar(50)"`
	JobTitle    *string   `gorm:"type:varchar(100)"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	SiteID      uuid.UUID `gorm:"type:uuid;not null;index"`
	TeamID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Role        string    `gorm:"type:varchar(20);not null;default:'WORKER'"`
	Status      string    `gorm:"type:varchar(20);not null;index"`

	InvitedBy       *uuid.UUID `gorm:"type:uuid"`
	InvitedAt       *time.Time `gorm:"type:timestamptz"`
	ConsentedAt     *time.Time `gorm:"type:timestamptz"`
	RequestedAt     *time.Time `gorm:"type:timestamptz"`
	ActivatedAt     *time.Time `gorm:"type:timestamptz"`
	ApprovedAt      *time.Time `gorm:"type:timestamptz"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectedAt      *time.Time `gorm:"type:timestamptz"`
	RejectionReason *string    `gorm:"type:varchar(500)"`
	BlockedAt       *time.Time `gorm:"type:timestamptz"`
	DeactivatedAt   *time.Time `gorm:"type:timestamptz"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Worker) TableName() string {
	return "workers"
}

// HoldsPhone reports whether the worker keeps its phone out of reuse.
func (w *Worker) HoldsPhone() bool {
	switch w.Status {
	case StatusPending, StatusRequested, StatusActive:
		return true
	default:
		return false
	}
}

package identity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the login identity behind a worker. Its id is the worker id.
type Credential struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Phone       string     `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time  `gorm:"type:timestamptz;not null"`
	LastLoginAt *time.Time `gorm:"type:timestamptz"`
}

func (Credential) TableName() string {
	return "identity_credentials"
}

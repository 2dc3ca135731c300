package verification

import (
	"time"

	"github.com/google/uuid"
)

const (
	PurposeEnroll       = "ENROLL"
	PurposeAuthenticate = "AUTHENTICATE"
)

const (
	CodeLength     = 6
	CodeTTL        = 3 * time.Minute
	MaxAttempts    = 5
	TokenTTL       = 10 * time.Minute
	ResendCooldown = 30 * time.Second
	RetentionAfter = 24 * time.Hour
)

// Challenge is one code sent to one phone for one purpose. It is verified
// at most once and consumed at most once; after consumption it is never
// mutated again.
type Challenge struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Phone      string     `gorm:"type:varchar(20);not null;index:idx_challenges_phone_purpose"`
	Purpose    string     `gorm:"type:varchar(20);not null;index:idx_challenges_phone_purpose"`
	CodeHash   string     `gorm:"type:varchar(100);not null"`
	Attempts   int        `gorm:"not null;default:0"`
	IssuedAt   time.Time  `gorm:"type:timestamptz;not null"`
	ExpiresAt  time.Time  `gorm:"type:timestamptz;not null;index"`
	VerifiedAt *time.Time `gorm:"type:timestamptz"`
	ConsumedAt *time.Time `gorm:"type:timestamptz"`
	ConsumedBy *string    `gorm:"type:varchar(64)"`
}

func (Challenge) TableName() string {
	return "verification_challenges"
}

// Proof is a validated verification token.
type Proof struct {
	ChallengeID string
	Phone       string
	Purpose     string
	// ConsumedBy is set when the token was already spent; it names the
	// consumer (a worker id) so retries can return the earlier result.
	ConsumedBy string
}

func (p Proof) Consumed() bool {
	return p.ConsumedBy != ""
}

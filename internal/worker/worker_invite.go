package worker

import (
	"time"

	"go-sitepass/internal/shared/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const InviteTTL = 7 * 24 * time.Hour

type inviteClaims struct {
	WorkerID string `json:"worker_id"`
	Phone    string `json:"phone"`
	jwt.RegisteredClaims
}

// inviteSigner issues the signed, time-boxed reference embedded in invite
// links. The reference carries no authority beyond identifying the invite.
type inviteSigner struct {
	secret []byte
	clock  clock.Clock
}

func (s inviteSigner) sign(workerID, phone string) (string, time.Time, error) {
	now := s.clock.Now()
	expiresAt := now.Add(InviteTTL)
	claims := inviteClaims{
		WorkerID: workerID,
		Phone:    phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   "invite",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	return signed, expiresAt, err
}

func (s inviteSigner) parse(raw string) (*inviteClaims, error) {
	claims := &inviteClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
		jwt.WithSubject("invite"),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

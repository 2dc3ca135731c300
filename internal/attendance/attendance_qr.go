package attendance

import (
	"errors"
	"time"

	attendanceerrors "go-sitepass/internal/attendance/errors"
	"go-sitepass/internal/shared/clock"

	"github.com/golang-jwt/jwt/v5"
)

const (
	QRTTL     = 30 * time.Second
	qrSubject = "attendance-qr"
)

// qrSigner issues the short-lived payload a worker shows for an
// administrator to scan at the gate.
type qrSigner struct {
	secret []byte
	clock  clock.Clock
}

func (s qrSigner) sign(workerID string) (string, time.Time, error) {
	now := s.clock.Now()
	expiresAt := now.Add(QRTTL)
	claims := jwt.RegisteredClaims{
		Subject:   qrSubject,
		Audience:  jwt.ClaimStrings{workerID},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	return signed, expiresAt, err
}

// parse returns the worker id a payload was issued to.
func (s qrSigner) parse(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
		jwt.WithSubject(qrSubject),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return "", attendanceerrors.ErrQRExpired
	}
	if err != nil || len(claims.Audience) != 1 {
		return "", attendanceerrors.ErrQRInvalid
	}
	return claims.Audience[0], nil
}

// ageOn is the age in completed years on day.
func ageOn(birth, day time.Time) int {
	age := day.Year() - birth.Year()
	if day.Month() < birth.Month() || (day.Month() == birth.Month() && day.Day() < birth.Day()) {
		age--
	}
	return age
}

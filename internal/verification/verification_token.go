package verification

import (
	"time"

	"go-sitepass/internal/shared/clock"

	"github.com/golang-jwt/jwt/v5"
)

type tokenClaims struct {
	Phone   string `json:"phone"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

type tokenSigner struct {
	secret []byte
	clock  clock.Clock
}

func (t tokenSigner) sign(challengeID, phone, purpose string, expiresAt time.Time) (string, error) {
	claims := tokenClaims{
		Phone:   phone,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        challengeID,
			Subject:   "verification",
			IssuedAt:  jwt.NewNumericDate(t.clock.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t tokenSigner) parse(raw string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.clock.Now),
		jwt.WithExpirationRequired(),
		jwt.WithSubject("verification"),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token revoked")
)

type revocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// TokenVerifier verifies HS256 bearer tokens issued by the auth service.
type TokenVerifier struct {
	secret      []byte
	revocations revocationChecker
	now         func() time.Time
}

func NewTokenVerifier(secret string, revocations revocationChecker) *TokenVerifier {
	return &TokenVerifier{
		secret:      []byte(secret),
		revocations: revocations,
		now:         time.Now,
	}
}

// Verify returns the user id carried in the token subject.
// Store errors from the revocation check are returned as they are, so callers
// can tell them apart from ErrInvalidToken / ErrTokenRevoked.
func (v *TokenVerifier) Verify(ctx context.Context, rawToken string) (string, error) {
	if len(v.secret) == 0 {
		return "", errors.New("token verifier has no secret")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(
		rawToken,
		claims,
		func(_ *jwt.Token) (any, error) {
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !ValidUserID(claims.Subject) {
		return "", fmt.Errorf("%w: subject is not a user id", ErrInvalidToken)
	}

	if claims.ID != "" && v.revocations != nil {
		revoked, err := v.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			return "", err
		}
		if revoked {
			return "", ErrTokenRevoked
		}
	}

	return claims.Subject, nil
}

package auth

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// revokedTokenKeyPrefix is shared with the auth service, which writes the keys on logout.
const revokedTokenKeyPrefix = "fitme-revoked-token||"

type RevocationChecker struct {
	redisClient *redis.Client
}

func NewRevocationChecker(redisClient *redis.Client) *RevocationChecker {
	return &RevocationChecker{
		redisClient: redisClient,
	}
}

func (c *RevocationChecker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := c.redisClient.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check token revocation: %w", err)
	}
	return n > 0, nil
}

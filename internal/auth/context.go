package auth

import (
	"context"

	"github.com/fitme-app/fitme/pkg"
)

type ctxKey struct{}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext returns the verified user id set by the auth middleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ctxKey{}).(string)
	return userID, ok && userID != ""
}

// ValidUserID reports whether id is a user id in canonical UUID form. Other
// spellings of the same UUID are rejected, the db and the targets cache only
// know the canonical one.
func ValidUserID(id string) bool {
	return pkg.IsCanonicalUUID(id)
}

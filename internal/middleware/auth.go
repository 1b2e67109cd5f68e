package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/fitme-app/fitme/internal/auth"
	"github.com/fitme-app/fitme/internal/telemetry/tracing"
)

// UserIDHeader is the legacy identity header of the mobile app, only honoured
// when explicitly enabled in config.
const UserIDHeader = "X-User-Id"

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type tokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (string, error)
}

type AuthMiddlewareHandler struct {
	verifier             tokenVerifier
	allowUserIDHeader    bool
	allowedPaths         map[string]bool
	allowedPathsPrefixes []string
}

func NewAuthMiddlewareHandler(verifier tokenVerifier, allowUserIDHeader bool) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		verifier:          verifier,
		allowUserIDHeader: allowUserIDHeader,
		allowedPaths: map[string]bool{
			"/":        true,
			"/health":  true,
			"/version": true,
		},
		allowedPathsPrefixes: []string{
			// guarded by its own secret
			"/mcp",
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions || h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			rawToken, hasBearer := bearerToken(r)
			if !hasBearer {
				if userID := r.Header.Get(UserIDHeader); h.allowUserIDHeader && auth.ValidUserID(userID) {
					span.SetStatus(codes.Ok, "ok-user-id-header")
					next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
					return
				}
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			userID, err := h.verifier.Verify(ctx, rawToken)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrTokenRevoked) {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s: %s", r.URL.Path, err)
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "invalid-token")
					return
				}
				log.Errorf("[failed token check] => %s: %s", r.URL.Path, err)
				http.Error(w, "failed to verify token", http.StatusInternalServerError)
				span.SetStatus(codes.Error, "verify-token-err")
				span.RecordError(err)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[7:])
	return token, token != ""
}

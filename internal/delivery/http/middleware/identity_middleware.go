package middleware

import (
	"context"
	"net/http"
	"strings"

	"blood-donor-registry/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	IdentityEmailKey contextKey = "identity_email"
	RequestIDKey     contextKey = "request_id"
)

// IdentityVerifier resolves a bearer token to the email it vouches for.
// Implemented by the identity provider integration (see pkg/jwt).
type IdentityVerifier interface {
	VerifyIdentity(ctx context.Context, token string) (string, error)
}

type IdentityMiddleware struct {
	verifier IdentityVerifier
	log      *logrus.Logger
}

// NewIdentityMiddleware builds the identity check. A nil verifier disables
// verification: requests pass through and the email they carry is trusted.
func NewIdentityMiddleware(verifier IdentityVerifier, log *logrus.Logger) *IdentityMiddleware {
	return &IdentityMiddleware{
		verifier: verifier,
		log:      log,
	}
}

func (m *IdentityMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.verifier == nil {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		email, err := m.verifier.VerifyIdentity(r.Context(), parts[1])
		if err != nil {
			m.log.WithField("request_id", GetRequestIDFromContext(r.Context())).
				Warnf("Failed to verify identity token: %+v", err)
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), IdentityEmailKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentityEmailFromContext extracts the verified caller email from context
func GetIdentityEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(IdentityEmailKey).(string)
	return email, ok
}

// WithIdentityEmail returns a context carrying a verified caller email.
func WithIdentityEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, IdentityEmailKey, email)
}

// CanActOn reports whether the caller may write the profile owned by email.
// Without a verified identity in ctx the request's own email is trusted.
func CanActOn(ctx context.Context, email string) bool {
	identity, ok := GetIdentityEmailFromContext(ctx)
	if !ok {
		return true
	}
	return strings.EqualFold(identity, email)
}

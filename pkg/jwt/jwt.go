package jwt

import (
	"context"
	"errors"
	"strings"
	"time"

	"blood-donor-registry/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrMissingEmail  = errors.New("token has no email claim")
	ErrMissingSecret = errors.New("identity secret is not configured")
)

// Claims is the identity assertion issued by the external identity provider.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IdentityService verifies HS256 identity tokens shared with the identity provider.
type IdentityService struct {
	config config.IdentityConfig
}

func NewIdentityService(cfg config.IdentityConfig) (*IdentityService, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	return &IdentityService{config: cfg}, nil
}

// GenerateToken signs an identity token for email. The service itself only
// verifies tokens; this is for local tooling and tests.
func (s *IdentityService) GenerateToken(email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.config.Issuer,
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

func (s *IdentityService) ValidateToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if strings.TrimSpace(claims.Email) == "" {
		return nil, ErrMissingEmail
	}

	return claims, nil
}

// VerifyIdentity returns the email the token vouches for.
func (s *IdentityService) VerifyIdentity(_ context.Context, tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}

// Package auth verifies bearer tokens issued by the identity provider in front
// of the service and turns them into claims for principal resolution.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mif-gmao/gmao/internal/shared/authorization"
	"github.com/mif-gmao/gmao/internal/shared/biztime"
)

var ErrInvalidToken = errors.New("invalid token")

type JWTService struct {
	secret []byte
	issuer string
}

func NewJWTService(secret, issuer string) *JWTService {
	return &JWTService{secret: []byte(secret), issuer: issuer}
}

// Verify checks the signature, expiry and issuer and returns the raw claims.
// The claims are left untyped: the subject may be a numeric id or an email.
func (s *JWTService) Verify(tokenString string) (map[string]any, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(biztime.NowUTC),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return map[string]any(claims), nil
}

// Issue signs a token for subject, which may be a user id or an email.
// Used by the CLI to mint tokens for local use and by tests.
func (s *JWTService) Issue(subject string, role authorization.Role, ttl time.Duration) (string, error) {
	now := biztime.NowUTC()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role.String(),
		"iat":  jwt.NewNumericDate(now),
		"nbf":  jwt.NewNumericDate(now),
		"exp":  jwt.NewNumericDate(now.Add(ttl)),
	}
	if s.issuer != "" {
		claims["iss"] = s.issuer
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

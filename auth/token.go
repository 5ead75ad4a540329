// Package auth issues and verifies the bearer tokens exchanged between the user app and the development user
// service. Tokens are HS256 JWTs carrying the registered claims sub, iat and exp.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidTokenFormat is returned when the token is not a well-formed JWT.
	ErrInvalidTokenFormat = errors.New("invalid token format")
	// ErrInvalidSignature is returned when the signature does not match or the token is not signed with HS256.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrTokenExpired is returned when the token's expiry is not after the verification time.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the verified token payload. Times are unix seconds.
type Claims struct {
	Subject   string
	IssuedAt  int64
	ExpiresAt int64
}

// CreateToken signs an HS256 JWT for subject valid from issuedAt until expiresAt.
//
// Parameters: subject - caller identity (e.g. "userapp"); expiresAt, issuedAt - validity window; secret - shared HMAC key.
//
// Returns: (token, nil); ("", error) when expiresAt is not after issuedAt or signing fails.
//
// Called from cmd/userapp when AUTH_SECRET is set, and from tests.
func CreateToken(subject string, expiresAt, issuedAt time.Time, secret []byte) (string, error) {
	if !expiresAt.After(issuedAt) {
		return "", fmt.Errorf("expires_at %s is not after issued_at %s", expiresAt.Format(time.RFC3339), issuedAt.Format(time.RFC3339))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseAndVerify checks the token signature with secret and its expiry against now, and returns the claims.
// Tokens without exp are rejected.
//
// Returns: (Claims, nil); (Claims{}, error) matching ErrInvalidTokenFormat, ErrInvalidSignature or ErrTokenExpired
// with errors.Is, or wrapping the jwt validation error for any other claim failure.
//
// Called from handlers.AuthInterceptor.
func ParseAndVerify(token string, secret []byte, now time.Time) (Claims, error) {
	var rc jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &rc, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenMalformed):
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidTokenFormat, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
	default:
		return Claims{}, fmt.Errorf("verify token: %w", err)
	}

	claims := Claims{Subject: rc.Subject, ExpiresAt: rc.ExpiresAt.Unix()}
	if rc.IssuedAt != nil {
		claims.IssuedAt = rc.IssuedAt.Unix()
	}
	return claims, nil
}

package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/configs"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// ErrInvalidToken covers every verification failure: malformed input, wrong
// signature, expiry and a kind mismatch. Callers treat it as a normal
// not-authenticated outcome, never as a fault.
var ErrInvalidToken = errors.New("invalid or expired token")

// SessionClaims - payload embedded in both token kinds
type SessionClaims struct {
	UserID    string `json:"userId"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// Access and refresh tokens are signed with distinct secrets, so a leaked
// verifier for one kind can never accept the other.
func accessSecret() []byte {
	if secret := os.Getenv("ACCESS_TOKEN_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("fallback-secret-key-for-development")
}

func refreshSecret() []byte {
	if secret := os.Getenv("REFRESH_TOKEN_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("fallback-refresh-secret-key-for-development")
}

func GenerateAccessToken(userID uuid.UUID) (string, error) {
	return generateToken(userID, TokenTypeAccess, accessSecret(), configs.ACCESS_TOKEN_DURATION)
}

func GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return generateToken(userID, TokenTypeRefresh, refreshSecret(), configs.REFRESH_TOKEN_DURATION)
}

func generateToken(userID uuid.UUID, tokenType string, secret []byte, duration time.Duration) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		UserID:    userID.String(),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    configs.JWT_ISSUER,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateAccessToken verifies signature, expiry and the embedded kind, and
// returns the subject user id.
func ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	return validateToken(tokenString, TokenTypeAccess, accessSecret())
}

// ValidateRefreshToken is the refresh-kind counterpart of ValidateAccessToken.
func ValidateRefreshToken(tokenString string) (uuid.UUID, error) {
	return validateToken(tokenString, TokenTypeRefresh, refreshSecret())
}

func validateToken(tokenString, expectedType string, secret []byte) (uuid.UUID, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	if claims.TokenType != expectedType {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}

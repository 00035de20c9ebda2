package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clbasaran/backend-ozmevsim/configs"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	token, err := GenerateAccessToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsedID, err := ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	token, err := GenerateRefreshToken(userID)
	require.NoError(t, err)

	parsedID, err := ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	accessToken, err := GenerateAccessToken(userID)
	require.NoError(t, err)
	refreshToken, err := GenerateRefreshToken(userID)
	require.NoError(t, err)

	_, err = ValidateRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ValidateAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessTokenMalformed(t *testing.T) {
	t.Parallel()

	for _, tokenString := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		_, err := ValidateAccessToken(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestValidateAccessTokenWrongSecret(t *testing.T) {
	t.Parallel()

	claims := SessionClaims{
		UserID:    uuid.New().String(),
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    configs.JWT_ISSUER,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessTokenExpired(t *testing.T) {
	t.Parallel()

	claims := SessionClaims{
		UserID:    uuid.New().String(),
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    configs.JWT_ISSUER,
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(accessSecret())
	require.NoError(t, err)

	_, err = ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessTokenBadSubject(t *testing.T) {
	t.Parallel()

	claims := SessionClaims{
		UserID:    "not-a-uuid",
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(accessSecret())
	require.NoError(t, err)

	_, err = ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

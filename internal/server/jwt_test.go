package server

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		BcryptCost: 10,
		JWTSecret:  "test-secret-key",
		TokenHours: 24,
	}
}

func TestJWT_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(testAuthConfig())
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")))

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWT_EmptyToken(t *testing.T) {
	svc := NewJWTService(testAuthConfig())
	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}

func TestJWT_MalformedToken(t *testing.T) {
	svc := NewJWTService(testAuthConfig())
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	svc := NewJWTService(testAuthConfig())
	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.AuthConfig{BcryptCost: 10, JWTSecret: "different-secret", TokenHours: 24})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_ExpiredToken(t *testing.T) {
	cfg := testAuthConfig()
	svc := NewJWTService(cfg)

	// Sign a token that expired an hour ago.
	claims := &Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_RejectsUnexpectedSigningMethod(t *testing.T) {
	svc := NewJWTService(testAuthConfig())

	// alg=none token with the same claims shape.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: uuid.New()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_AsTokenValidator(t *testing.T) {
	svc := NewJWTService(testAuthConfig())
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)

	getter, err := svc.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, getter.GetUserID())
}

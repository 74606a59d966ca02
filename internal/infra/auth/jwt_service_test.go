package auth

import (
	"testing"
	"time"

	"suasana/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Token = secret
	cfg.Auth = &config.AuthConfig{TokenTTL: ttl}

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	jwtService, err := NewJWTService(newTokenConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.Issue(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Verify(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_VerifyMalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTokenConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	claims, err := jwtService.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_VerifyTamperedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTokenConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := jwtService.Issue(uuid.New())
	require.NoError(t, err)

	// Flip one character of the signed token.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	claims, err := jwtService.Verify(string(tampered))
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTokenConfig("issuer_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTokenConfig("different_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_VerifyExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newTokenConfig("test_secret_key_very_long_for_testing", -time.Minute))
	require.NoError(t, err)

	token, err := jwtService.Issue(uuid.New())
	require.NoError(t, err)

	claims, err := jwtService.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTokenConfig("", time.Hour))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

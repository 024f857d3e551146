package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, err := m.GenerateAccessToken("user-1", "a@example.com")
	require.NoError(t, err)

	claims, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "inflo", claims.Issuer)
}

func TestJWTManager_Rejects(t *testing.T) {
	m := NewJWTManager("secret", time.Minute)
	token, err := m.GenerateAccessToken("user-1", "")
	require.NoError(t, err)

	_, err = NewJWTManager("other", time.Minute).VerifyToken(token)
	assert.Error(t, err, "wrong secret")

	later := NewJWTManager("secret", time.Minute)
	later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = later.VerifyToken(token)
	assert.Error(t, err, "expired")

	_, err = m.VerifyToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_Adapter(t *testing.T) {
	svc := NewJWTService(NewJWTManager("secret", time.Hour))

	token, err := svc.GenerateAccessToken("user-2", "")
	require.NoError(t, err)
	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-2", claims.UserID)
}

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenManager_AccessTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, time.Hour)

	token, err := manager.GenerateAccessToken(7, "Admin")
	assert.NoError(t, err)

	claims, err := manager.ParseAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "Admin", claims.Role)
}

func TestTokenManager_RefreshTokenNotValidAsAccess(t *testing.T) {
	manager := NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, time.Hour)

	refresh, err := manager.GenerateRefreshToken(7)
	assert.NoError(t, err)

	_, err = manager.ParseAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := manager.ParseRefreshToken(refresh)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
}

func TestTokenManager_ExpiredTokenRejected(t *testing.T) {
	manager := NewTokenManager("access-secret", "refresh-secret", -time.Minute, time.Hour)

	token, err := manager.GenerateAccessToken(7, "Customer")
	assert.NoError(t, err)

	_, err = manager.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_GarbageRejected(t *testing.T) {
	manager := NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, time.Hour)

	_, err := manager.ParseAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, CheckPassword(hash, "secret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

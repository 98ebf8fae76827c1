package auth_test

import (
	"testing"
	"time"

	"taskhub/internal/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	userID := uuid.New().String()

	token, err := auth.GenerateToken(userID, "test-secret-key", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := auth.ParseToken(token, "test-secret-key")
	assert.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := auth.GenerateToken(uuid.New().String(), "test-secret-key", time.Hour)
	assert.NoError(t, err)

	_, err = auth.ParseToken(token, "another-secret")
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := auth.GenerateToken(uuid.New().String(), "test-secret-key", -time.Minute)
	assert.NoError(t, err)

	_, err = auth.ParseToken(token, "test-secret-key")
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := auth.ParseToken("not-a-token", "test-secret-key")
	assert.Error(t, err)
}

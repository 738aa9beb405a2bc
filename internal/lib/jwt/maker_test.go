package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	tokenTTL := 24 * time.Hour
	maker := NewJWTMaker(secretKey, tokenTTL)

	tests := []struct {
		name    string
		userUID string
		email   string
	}{
		{
			name:    "обычный пользователь",
			userUID: "2f1b7a1e-9f0c-4c44-9c36-1a2b3c4d5e6f",
			email:   "user@example.com",
		},
		{
			name:    "другой пользователь",
			userUID: "7c9e6679-7425-40de-944b-e07fc1f90ae7",
			email:   "another@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.userUID, tt.email)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.userUID, claims.UserUID)
			assert.Equal(t, tt.email, claims.Email)
			assert.True(t, claims.ExpiresAt.After(time.Now()))
		})
	}
}

func TestJWTMaker_ParseToken_InvalidCases(t *testing.T) {
	maker := NewJWTMaker("test_secret_key", time.Hour)

	t.Run("мусор вместо токена", func(t *testing.T) {
		_, err := maker.ParseToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("токен с другим ключом", func(t *testing.T) {
		otherMaker := NewJWTMaker("another_secret_key", time.Hour)
		token, err := otherMaker.GenerateToken("uid", "user@example.com")
		require.NoError(t, err)

		_, err = maker.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("истёкший токен", func(t *testing.T) {
		expiredMaker := NewJWTMaker("test_secret_key", -time.Minute)
		token, err := expiredMaker.GenerateToken("uid", "user@example.com")
		require.NoError(t, err)

		_, err = maker.ParseToken(token)
		assert.Error(t, err)
	})
}

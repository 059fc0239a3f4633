package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artfolio/internal/domain/models"
)

func TestNewTokenAndParse(t *testing.T) {
	user := models.User{ID: uuid.New(), Email: "admin@example.com"}

	token, err := NewToken(user, KindAccess, "secret", time.Minute)
	require.NoError(t, err)

	claims, err := Parse(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, KindAccess, claims.Kind)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := Parse(token, "other")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := NewToken(user, KindAccess, "secret", -time.Minute)
		require.NoError(t, err)
		_, err = Parse(expired, "secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := Parse("not-a-token", "secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		other, err := NewToken(user, KindAccess, "secret", time.Minute)
		require.NoError(t, err)
		assert.NotEqual(t, token, other)
	})
}

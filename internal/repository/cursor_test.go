package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/veldrin/ironlog/internal/repository"
)

func TestCursorRoundTrip(t *testing.T) {
	cursor := &repository.Cursor{
		CreatedAt: time.Date(2025, 6, 1, 18, 30, 15, 123456789, time.UTC),
		ID:        uuid.New(),
	}
	token := repository.EncodeCursor(cursor)
	assert.NotEmpty(t, token)
	decoded, err := repository.DecodeCursor(token)
	assert.NoError(t, err)
	assert.True(t, cursor.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, cursor.ID, decoded.ID)
}

func TestDecodeCursor(t *testing.T) {
	t.Run("empty token means first page", func(t *testing.T) {
		cursor, err := repository.DecodeCursor("")
		assert.NoError(t, err)
		assert.Nil(t, cursor)
	})
	t.Run("nil cursor encodes to empty token", func(t *testing.T) {
		assert.Empty(t, repository.EncodeCursor(nil))
	})
	t.Run("garbage token", func(t *testing.T) {
		_, err := repository.DecodeCursor("not-base64!!!")
		assert.Error(t, err)
	})
	t.Run("missing separator", func(t *testing.T) {
		_, err := repository.DecodeCursor("bm8gc2VwYXJhdG9yIGhlcmU=")
		assert.Error(t, err)
	})
}

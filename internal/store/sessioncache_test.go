package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillswaphq/skillswap/internal/model"
)

func TestSessionCache(t *testing.T) {
	assert := assert.New(t)

	cache, err := NewSessionCache()
	assert.Nil(err)
	defer cache.Close()

	var sessionID string

	t.Run("Start and resolve", func(t *testing.T) {
		sessionID, err = cache.Start("user-1")
		assert.Nil(err)
		assert.NotEmpty(sessionID)

		userID, err := cache.Resolve(sessionID)
		assert.Nil(err)
		assert.Equal(model.UserID("user-1"), userID)
	})

	t.Run("Unknown handle", func(t *testing.T) {
		_, err := cache.Resolve("no-such-session")
		assert.ErrorIs(err, model.ErrSessionNotFound)
	})

	t.Run("End discards the handle", func(t *testing.T) {
		assert.Nil(cache.End(sessionID))
		_, err := cache.Resolve(sessionID)
		assert.ErrorIs(err, model.ErrSessionNotFound)

		// ending twice is fine
		assert.Nil(cache.End(sessionID))
	})
}

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheMissWithoutRedis(t *testing.T) {
	RedisClient = nil

	assert.False(t, IsRedisAvailable())

	_, err := GetGames()
	assert.Error(t, err)

	_, err = GetCategories()
	assert.Error(t, err)

	// Invalidation is a no-op rather than a failure when the cache is down
	assert.NoError(t, InvalidateGames())
	assert.NoError(t, InvalidateReviews(1))
}

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glossa-dev/glossa/internal/models"
	"github.com/glossa-dev/glossa/pkg/language"
)

func TestCacheKey(t *testing.T) {
	a := CacheKey("hello world")
	b := CacheKey("hello world")
	c := CacheKey("hello world!")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "glossa:result:")
}

func TestNopCache(t *testing.T) {
	cache := NewNopCache()
	ctx := context.Background()

	_, ok := cache.Get(ctx, "anything")
	assert.False(t, ok)

	cache.Set(ctx, "anything", &models.DetectionResponse{Language: language.English})
	_, ok = cache.Get(ctx, "anything")
	assert.False(t, ok)

	assert.NoError(t, cache.Close())
}

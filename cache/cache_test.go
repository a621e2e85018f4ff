package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wgs/config"
)

func resetCache(capacity int) {
	GlobalObjectCache = &cache{
		objects:  make(map[string]interface{}),
		capacity: capacity,
	}
}

func TestLoadCachesOnFirstCallAndReusesOnSecond(t *testing.T) {
	resetCache(minEntries)
	calls := 0
	loader := func(gc *config.GameConfig, key string) (interface{}, error) {
		calls++
		return key + "-loaded", nil
	}

	v1, err := Load(nil, "dict-a", loader)
	require.NoError(t, err)
	assert.Equal(t, "dict-a-loaded", v1)

	v2, err := Load(nil, "dict-a", loader)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, calls)
}

func TestLoadPropagatesLoaderError(t *testing.T) {
	resetCache(minEntries)
	loader := func(gc *config.GameConfig, key string) (interface{}, error) {
		return nil, fmt.Errorf("boom")
	}

	_, err := Load(nil, "dict-b", loader)
	assert.Error(t, err)
}

func TestPutEvictsOldestEntryWhenAtCapacity(t *testing.T) {
	resetCache(2)

	GlobalObjectCache.put("a", 1)
	GlobalObjectCache.put("b", 2)
	GlobalObjectCache.put("c", 3)

	_, hasA := GlobalObjectCache.objects["a"]
	_, hasB := GlobalObjectCache.objects["b"]
	_, hasC := GlobalObjectCache.objects["c"]

	assert.False(t, hasA, "oldest entry should have been evicted")
	assert.True(t, hasB)
	assert.True(t, hasC)
}

func TestCapacityFromSystemMemoryNeverBelowMinEntries(t *testing.T) {
	assert.GreaterOrEqual(t, capacityFromSystemMemory(), minEntries)
}

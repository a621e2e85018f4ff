// Package cache provides a process-global, mutex-guarded cache for
// large loaded objects - parsed dictionaries and word lists, mainly -
// so that repeated CLI commands or server requests against the same
// game don't re-parse a file from disk every time.
package cache

import (
	"sync"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wgs/config"
)

// minEntries is the floor on how many objects the cache holds
// regardless of how little memory memory.TotalMemory reports (it
// returns 0 on platforms it can't introspect).
const minEntries = 8

// bytesPerEntryEstimate is a conservative guess at the in-memory size
// of one loaded dictionary/word-list, used only to translate available
// system memory into an entry-count budget; it doesn't track actual
// object sizes.
const bytesPerEntryEstimate = 64 * 1024 * 1024

type loadFunc func(gc *config.GameConfig, key string) (interface{}, error)

type cache struct {
	sync.Mutex
	objects  map[string]interface{}
	order    []string
	capacity int
}

// GlobalObjectCache is the process-wide object cache.
var GlobalObjectCache *cache

func capacityFromSystemMemory() int {
	total := memory.TotalMemory()
	if total == 0 {
		return minEntries
	}
	n := int(total / bytesPerEntryEstimate)
	if n < minEntries {
		return minEntries
	}
	return n
}

func (c *cache) load(gc *config.GameConfig, key string, loadFunc loadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(gc, key)
	if err != nil {
		return err
	}
	c.put(key, obj)

	return nil
}

// put stores obj under key, evicting the oldest entry (by insertion
// order) if the cache is at capacity.
func (c *cache) put(key string, obj interface{}) {
	if _, exists := c.objects[key]; !exists {
		for len(c.order) >= c.capacity && len(c.order) > 0 {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.objects, oldest)
			log.Debug().Str("key", oldest).Msg("evicting from cache")
		}
		c.order = append(c.order, key)
	}
	c.objects[key] = obj
}

func (c *cache) get(gc *config.GameConfig, key string, loadFunc loadFunc) (interface{}, error) {
	var ok bool
	var obj interface{}
	c.Lock()
	defer c.Unlock()
	if obj, ok = c.objects[key]; !ok {
		err := c.load(gc, key, loadFunc)
		if err != nil {
			return nil, err
		}
		return c.objects[key], nil
	}
	log.Debug().Str("key", key).Msg("getting obj from cache")

	return obj, nil
}

// CreateGlobalObjectCache (re)initializes the global cache, sizing its
// capacity off available system memory via pbnjay/memory.
func CreateGlobalObjectCache() {
	GlobalObjectCache = &cache{
		objects:  make(map[string]interface{}),
		capacity: capacityFromSystemMemory(),
	}
}

// Load returns the cached object for name, loading it with loadFunc on
// a miss.
func Load(gc *config.GameConfig, name string, loadFunc loadFunc) (interface{}, error) {
	if GlobalObjectCache == nil {
		CreateGlobalObjectCache()
	}
	return GlobalObjectCache.get(gc, name, loadFunc)
}

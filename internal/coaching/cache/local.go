package cache

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

// LocalCache keeps entries in process memory, for single instance setups without redis.
type LocalCache struct {
	cache *freecache.Cache
	now   func() time.Time
}

func NewLocalCache(sizeMB int) *LocalCache {
	if sizeMB <= 0 {
		sizeMB = 50
	}
	return &LocalCache{
		cache: freecache.NewCache(sizeMB * megabyte),
		now:   time.Now,
	}
}

func (c *LocalCache) Get(_ context.Context, key string) (Entry, bool, error) {
	raw, err := c.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		log.Tracef("cache miss in local cache for [%s]", key)
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("local cache get [%s]: %w", key, err)
	}

	entry, err := decode(raw)
	if err != nil {
		return Entry{}, false, err
	}
	if entry.Expired(c.now()) {
		return Entry{}, false, nil
	}
	return entry, true, nil
}

func (c *LocalCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	raw, err := encode(data, expiry(c.now(), ttl))
	if err != nil {
		return err
	}

	// freecache expires in whole seconds, 0 means never
	expireSeconds := 0
	if ttl > 0 {
		expireSeconds = int(math.Max(1, math.Ceil(ttl.Seconds())))
	}
	if err := c.cache.Set([]byte(key), raw, expireSeconds); err != nil {
		return fmt.Errorf("local cache set [%s]: %w", key, err)
	}
	return nil
}

func (c *LocalCache) EntryCount() int64 {
	return c.cache.EntryCount()
}

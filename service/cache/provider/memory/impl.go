package memory

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/base/log"
	"github.com/x-xyz/nftexplorer/service/cache/provider"
)

const defaultCleanupInterval = time.Minute

type impl struct {
	name  string
	cache *gocache.Cache
}

// NewMemory creates an in process cache without a per entry size limit. Expired
// entries are swept every cleanupInterval, <= 0 means every minute.
func NewMemory(name string, cleanupInterval time.Duration) provider.Provider {
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}
	return &impl{name, gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, expireAt, found := im.cache.GetWithExpiration(key)
	if !found {
		return nil, 0, provider.ErrNotFound
	}
	data, ok := val.([]byte)
	if !ok {
		c.WithFields(log.Fields{"key": key, "cache": im.name}).Error("unexpected cache value")
		return nil, 0, provider.ErrNotFound
	}
	if expireAt.IsZero() {
		return data, 0, nil
	}
	return data, time.Until(expireAt), nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	im.cache.Set(key, value, ttl)
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Delete(key)
	return nil
}

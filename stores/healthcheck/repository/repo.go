package repository

import (
	"time"

	"github.com/x-xyz/nftexplorer/base/ctx"
	hcdomain "github.com/x-xyz/nftexplorer/domain/healthcheck"
	"github.com/x-xyz/nftexplorer/domain/keys"
	"github.com/x-xyz/nftexplorer/service/cache/provider"
	"github.com/x-xyz/nftexplorer/service/chain"
)

type impl struct {
	cache provider.Provider
	chain chain.Client
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(
	cache provider.Provider,
	chain chain.Client,
) hcdomain.HealthCheckRepo {
	return &impl{
		cache: cache,
		chain: chain,
	}
}

func (im *impl) PingCache(context ctx.Ctx) error {
	key := keys.CacheKey(keys.PfxHealthCheck, "testset")
	if err := im.cache.Set(context, key, []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test cache set failed")
		return err
	}
	if _, _, err := im.cache.Get(context, key); err != nil {
		context.WithField("err", err).Error("test cache get failed")
		return err
	}
	return nil
}

func (im *impl) ConnectedChains(context ctx.Ctx) []string {
	chains := im.chain.Chains()
	res := make([]string, 0, len(chains))
	for _, c := range chains {
		res = append(res, c.String())
	}
	return res
}

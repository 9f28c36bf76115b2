package ens

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"
	"github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/base/log"
	"github.com/x-xyz/nftexplorer/base/ptr"
	"github.com/x-xyz/nftexplorer/domain"
	"github.com/x-xyz/nftexplorer/domain/keys"
	"github.com/x-xyz/nftexplorer/service/cache"
	"github.com/x-xyz/nftexplorer/service/cache/provider"
)

const defaultTtl = 30 * time.Minute

type resolveFunc func(name string) (common.Address, error)

type reverseResolveFunc func(address common.Address) (string, error)

type impl struct {
	resolve        resolveFunc
	reverseResolve reverseResolveFunc
	cache          cache.Service
}

// New looks names up through backend, which must be connected to ethereum mainnet
func New(backend bind.ContractBackend, p provider.Provider, ttl time.Duration) ENS {
	return newImpl(
		func(name string) (common.Address, error) { return goens.Resolve(backend, name) },
		func(address common.Address) (string, error) { return goens.ReverseResolve(backend, address) },
		p,
		ttl,
	)
}

func newImpl(resolve resolveFunc, reverseResolve reverseResolveFunc, p provider.Provider, ttl time.Duration) *impl {
	if ttl <= 0 {
		ttl = defaultTtl
	}
	return &impl{
		resolve:        resolve,
		reverseResolve: reverseResolve,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   keys.PfxEns,
			Cache: p,
		}),
	}
}

func (im *impl) Resolve(ctx ctx.Ctx, name string) (domain.Address, error) {
	res := domain.Address("")
	key := keys.CacheKey("resolve", name)
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		addr, err := im.resolve(name)
		if fmt.Sprint(err) == "unregistered name" {
			val := domain.Address("")
			return &val, nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"name": name,
				"err":  err,
			}).Error("failed to goens.Resolve")
			return nil, err
		}
		val := domain.Address(addr.Hex())
		return &val, nil
	})

	if err != nil {
		return "", err
	}

	return res, nil
}

func (im *impl) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	res := ""
	key := keys.CacheKey("reverse-resolve", address.ToLowerStr())
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		name, err := im.reverseResolve(common.HexToAddress(address.ToLowerStr()))
		switch fmt.Sprint(err) {
		case "not a resolver", "no resolution":
			return ptr.String(""), nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"address": address,
				"err":     err,
			}).Error("failed to goens.ReverseResolve")
			return nil, err
		}
		return &name, nil
	})

	if err != nil {
		return "", err
	}

	return res, nil
}

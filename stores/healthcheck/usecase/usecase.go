package usecase

import (
	"github.com/x-xyz/nftexplorer/base/ctx"
	hcdomain "github.com/x-xyz/nftexplorer/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

// Check fails only on the session cache; a missing chain shows as absent from Chains
func (im *impl) Check(context ctx.Ctx) (*hcdomain.Status, error) {
	if err := im.repo.PingCache(context); err != nil {
		return nil, err
	}
	return &hcdomain.Status{
		Healthy: "ok",
		Chains:  im.repo.ConnectedChains(context),
	}, nil
}

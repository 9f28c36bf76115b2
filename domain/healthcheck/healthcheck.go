package healthcheck

import (
	"github.com/x-xyz/nftexplorer/base/ctx"
)

type Status struct {
	Healthy string   `json:"healthy"`
	Chains  []string `json:"chains"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) (*Status, error)
}

// HealthCheckRepo checks the session cache and the chain connections
type HealthCheckRepo interface {
	PingCache(context ctx.Ctx) error
	ConnectedChains(context ctx.Ctx) []string
}

package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/domain"
	"github.com/x-xyz/nftexplorer/service/cache/provider/primitive"
	chainmocks "github.com/x-xyz/nftexplorer/service/chain/mocks"
	"github.com/x-xyz/nftexplorer/stores/healthcheck/repository"
)

func TestCheck(t *testing.T) {
	chain := chainmocks.NewClient(t)
	chain.On("Chains").Return([]domain.ChainId{"1", "137"}).Once()

	im := New(repository.New(primitive.NewPrimitive("health", 1), chain))
	status, err := im.Check(ctx.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", status.Healthy)
	require.Equal(t, []string{"1", "137"}, status.Chains)
}

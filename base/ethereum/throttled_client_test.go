package ethereum

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/nftexplorer/domain/mocks"
)

func TestThrottledClient_BalanceAt(t *testing.T) {
	req := require.New(t)
	m := mocks.NewEthClientRepo(t)
	addr := common.HexToAddress("0x94EaD797046c7b654cab82C1c27ad223b6501f1f")
	m.On("BalanceAt", mock.Anything, addr, (*big.Int)(nil)).Return(big.NewInt(10), nil).Twice()

	c := NewThrottledClient(m, 1)
	for i := 0; i < 2; i++ {
		b, err := c.BalanceAt(context.Background(), addr, nil)
		req.NoError(err)
		req.Equal(int64(10), b.Int64())
	}
	req.Len(c.tokens, 1)
}

func TestThrottledClient_CtxDoneWhileWaiting(t *testing.T) {
	req := require.New(t)
	m := mocks.NewEthClientRepo(t)
	c := NewThrottledClient(m, 1)
	<-c.tokens // exhaust

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := c.BalanceAt(ctx, common.Address{}, nil)
	req.ErrorIs(err, context.DeadlineExceeded)
	m.AssertNotCalled(t, "BalanceAt", mock.Anything, mock.Anything, mock.Anything)
}

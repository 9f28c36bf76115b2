package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	baseabi "github.com/x-xyz/nftexplorer/base/abi"
	bCtx "github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/domain"
	"github.com/x-xyz/nftexplorer/service/chain"
)

type Erc20Contract interface {
	Symbol(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (string, error)
	Decimals(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (uint8, error)
	BalanceOf(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, owner domain.Address) (*big.Int, error)
}

type Erc20 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc20(chainService chain.Client) *Erc20 {
	return &Erc20{
		abi:          baseabi.ERC20TokenABI,
		chainService: chainService,
	}
}

func (e *Erc20) Symbol(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (string, error) {
	return callString(ctx, e.chainService, chainId, addr, e.abi, "symbol")
}

func (e *Erc20) Decimals(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (uint8, error) {
	method := "decimals"
	unpacked, err := e.chainService.Call(ctx, chainId, toAddress(addr), e.abi, method)
	if err != nil {
		return 0, err
	}
	v, err := first(method, unpacked)
	if err != nil {
		return 0, err
	}
	decimals, ok := v.(uint8)
	if !ok {
		return 0, unexpected(method, v)
	}
	return decimals, nil
}

func (e *Erc20) BalanceOf(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, owner domain.Address) (*big.Int, error) {
	return callBigInt(ctx, e.chainService, chainId, addr, e.abi, "balanceOf", toAddress(owner))
}

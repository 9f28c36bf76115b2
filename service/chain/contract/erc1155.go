package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	baseabi "github.com/x-xyz/nftexplorer/base/abi"
	bCtx "github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/domain"
	"github.com/x-xyz/nftexplorer/service/chain"
)

type Erc1155Contract interface {
	BalanceOf(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, owner domain.Address, id *big.Int) (*big.Int, error)
	Uri(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, id *big.Int) (string, error)
}

type Erc1155 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc1155(chainService chain.Client) *Erc1155 {
	return &Erc1155{
		abi:          baseabi.ERC1155TokenABI,
		chainService: chainService,
	}
}

func (e *Erc1155) BalanceOf(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, owner domain.Address, id *big.Int) (*big.Int, error) {
	return callBigInt(ctx, e.chainService, chainId, addr, e.abi, "balanceOf", toAddress(owner), id)
}

func (e *Erc1155) Uri(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, id *big.Int) (string, error) {
	return callString(ctx, e.chainService, chainId, addr, e.abi, "uri", id)
}

package contract

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	baseabi "github.com/x-xyz/nftexplorer/base/abi"
	bCtx "github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/domain"
	"github.com/x-xyz/nftexplorer/service/chain"
)

type Erc165Contract interface {
	SupportsInterface(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, interfaceId [4]byte) (bool, error)
}

type Erc165 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc165(chainService chain.Client) *Erc165 {
	return &Erc165{
		abi:          baseabi.ERC165ABI,
		chainService: chainService,
	}
}

func (e *Erc165) SupportsInterface(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, interfaceId [4]byte) (bool, error) {
	method := "supportsInterface"
	unpacked, err := e.chainService.Call(ctx, chainId, toAddress(addr), e.abi, method, interfaceId)
	if err != nil {
		return false, err
	}
	v, err := first(method, unpacked)
	if err != nil {
		return false, err
	}
	supported, ok := v.(bool)
	if !ok {
		return false, unexpected(method, v)
	}
	return supported, nil
}

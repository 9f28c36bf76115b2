package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/x-xyz/nftexplorer/base/abi"
	bCtx "github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/domain"
	"github.com/x-xyz/nftexplorer/service/chain"
)

type Erc721Contract interface {
	Symbol(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (string, error)
	OwnerOf(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId *big.Int) (domain.Address, error)
	TokenURI(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId *big.Int) (string, error)
}

type Erc721 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc721(chainService chain.Client) *Erc721 {
	return &Erc721{
		abi:          baseabi.ERC721TokenABI,
		chainService: chainService,
	}
}

func (e *Erc721) Symbol(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (string, error) {
	return callString(ctx, e.chainService, chainId, addr, e.abi, "symbol")
}

func (e *Erc721) OwnerOf(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId *big.Int) (domain.Address, error) {
	method := "ownerOf"
	unpacked, err := e.chainService.Call(ctx, chainId, toAddress(addr), e.abi, method, tokenId)
	if err != nil {
		return "", err
	}
	v, err := first(method, unpacked)
	if err != nil {
		return "", err
	}
	owner, ok := v.(common.Address)
	if !ok {
		return "", unexpected(method, v)
	}
	return domain.Address(owner.Hex()), nil
}

func (e *Erc721) TokenURI(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId *big.Int) (string, error) {
	return callString(ctx, e.chainService, chainId, addr, e.abi, "tokenURI", tokenId)
}

func callString(ctx bCtx.Ctx, chainService chain.Client, chainId domain.ChainId, addr domain.Address, _abi ethabi.ABI, method string, params ...interface{}) (string, error) {
	unpacked, err := chainService.Call(ctx, chainId, toAddress(addr), _abi, method, params...)
	if err != nil {
		return "", err
	}
	v, err := first(method, unpacked)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", unexpected(method, v)
	}
	return s, nil
}

func callBigInt(ctx bCtx.Ctx, chainService chain.Client, chainId domain.ChainId, addr domain.Address, _abi ethabi.ABI, method string, params ...interface{}) (*big.Int, error) {
	unpacked, err := chainService.Call(ctx, chainId, toAddress(addr), _abi, method, params...)
	if err != nil {
		return nil, err
	}
	v, err := first(method, unpacked)
	if err != nil {
		return nil, err
	}
	n, ok := v.(*big.Int)
	if !ok {
		return nil, unexpected(method, v)
	}
	return n, nil
}

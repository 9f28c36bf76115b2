package domain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// EthClientRepo is the read-only subset of go-ethereum/ethclient the inspector uses
type EthClientRepo interface {
	CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error)
	BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error)
}

package chain

import (
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/x-xyz/nftexplorer/base/ctx"
	bEthereum "github.com/x-xyz/nftexplorer/base/ethereum"
	"github.com/x-xyz/nftexplorer/base/log"
	"github.com/x-xyz/nftexplorer/domain"
)

var ErrUnsupportedChain = domain.ErrUnsupportedChain

type NetworkCfg struct {
	RpcUrl string
	// MaxConcurrency > 0 bounds in-flight calls to the node
	MaxConcurrency int
}

type ClientCfg struct {
	Networks map[domain.ChainId]NetworkCfg
}

// Client is the read-only chain connection, one rpc node per chain id
type Client interface {
	Call(bCtx.Ctx, domain.ChainId, common.Address, abi.ABI, string, ...interface{}) ([]interface{}, error)
	BalanceAt(bCtx.Ctx, domain.ChainId, common.Address) (*big.Int, error)
	Chains() []domain.ChainId
}

type clientImpl struct {
	clients map[domain.ChainId]domain.EthClientRepo
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	clients := make(map[domain.ChainId]domain.EthClientRepo)
	for chainId, network := range cfg.Networks {
		client, err := ethclient.DialContext(ctx, network.RpcUrl)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     network.RpcUrl,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		if network.MaxConcurrency > 0 {
			clients[chainId] = bEthereum.NewThrottledClient(client, network.MaxConcurrency)
			continue
		}
		clients[chainId] = client
	}
	return NewClientWithRepos(clients), anyerr
}

// NewClientWithRepos builds a Client on already connected repos
func NewClientWithRepos(clients map[domain.ChainId]domain.EthClientRepo) Client {
	return &clientImpl{clients: clients}
}

func (c *clientImpl) Chains() []domain.ChainId {
	res := make([]domain.ChainId, 0, len(c.clients))
	for chainId := range c.clients {
		res = append(res, chainId)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"to":     addr.Hex(),
			"err":    err,
		}).Warn("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"to":     addr.Hex(),
			"err":    err,
		}).Warn("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) BalanceAt(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address) (*big.Int, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	balance, err := client.BalanceAt(ctx, addr, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"account": addr.Hex(),
			"err":     err,
		}).Warn("client.BalanceAt failed")
		return nil, err
	}
	return balance, nil
}

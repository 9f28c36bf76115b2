package chain

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	baseabi "github.com/x-xyz/nftexplorer/base/abi"
	bCtx "github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/domain"
	"github.com/x-xyz/nftexplorer/domain/mocks"
)

type clientTestSuite struct {
	suite.Suite
	ctx  bCtx.Ctx
	repo *mocks.EthClientRepo
	im   Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(clientTestSuite))
}

func (s *clientTestSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.repo = mocks.NewEthClientRepo(s.T())
	s.im = NewClientWithRepos(map[domain.ChainId]domain.EthClientRepo{"1": s.repo})
}

func (s *clientTestSuite) TestCall() {
	contract := common.HexToAddress("0x0000000000000000000000000000000000000abc")
	out, err := baseabi.ERC165ABI.Methods["supportsInterface"].Outputs.Pack(true)
	s.Require().NoError(err)
	input, err := baseabi.ERC165ABI.Pack("supportsInterface", baseabi.InterfaceIdErc721)
	s.Require().NoError(err)

	s.repo.On("CallContract", mock.Anything, ethereum.CallMsg{To: &contract, Data: input}, (*big.Int)(nil)).Return(out, nil).Once()

	res, err := s.im.Call(s.ctx, "1", contract, baseabi.ERC165ABI, "supportsInterface", baseabi.InterfaceIdErc721)
	s.Require().NoError(err)
	s.Require().Equal([]interface{}{true}, res)
}

func (s *clientTestSuite) TestCallError() {
	contract := common.HexToAddress("0x0000000000000000000000000000000000000abc")
	s.repo.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("execution reverted")).Once()

	_, err := s.im.Call(s.ctx, "1", contract, baseabi.ERC165ABI, "supportsInterface", baseabi.InterfaceIdErc721)
	s.Require().EqualError(err, "execution reverted")
}

func (s *clientTestSuite) TestCallEmptyResult() {
	contract := common.HexToAddress("0x0000000000000000000000000000000000000abc")
	s.repo.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return([]byte{}, nil).Once()

	_, err := s.im.Call(s.ctx, "1", contract, baseabi.ERC165ABI, "supportsInterface", baseabi.InterfaceIdErc721)
	s.Require().Error(err)
}

func (s *clientTestSuite) TestUnsupportedChain() {
	_, err := s.im.Call(s.ctx, "5", common.Address{}, baseabi.ERC165ABI, "supportsInterface", baseabi.InterfaceIdErc721)
	s.Require().ErrorIs(err, ErrUnsupportedChain)

	_, err = s.im.BalanceAt(s.ctx, "5", common.Address{})
	s.Require().ErrorIs(err, ErrUnsupportedChain)
}

func (s *clientTestSuite) TestBalanceAt() {
	account := common.HexToAddress("0x0000000000000000000000000000000000000001")
	s.repo.On("BalanceAt", mock.Anything, account, (*big.Int)(nil)).Return(big.NewInt(42), nil).Once()

	balance, err := s.im.BalanceAt(s.ctx, "1", account)
	s.Require().NoError(err)
	s.Require().Equal(int64(42), balance.Int64())
}

func (s *clientTestSuite) TestChains() {
	im := NewClientWithRepos(map[domain.ChainId]domain.EthClientRepo{"5": s.repo, "1": s.repo, "137": s.repo})
	s.Require().Equal([]domain.ChainId{"1", "137", "5"}, im.Chains())
}

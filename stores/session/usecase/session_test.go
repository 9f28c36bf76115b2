package usecase

import (
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	bCtx "github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/base/ptr"
	"github.com/x-xyz/nftexplorer/domain"
	"github.com/x-xyz/nftexplorer/domain/keys"
	domainmocks "github.com/x-xyz/nftexplorer/domain/mocks"
	"github.com/x-xyz/nftexplorer/service/cache"
	"github.com/x-xyz/nftexplorer/service/cache/provider/memory"
	chainmocks "github.com/x-xyz/nftexplorer/service/chain/mocks"
	contractmocks "github.com/x-xyz/nftexplorer/service/chain/contract/mocks"
	ensmocks "github.com/x-xyz/nftexplorer/service/ens/mocks"
	networkUsecase "github.com/x-xyz/nftexplorer/stores/network/usecase"
	sessionRepository "github.com/x-xyz/nftexplorer/stores/session/repository"
)

const (
	selected = domain.Address("0x00000000000000000000000000000000000000cc")
	contract = domain.Address("0x00000000000000000000000000000000000000aa")
	usdt     = domain.Address("0xdAC17F958D2ee523a2206206994597C13D831ec7")
)

var (
	mainnet = &domain.WalletConnection{ChainId: "1", SelectedAddress: selected}
	query   = domain.NFTQuery{ContractAddress: contract, TokenId: "7"}
)

type sessionTestSuite struct {
	suite.Suite
	ctx      bCtx.Ctx
	detector *domainmocks.NFTDetectorUseCase
	resolver *domainmocks.NFTResolverUseCase
	chain    *chainmocks.Client
	erc20    *contractmocks.Erc20Contract
	ens      *ensmocks.ENS
	im       domain.SessionUseCase
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(sessionTestSuite))
}

func (s *sessionTestSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.detector = domainmocks.NewNFTDetectorUseCase(s.T())
	s.resolver = domainmocks.NewNFTResolverUseCase(s.T())
	s.chain = chainmocks.NewClient(s.T())
	s.erc20 = contractmocks.NewErc20Contract(s.T())
	s.ens = ensmocks.NewENS(s.T())
	s.im = NewSessionUseCase(&SessionUseCaseCfg{
		Repo: sessionRepository.New(cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxSession,
			Cache: memory.NewMemory("session", time.Minute),
		})),
		Network:  networkUsecase.NewNetworkUseCase(),
		Detector: s.detector,
		Resolver: s.resolver,
		Chain:    s.chain,
		Erc20:    s.erc20,
		Ens:      s.ens,
	})
}

func (s *sessionTestSuite) create() string {
	session, err := s.im.Create(s.ctx)
	s.Require().NoError(err)
	return session.Id
}

func (s *sessionTestSuite) connect(id string) {
	s.ens.On("ReverseResolve", mock.Anything, selected).Return("", nil).Once()
	_, err := s.im.Connect(s.ctx, id, mainnet)
	s.Require().NoError(err)
}

func (s *sessionTestSuite) TestCreate() {
	session, err := s.im.Create(s.ctx)
	s.Require().NoError(err)
	s.NotEmpty(session.Id)
	s.Equal(domain.WalletStatusNotConnected, session.Status)

	got, err := s.im.Get(s.ctx, session.Id)
	s.Require().NoError(err)
	s.Equal(session.Id, got.Id)

	s.Require().NoError(s.im.Delete(s.ctx, session.Id))
	_, err = s.im.Get(s.ctx, session.Id)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *sessionTestSuite) TestConnect() {
	id := s.create()
	s.ens.On("ReverseResolve", mock.Anything, selected).Return("cc.eth", nil).Once()

	session, err := s.im.Connect(s.ctx, id, mainnet)
	s.Require().NoError(err)
	s.Equal(domain.WalletStatusConnected, session.Status)
	s.Equal(mainnet, session.Wallet)
	s.Equal(ptr.String("cc.eth"), session.WalletName)
	s.Equal("Ethereum Mainnet", session.Network.DisplayName)
}

func (s *sessionTestSuite) TestConnectUnknownNetwork() {
	id := s.create()
	s.ens.On("ReverseResolve", mock.Anything, selected).Return("", errors.New("connection refused")).Once()

	session, err := s.im.Connect(s.ctx, id, &domain.WalletConnection{ChainId: "56", SelectedAddress: selected})
	s.Require().NoError(err)
	s.Equal(domain.WalletStatusConnected, session.Status)
	s.Nil(session.WalletName)
	s.Equal("unknown network [56]", session.Network.DisplayName)
	s.Equal("???", session.Network.NativeSymbol)
}

func (s *sessionTestSuite) TestConnectNotInstalled() {
	id := s.create()
	s.connect(id)

	session, err := s.im.Connect(s.ctx, id, nil)
	s.Require().NoError(err)
	s.Equal(domain.WalletStatusNotInstalled, session.Status)
	s.Nil(session.Wallet)

	_, err = s.im.CheckBalances(s.ctx, id)
	s.ErrorIs(err, domain.ErrNotInstalled)
}

func (s *sessionTestSuite) TestConnectNoAccount() {
	id := s.create()

	session, err := s.im.Connect(s.ctx, id, &domain.WalletConnection{ChainId: "1"})
	s.Require().NoError(err)
	s.Equal(domain.WalletStatusNotConnected, session.Status)
	s.Nil(session.Wallet)
}

func (s *sessionTestSuite) TestNotConnected() {
	id := s.create()

	_, err := s.im.CheckBalances(s.ctx, id)
	s.ErrorIs(err, domain.ErrNotConnected)

	_, err = s.im.SetQuery(s.ctx, id, query)
	s.Require().NoError(err)

	_, err = s.im.CheckNFT(s.ctx, id)
	s.ErrorIs(err, domain.ErrNotConnected)

	session, err := s.im.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.NFTSnapshot{}, session.Snapshot)
}

func (s *sessionTestSuite) TestCheckBalances() {
	id := s.create()
	s.connect(id)

	wei, _ := new(big.Int).SetString("1500000000000000000", 10)
	s.chain.On("BalanceAt", mock.Anything, domain.ChainId("1"), common.HexToAddress(selected.ToLowerStr())).Return(wei, nil).Once()
	s.erc20.On("Symbol", mock.Anything, domain.ChainId("1"), usdt).Return("USDT", nil).Once()
	s.erc20.On("Decimals", mock.Anything, domain.ChainId("1"), usdt).Return(uint8(6), nil).Once()
	s.erc20.On("BalanceOf", mock.Anything, domain.ChainId("1"), usdt, selected).Return(big.NewInt(2000000), nil).Once()

	session, err := s.im.CheckBalances(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.WalletBalances{
		NativeSymbol:  "ETH",
		NativeBalance: ptr.String("1.5"),
		TokenSymbol:   ptr.String("USDT"),
		TokenBalance:  ptr.String("2.0"),
	}, session.Balances)
}

func (s *sessionTestSuite) TestCheckBalancesPartial() {
	id := s.create()
	s.connect(id)

	s.chain.On("BalanceAt", mock.Anything, domain.ChainId("1"), mock.Anything).Return(big.NewInt(0), nil).Once()
	s.erc20.On("Symbol", mock.Anything, domain.ChainId("1"), usdt).Return("", errors.New("execution reverted")).Once()

	session, err := s.im.CheckBalances(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(ptr.String("0.0"), session.Balances.NativeBalance)
	s.Nil(session.Balances.TokenSymbol)
	s.Nil(session.Balances.TokenBalance)
}

func (s *sessionTestSuite) TestCheckBalancesUnknownNetwork() {
	id := s.create()
	s.ens.On("ReverseResolve", mock.Anything, selected).Return("", nil).Once()
	_, err := s.im.Connect(s.ctx, id, &domain.WalletConnection{ChainId: "56", SelectedAddress: selected})
	s.Require().NoError(err)

	s.chain.On("BalanceAt", mock.Anything, domain.ChainId("56"), mock.Anything).Return(nil, domain.ErrUnsupportedChain).Once()

	session, err := s.im.CheckBalances(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("???", session.Balances.NativeSymbol)
	s.Nil(session.Balances.NativeBalance)
}

func (s *sessionTestSuite) TestSetQuery() {
	id := s.create()

	_, err := s.im.SetQuery(s.ctx, id, domain.NFTQuery{ContractAddress: contract})
	s.ErrorIs(err, domain.ErrEmptyQuery)
	_, err = s.im.SetQuery(s.ctx, id, domain.NFTQuery{TokenId: "1"})
	s.ErrorIs(err, domain.ErrEmptyQuery)

	session, err := s.im.SetQuery(s.ctx, id, query)
	s.Require().NoError(err)
	s.Equal(query, session.Query)
}

func (s *sessionTestSuite) TestCheckAndDisplay() {
	id := s.create()
	s.connect(id)
	_, err := s.im.SetQuery(s.ctx, id, query)
	s.Require().NoError(err)

	owner := domain.Address("0x00000000000000000000000000000000000000bb")
	s.detector.On("Probe", mock.Anything, domain.ChainId("1"), contract).Return(domain.TokenStandardErc721).Once()
	s.resolver.On("CheckNFT", mock.Anything, *mainnet, query, domain.TokenStandardErc721).Return(domain.NFTSnapshot{
		Standard:     domain.TokenStandardErc721,
		Symbol:       ptr.String("CAT"),
		OwnerAddress: &owner,
		MetadataURI:  ptr.String("ipfs://X"),
	}, nil).Once()

	session, err := s.im.CheckNFT(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.TokenStandardErc721, session.Snapshot.Standard)
	s.Equal(ptr.String("CAT"), session.Snapshot.Symbol)

	s.resolver.On("DisplayNFT", mock.Anything, ptr.String("ipfs://X")).Return(domain.NFTMetadataView{
		Description: ptr.String("A cat"),
		ImageURI:    ptr.String("https://ipfs.io/ipfs/Y"),
	}, nil).Once()

	session, err = s.im.DisplayNFT(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(ptr.String("A cat"), session.Snapshot.Description)
	s.Equal(ptr.String("https://ipfs.io/ipfs/Y"), session.Snapshot.ImageURI)

	// a failed fetch keeps what is shown
	s.resolver.On("DisplayNFT", mock.Anything, ptr.String("ipfs://X")).Return(domain.NFTMetadataView{}, domain.ErrInvalidJsonFormat).Once()

	session, err = s.im.DisplayNFT(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(ptr.String("A cat"), session.Snapshot.Description)
	s.Equal(ptr.String("https://ipfs.io/ipfs/Y"), session.Snapshot.ImageURI)
}

func (s *sessionTestSuite) TestCheckAndDisplayOnChainDocument() {
	id := s.create()
	s.connect(id)
	_, err := s.im.SetQuery(s.ctx, id, query)
	s.Require().NoError(err)

	tokenURI := "data:application/json;base64," + strings.Repeat("e", 24<<10)
	image := "data:image/svg+xml;base64," + strings.Repeat("P", 64<<10)
	s.detector.On("Probe", mock.Anything, domain.ChainId("1"), contract).Return(domain.TokenStandardErc721).Once()
	s.resolver.On("CheckNFT", mock.Anything, *mainnet, query, domain.TokenStandardErc721).Return(domain.NFTSnapshot{
		Standard:    domain.TokenStandardErc721,
		Symbol:      ptr.String("SVG"),
		MetadataURI: &tokenURI,
	}, nil).Once()

	session, err := s.im.CheckNFT(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(ptr.String("SVG"), session.Snapshot.Symbol)
	s.Equal(&tokenURI, session.Snapshot.MetadataURI)

	s.resolver.On("DisplayNFT", mock.Anything, &tokenURI).Return(domain.NFTMetadataView{
		Description: ptr.String("on chain"),
		ImageURI:    &image,
	}, nil).Once()

	_, err = s.im.DisplayNFT(s.ctx, id)
	s.Require().NoError(err)

	session, err = s.im.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(&tokenURI, session.Snapshot.MetadataURI)
	s.Equal(&image, session.Snapshot.ImageURI)
}

func (s *sessionTestSuite) TestCheckPartialMerge() {
	id := s.create()
	s.connect(id)
	_, err := s.im.SetQuery(s.ctx, id, query)
	s.Require().NoError(err)

	s.detector.On("Probe", mock.Anything, domain.ChainId("1"), contract).Return(domain.TokenStandardErc721).Twice()
	s.resolver.On("CheckNFT", mock.Anything, *mainnet, query, domain.TokenStandardErc721).Return(domain.NFTSnapshot{
		Standard:    domain.TokenStandardErc721,
		Symbol:      ptr.String("CAT"),
		MetadataURI: ptr.String("ipfs://X"),
	}, nil).Once()
	_, err = s.im.CheckNFT(s.ctx, id)
	s.Require().NoError(err)

	s.resolver.On("CheckNFT", mock.Anything, *mainnet, query, domain.TokenStandardErc721).Return(domain.NFTSnapshot{
		Standard: domain.TokenStandardErc721,
		Symbol:   ptr.String("CAT2"),
	}, errors.New("execution reverted")).Once()

	session, err := s.im.CheckNFT(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(ptr.String("CAT2"), session.Snapshot.Symbol)
	s.Equal(ptr.String("ipfs://X"), session.Snapshot.MetadataURI)
}

func (s *sessionTestSuite) TestCheckUnknownKeepsFields() {
	id := s.create()
	s.connect(id)
	_, err := s.im.SetQuery(s.ctx, id, query)
	s.Require().NoError(err)

	s.detector.On("Probe", mock.Anything, domain.ChainId("1"), contract).Return(domain.TokenStandardUnknown).Once()
	s.resolver.On("CheckNFT", mock.Anything, *mainnet, query, domain.TokenStandardUnknown).Return(domain.NFTSnapshot{Standard: domain.TokenStandardUnknown}, nil).Once()

	session, err := s.im.CheckNFT(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.NFTSnapshot{Standard: domain.TokenStandardUnknown}, session.Snapshot)
}

func (s *sessionTestSuite) TestQueryChangeResetsSnapshot() {
	id := s.create()
	s.connect(id)
	_, err := s.im.SetQuery(s.ctx, id, query)
	s.Require().NoError(err)

	s.detector.On("Probe", mock.Anything, domain.ChainId("1"), contract).Return(domain.TokenStandardErc1155).Once()
	s.resolver.On("CheckNFT", mock.Anything, *mainnet, query, domain.TokenStandardErc1155).Return(domain.NFTSnapshot{
		Standard: domain.TokenStandardErc1155,
		Balance:  ptr.String("3"),
	}, nil).Once()
	_, err = s.im.CheckNFT(s.ctx, id)
	s.Require().NoError(err)

	// same query keeps the snapshot
	session, err := s.im.SetQuery(s.ctx, id, query)
	s.Require().NoError(err)
	s.Equal(ptr.String("3"), session.Snapshot.Balance)

	session, err = s.im.SetQuery(s.ctx, id, domain.NFTQuery{ContractAddress: contract, TokenId: "8"})
	s.Require().NoError(err)
	s.Equal(domain.NFTSnapshot{}, session.Snapshot)
}

func (s *sessionTestSuite) TestDisplayWithoutURI() {
	id := s.create()

	s.resolver.On("DisplayNFT", mock.Anything, (*string)(nil)).Return(domain.NFTMetadataView{}, domain.ErrNoMetadataURI).Once()

	session, err := s.im.DisplayNFT(s.ctx, id)
	s.Require().NoError(err)
	s.Nil(session.Snapshot.Description)
}

func (s *sessionTestSuite) TestMissingSession() {
	_, err := s.im.Connect(s.ctx, "missing", nil)
	s.ErrorIs(err, domain.ErrNotFound)
	_, err = s.im.CheckNFT(s.ctx, "missing")
	s.ErrorIs(err, domain.ErrNotFound)
	_, err = s.im.DisplayNFT(s.ctx, "missing")
	s.ErrorIs(err, domain.ErrNotFound)
}

package usecase

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	bCtx "github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/base/log"
	unitformatter "github.com/x-xyz/nftexplorer/base/unit_formatter"
	"github.com/x-xyz/nftexplorer/domain"
	"github.com/x-xyz/nftexplorer/service/chain"
	chainservice "github.com/x-xyz/nftexplorer/service/chain/contract"
	"github.com/x-xyz/nftexplorer/service/ens"
)

type SessionUseCaseCfg struct {
	Repo     domain.SessionRepo
	Network  domain.NetworkUseCase
	Detector domain.NFTDetectorUseCase
	Resolver domain.NFTResolverUseCase
	Chain    chain.Client
	Erc20    chainservice.Erc20Contract
	// Ens is optional, wallet names are skipped without it
	Ens ens.ENS
	// ChainTimeout bounds the chain reads of one operation, <= 0 means no timeout
	ChainTimeout time.Duration
	// FetchTimeout bounds the metadata fetch, <= 0 means no timeout
	FetchTimeout time.Duration
}

type impl struct {
	repo         domain.SessionRepo
	network      domain.NetworkUseCase
	detector     domain.NFTDetectorUseCase
	resolver     domain.NFTResolverUseCase
	chain        chain.Client
	erc20        chainservice.Erc20Contract
	ens          ens.ENS
	chainTimeout time.Duration
	fetchTimeout time.Duration
}

func NewSessionUseCase(cfg *SessionUseCaseCfg) domain.SessionUseCase {
	return &impl{
		repo:         cfg.Repo,
		network:      cfg.Network,
		detector:     cfg.Detector,
		resolver:     cfg.Resolver,
		chain:        cfg.Chain,
		erc20:        cfg.Erc20,
		ens:          cfg.Ens,
		chainTimeout: cfg.ChainTimeout,
		fetchTimeout: cfg.FetchTimeout,
	}
}

func (im *impl) Create(ctx bCtx.Ctx) (*domain.Session, error) {
	s := &domain.Session{
		Id:     uuid.NewString(),
		Status: domain.WalletStatusNotConnected,
	}
	if err := im.repo.Create(ctx, s); err != nil {
		ctx.WithField("err", err).Error("repo.Create failed")
		return nil, err
	}
	return s, nil
}

func (im *impl) Get(ctx bCtx.Ctx, id string) (*domain.Session, error) {
	return im.repo.FindOne(ctx, id)
}

func (im *impl) Delete(ctx bCtx.Ctx, id string) error {
	return im.repo.Delete(ctx, id)
}

func (im *impl) Connect(ctx bCtx.Ctx, id string, wallet *domain.WalletConnection) (*domain.Session, error) {
	if wallet == nil {
		return im.repo.Update(ctx, id, func(s *domain.Session) {
			s.Status = domain.WalletStatusNotInstalled
			s.Wallet = nil
			s.WalletName = nil
			s.Network = domain.ChainProfile{}
			s.Balances = domain.WalletBalances{}
		})
	}

	if wallet.SelectedAddress.IsEmpty() {
		// installed, but no account exposed to us
		return im.repo.Update(ctx, id, func(s *domain.Session) {
			s.Status = domain.WalletStatusNotConnected
			s.Wallet = nil
			s.WalletName = nil
			s.Network = im.network.Resolve(wallet.ChainId)
			s.Balances = domain.WalletBalances{}
		})
	}

	conn := *wallet
	profile := im.network.Resolve(conn.ChainId)
	name := im.walletName(ctx, conn.SelectedAddress)

	return im.repo.Update(ctx, id, func(s *domain.Session) {
		if s.Wallet == nil || *s.Wallet != conn {
			s.Balances = domain.WalletBalances{}
		}
		s.Status = domain.WalletStatusConnected
		s.Wallet = &conn
		s.WalletName = name
		s.Network = profile
	})
}

func (im *impl) walletName(ctx bCtx.Ctx, address domain.Address) *string {
	if im.ens == nil {
		return nil
	}
	name, err := im.ens.ReverseResolve(ctx, address)
	if err != nil {
		ctx.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Warn("ens.ReverseResolve failed")
		return nil
	}
	if len(name) == 0 {
		return nil
	}
	return &name
}

// connected loads the session and fails with the wallet status unless it is connected
func (im *impl) connected(ctx bCtx.Ctx, id string) (*domain.Session, *domain.WalletConnection, error) {
	s, err := im.repo.FindOne(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	wallet, err := s.Connected()
	if err != nil {
		ctx.WithFields(log.Fields{
			"session": id,
			"status":  s.Status,
		}).Warn("wallet not connected")
		return nil, nil, err
	}
	return s, wallet, nil
}

func (im *impl) CheckBalances(c bCtx.Ctx, id string) (*domain.Session, error) {
	s, wallet, err := im.connected(c, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := bCtx.WithTimeout(c, im.chainTimeout)
	defer cancel()

	balances := im.readBalances(ctx, *wallet, s.Network)

	return im.repo.Update(c, id, func(s *domain.Session) {
		s.Balances = balances
	})
}

// readBalances stops at the first failed read and keeps what it read before
func (im *impl) readBalances(ctx bCtx.Ctx, wallet domain.WalletConnection, network domain.ChainProfile) domain.WalletBalances {
	balances := domain.WalletBalances{NativeSymbol: network.NativeSymbol}
	logger := ctx.WithFields(log.Fields{
		"chainId": wallet.ChainId,
		"account": wallet.SelectedAddress,
	})

	native, err := im.chain.BalanceAt(ctx, wallet.ChainId, common.HexToAddress(wallet.SelectedAddress.ToLowerStr()))
	if err != nil {
		logger.WithField("err", err).Error("chain.BalanceAt failed")
		return balances
	}
	nativeBalance := unitformatter.FormatEther(native)
	balances.NativeBalance = &nativeBalance

	if !network.IsKnown() {
		return balances
	}
	token := *network.ReferenceTokenAddress
	logger = logger.WithField("token", token)

	symbol, err := im.erc20.Symbol(ctx, wallet.ChainId, token)
	if err != nil {
		logger.WithField("err", err).Error("erc20.Symbol failed")
		return balances
	}
	balances.TokenSymbol = &symbol

	decimals, err := im.erc20.Decimals(ctx, wallet.ChainId, token)
	if err != nil {
		logger.WithField("err", err).Error("erc20.Decimals failed")
		return balances
	}

	balance, err := im.erc20.BalanceOf(ctx, wallet.ChainId, token, wallet.SelectedAddress)
	if err != nil {
		logger.WithField("err", err).Error("erc20.BalanceOf failed")
		return balances
	}
	tokenBalance := unitformatter.FormatUnits(balance, int32(decimals))
	balances.TokenBalance = &tokenBalance
	return balances
}

func (im *impl) SetQuery(ctx bCtx.Ctx, id string, query domain.NFTQuery) (*domain.Session, error) {
	if query.IsEmpty() {
		return nil, domain.ErrEmptyQuery
	}
	return im.repo.Update(ctx, id, func(s *domain.Session) {
		if s.Query != query {
			s.Snapshot = domain.NFTSnapshot{}
		}
		s.Query = query
	})
}

func (im *impl) CheckNFT(c bCtx.Ctx, id string) (*domain.Session, error) {
	s, wallet, err := im.connected(c, id)
	if err != nil {
		return nil, err
	}
	if s.Query.IsEmpty() {
		return nil, domain.ErrEmptyQuery
	}

	ctx, cancel := bCtx.WithTimeout(c, im.chainTimeout)
	defer cancel()

	standard := im.detector.Probe(ctx, wallet.ChainId, s.Query.ContractAddress)
	// a failed read is logged by the resolver, what was read before it is still merged
	snapshot, _ := im.resolver.CheckNFT(ctx, *wallet, s.Query, standard)

	return im.repo.Update(c, id, func(s *domain.Session) {
		s.Snapshot.Merge(snapshot)
	})
}

func (im *impl) DisplayNFT(c bCtx.Ctx, id string) (*domain.Session, error) {
	s, err := im.repo.FindOne(c, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := bCtx.WithTimeout(c, im.fetchTimeout)
	defer cancel()

	view, err := im.resolver.DisplayNFT(ctx, s.Snapshot.MetadataURI)
	if err != nil {
		// a missing or unreadable document keeps the description and image already shown
		c.WithFields(log.Fields{
			"session":     id,
			"metadataUri": s.Snapshot.MetadataURI,
			"err":         err,
		}).Warn("display nft failed")
		return s, nil
	}

	return im.repo.Update(c, id, func(s *domain.Session) {
		s.Snapshot.Apply(view)
	})
}

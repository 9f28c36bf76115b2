package usecase

import (
	"encoding/json"
	"math/big"
	"strings"

	bCtx "github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/base/log"
	"github.com/x-xyz/nftexplorer/base/metrics"
	"github.com/x-xyz/nftexplorer/base/ptr"
	unitformatter "github.com/x-xyz/nftexplorer/base/unit_formatter"
	"github.com/x-xyz/nftexplorer/domain"
	chainservice "github.com/x-xyz/nftexplorer/service/chain/contract"
	"github.com/x-xyz/nftexplorer/service/ens"
)

var met = metrics.New("nft")

type NFTResolverCfg struct {
	Erc721Service  chainservice.Erc721Contract
	Erc1155Service chainservice.Erc1155Contract
	WebResource    domain.WebResourceUseCase
	// GatewayHost defaults to DefaultGatewayHost
	GatewayHost string
	// Ens is optional, owner names are skipped without it
	Ens ens.ENS
}

type nftResolverUseCase struct {
	erc721Service  chainservice.Erc721Contract
	erc1155Service chainservice.Erc1155Contract
	webResource    domain.WebResourceUseCase
	gatewayHost    string
	ens            ens.ENS
}

func NewNFTResolverUseCase(cfg *NFTResolverCfg) domain.NFTResolverUseCase {
	gatewayHost := cfg.GatewayHost
	if len(gatewayHost) == 0 {
		gatewayHost = DefaultGatewayHost
	}
	return &nftResolverUseCase{
		erc721Service:  cfg.Erc721Service,
		erc1155Service: cfg.Erc1155Service,
		webResource:    cfg.WebResource,
		gatewayHost:    gatewayHost,
		ens:            cfg.Ens,
	}
}

func (u *nftResolverUseCase) CheckNFT(ctx bCtx.Ctx, wallet domain.WalletConnection, query domain.NFTQuery, standard domain.TokenStandard) (domain.NFTSnapshot, error) {
	defer met.BumpTime("check.time", "standard", standard.String()).End()

	snapshot := domain.NFTSnapshot{Standard: standard}

	var err error
	switch standard {
	case domain.TokenStandardErc1155:
		err = u.checkErc1155(ctx, wallet, query, &snapshot)
	case domain.TokenStandardErc721:
		err = u.checkErc721(ctx, wallet.ChainId, query, &snapshot)
	case domain.TokenStandardUnknown:
		// nothing to read from a contract that answered neither interface
	}

	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId":  wallet.ChainId,
			"contract": query.ContractAddress,
			"tokenId":  query.TokenId,
			"standard": standard,
			"err":      err,
		}).Error("check nft failed")
		met.BumpSum("check.err", 1, "standard", standard.String())
	}
	return snapshot, err
}

// checkErc1155 stores uri(id) with {id} already substituted, so MetadataURI is fetchable as is
func (u *nftResolverUseCase) checkErc1155(ctx bCtx.Ctx, wallet domain.WalletConnection, query domain.NFTQuery, snapshot *domain.NFTSnapshot) error {
	id, err := query.TokenId.ToBigInt()
	if err != nil {
		return err
	}

	balance, err := u.erc1155Service.BalanceOf(ctx, wallet.ChainId, query.ContractAddress, wallet.SelectedAddress, id)
	if err != nil {
		return err
	}
	snapshot.Balance = ptr.String(unitformatter.FormatWhole(balance))

	uri, err := u.erc1155Service.Uri(ctx, wallet.ChainId, query.ContractAddress, id)
	if err != nil {
		return err
	}
	snapshot.MetadataURI = ptr.String(substituteId(uri, id))
	return nil
}

func (u *nftResolverUseCase) checkErc721(ctx bCtx.Ctx, chainId domain.ChainId, query domain.NFTQuery, snapshot *domain.NFTSnapshot) error {
	symbol, err := u.erc721Service.Symbol(ctx, chainId, query.ContractAddress)
	if err != nil {
		return err
	}
	snapshot.Symbol = &symbol

	id, err := query.TokenId.ToBigInt()
	if err != nil {
		return err
	}

	owner, err := u.erc721Service.OwnerOf(ctx, chainId, query.ContractAddress, id)
	if err != nil {
		return err
	}
	snapshot.OwnerAddress = &owner
	snapshot.OwnerName = u.ownerName(ctx, owner)

	uri, err := u.erc721Service.TokenURI(ctx, chainId, query.ContractAddress, id)
	if err != nil {
		return err
	}
	snapshot.MetadataURI = &uri
	return nil
}

// ownerName is best effort, lookup failures leave the name unset
func (u *nftResolverUseCase) ownerName(ctx bCtx.Ctx, owner domain.Address) *string {
	if u.ens == nil {
		return nil
	}
	name, err := u.ens.ReverseResolve(ctx, owner)
	if err != nil || len(name) == 0 {
		return nil
	}
	return &name
}

// substituteId fills the erc1155 {id} placeholder with the 64 char lowercase hex id
func substituteId(uri string, id *big.Int) string {
	if !strings.Contains(uri, "{id}") {
		return uri
	}
	hexId, err := domain.TokenId(id.String()).ToHexString()
	if err != nil {
		return uri
	}
	return strings.ReplaceAll(uri, "{id}", hexId)
}

type metadataDocument struct {
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

func (u *nftResolverUseCase) DisplayNFT(ctx bCtx.Ctx, metadataURI *string) (domain.NFTMetadataView, error) {
	if metadataURI == nil || len(*metadataURI) == 0 {
		return domain.NFTMetadataView{}, domain.ErrNoMetadataURI
	}
	defer met.BumpTime("display.time").End()

	url := RewriteGatewayURI(*metadataURI, u.gatewayHost)
	data, err := u.webResource.GetJson(ctx, url)
	if err != nil {
		met.BumpSum("display.err", 1, "reason", "fetch")
		return domain.NFTMetadataView{}, err
	}

	doc := metadataDocument{}
	if err := json.Unmarshal(data, &doc); err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("json.Unmarshal failed")
		met.BumpSum("display.err", 1, "reason", "parse")
		return domain.NFTMetadataView{}, err
	}

	view := domain.NFTMetadataView{Description: doc.Description}
	if doc.Image != nil {
		view.ImageURI = ptr.String(RewriteGatewayURI(*doc.Image, u.gatewayHost))
	}
	return view, nil
}

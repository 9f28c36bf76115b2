package usecase

import (
	"strings"

	"github.com/x-xyz/nftexplorer/base/abi"
	bctx "github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/base/log"
	"github.com/x-xyz/nftexplorer/base/metrics"
	"github.com/x-xyz/nftexplorer/domain"
	chainservice "github.com/x-xyz/nftexplorer/service/chain/contract"
)

var met = metrics.New("nftdetector")

type NFTDetectorCfg struct {
	Erc165Service chainservice.Erc165Contract
}

type nftDetectorUseCase struct {
	erc165Service chainservice.Erc165Contract
}

func NewNFTDetectorUseCase(cfg *NFTDetectorCfg) domain.NFTDetectorUseCase {
	return &nftDetectorUseCase{
		erc165Service: cfg.Erc165Service,
	}
}

// Probe asks the contract for both interface ids. erc1155 takes priority over erc721,
// any failed call makes the contract UNKNOWN. Results are not cached.
func (n *nftDetectorUseCase) Probe(ctx bctx.Ctx, chainId domain.ChainId, address domain.Address) domain.TokenStandard {
	defer met.BumpTime("probe.time", "chainId", chainId.String()).End()

	is1155, err1155 := n.supports(ctx, chainId, address, abi.InterfaceIdErc1155, "erc1155")
	is721, err721 := n.supports(ctx, chainId, address, abi.InterfaceIdErc721, "erc721")

	standard := domain.TokenStandardUnknown
	switch {
	case err1155 != nil || err721 != nil:
	case is1155:
		standard = domain.TokenStandardErc1155
	case is721:
		standard = domain.TokenStandardErc721
	}

	met.BumpSum("probe.count", 1, "chainId", chainId.String(), "standard", standard.String())
	return standard
}

func (n *nftDetectorUseCase) supports(ctx bctx.Ctx, chainId domain.ChainId, address domain.Address, interfaceId [4]byte, name string) (bool, error) {
	ok, err := n.erc165Service.SupportsInterface(ctx, chainId, address, interfaceId)
	if err != nil {
		logger := ctx.WithFields(log.Fields{
			"chainId":   chainId,
			"address":   address,
			"interface": name,
			"err":       err,
		})
		if n.isKnownEVMError(err) {
			logger.Info("supportsInterface reverted")
		} else {
			logger.Warn("supportsInterface failed")
		}
		return false, err
	}
	return ok, nil
}

func (n *nftDetectorUseCase) isKnownEVMError(err error) bool {
	if strings.Contains(err.Error(), "execution reverted") {
		return true
	}
	if strings.Contains(err.Error(), "abi: attempting to unmarshall an empty string while arguments are expected") {
		return true
	}
	if strings.Contains(err.Error(), "invalid opcode: INVALID") {
		return true
	}
	if strings.Contains(err.Error(), "invalid jump destination") {
		return true
	}
	return false
}

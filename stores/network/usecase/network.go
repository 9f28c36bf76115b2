package usecase

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/x-xyz/nftexplorer/domain"
)

const unknownSymbol = "???"

var profiles = map[domain.ChainId]domain.ChainProfile{
	"1": {
		ChainId:               "1",
		DisplayName:           "Ethereum Mainnet",
		NativeSymbol:          "ETH",
		ReferenceTokenAddress: address("0xdAC17F958D2ee523a2206206994597C13D831ec7"),
	},
	"5": {
		ChainId:               "5",
		DisplayName:           "Ethereum Goerli (Testnet)",
		NativeSymbol:          "ETH",
		ReferenceTokenAddress: address("0xdc31Ee1784292379Fbb2964b3B9C4124D8F89C60"),
	},
	"137": {
		ChainId:               "137",
		DisplayName:           "Polygon Mainnet",
		NativeSymbol:          "MATIC",
		ReferenceTokenAddress: address("0x6d80113e533a2C0fe82EaBD35f1875DcEA89Ea97"),
	},
}

func address(a string) *domain.Address {
	addr := domain.Address(a)
	return &addr
}

type impl struct{}

func NewNetworkUseCase() domain.NetworkUseCase {
	return &impl{}
}

func (im *impl) Resolve(chainId domain.ChainId) domain.ChainProfile {
	if p, ok := profiles[chainId]; ok {
		p.ReferenceTokenAddress = address(p.ReferenceTokenAddress.String())
		return p
	}
	return domain.ChainProfile{
		ChainId:      chainId,
		DisplayName:  fmt.Sprintf("unknown network [%s]", chainId),
		NativeSymbol: unknownSymbol,
	}
}

// List returns the known profiles ordered by numeric chain id
func (im *impl) List() []domain.ChainProfile {
	res := make([]domain.ChainProfile, 0, len(profiles))
	for chainId := range profiles {
		res = append(res, im.Resolve(chainId))
	}
	sort.Slice(res, func(i, j int) bool {
		a, _ := strconv.Atoi(res[i].ChainId.String())
		b, _ := strconv.Atoi(res[j].ChainId.String())
		return a < b
	})
	return res
}

package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x-xyz/nftexplorer/domain"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		desc        string
		chainId     domain.ChainId
		expName     string
		expSymbol   string
		expRefToken string
	}{
		{"mainnet", "1", "Ethereum Mainnet", "ETH", "0xdAC17F958D2ee523a2206206994597C13D831ec7"},
		{"goerli", "5", "Ethereum Goerli (Testnet)", "ETH", "0xdc31Ee1784292379Fbb2964b3B9C4124D8F89C60"},
		{"polygon", "137", "Polygon Mainnet", "MATIC", "0x6d80113e533a2C0fe82EaBD35f1875DcEA89Ea97"},
		{"unknown", "56", "unknown network [56]", "???", ""},
		{"empty", "", "unknown network []", "???", ""},
	}

	im := NewNetworkUseCase()
	for _, tt := range tests {
		p := im.Resolve(tt.chainId)
		require.Equal(t, tt.chainId, p.ChainId, tt.desc)
		require.Equal(t, tt.expName, p.DisplayName, tt.desc)
		require.Equal(t, tt.expSymbol, p.NativeSymbol, tt.desc)
		if tt.expRefToken == "" {
			require.Nil(t, p.ReferenceTokenAddress, tt.desc)
			require.False(t, p.IsKnown(), tt.desc)
			continue
		}
		require.NotNil(t, p.ReferenceTokenAddress, tt.desc)
		require.Equal(t, tt.expRefToken, p.ReferenceTokenAddress.String(), tt.desc)
		require.True(t, p.IsKnown(), tt.desc)
	}
}

func TestResolveReturnsCopy(t *testing.T) {
	im := NewNetworkUseCase()
	p := im.Resolve("1")
	*p.ReferenceTokenAddress = "0x0"

	require.Equal(t, "0xdAC17F958D2ee523a2206206994597C13D831ec7", im.Resolve("1").ReferenceTokenAddress.String())
}

func TestList(t *testing.T) {
	list := NewNetworkUseCase().List()
	require.Len(t, list, 3)
	require.Equal(t, domain.ChainId("1"), list[0].ChainId)
	require.Equal(t, domain.ChainId("5"), list[1].ChainId)
	require.Equal(t, domain.ChainId("137"), list[2].ChainId)
}

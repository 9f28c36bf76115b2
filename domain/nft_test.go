package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x-xyz/nftexplorer/base/ptr"
)

func TestTokenStandard_Text(t *testing.T) {
	req := require.New(t)
	for _, s := range []TokenStandard{TokenStandardUnknown, TokenStandardErc721, TokenStandardErc1155} {
		b, err := json.Marshal(s)
		req.NoError(err)
		var got TokenStandard
		req.NoError(json.Unmarshal(b, &got))
		req.Equal(s, got)
	}
	req.Equal("UNKNOWN", TokenStandard(42).String())
	var s TokenStandard
	req.Error(s.UnmarshalText([]byte("ERC-20")))
}

func TestNFTSnapshot_Merge(t *testing.T) {
	req := require.New(t)
	owner := Address("0xowner")
	s := NFTSnapshot{
		Standard:    TokenStandardErc721,
		Symbol:      ptr.String("OLD"),
		Description: ptr.String("kept"),
	}
	s.Merge(NFTSnapshot{Standard: TokenStandardErc721, OwnerAddress: &owner})
	req.Equal("OLD", *s.Symbol)
	req.Equal(owner, *s.OwnerAddress)
	req.Equal("kept", *s.Description)

	s.Merge(NFTSnapshot{Standard: TokenStandardUnknown})
	req.Equal(TokenStandardUnknown, s.Standard)
	req.Equal("OLD", *s.Symbol)
}

func TestNFTSnapshot_Apply(t *testing.T) {
	req := require.New(t)
	s := NFTSnapshot{Description: ptr.String("prior"), ImageURI: ptr.String("https://prior")}
	s.Apply(NFTMetadataView{Description: ptr.String("A cat")})
	req.Equal("A cat", *s.Description)
	req.Equal("https://prior", *s.ImageURI)
}

func TestTokenId(t *testing.T) {
	req := require.New(t)
	hex, err := TokenId("314").ToHexString()
	req.NoError(err)
	req.Equal("000000000000000000000000000000000000000000000000000000000000013a", hex)

	id, err := TokenId("0x13A").ToBigInt()
	req.NoError(err)
	req.Equal(int64(314), id.Int64())

	hex, err = TokenId("0x13a").ToHexString()
	req.NoError(err)
	req.Equal("000000000000000000000000000000000000000000000000000000000000013a", hex)

	_, err = TokenId("abc").ToBigInt()
	req.Error(err)
	_, err = TokenId("0x").ToBigInt()
	req.Error(err)
	_, err = TokenId("0xzz").ToBigInt()
	req.Error(err)
	_, err = TokenId("-1").ToBigInt()
	req.Error(err)
}

func TestSession_Connected(t *testing.T) {
	req := require.New(t)
	s := &Session{Status: WalletStatusNotInstalled}
	_, err := s.Connected()
	req.Equal(ErrNotInstalled, err)

	s = &Session{Status: WalletStatusNotConnected}
	_, err = s.Connected()
	req.Equal(ErrNotConnected, err)

	w := &WalletConnection{ChainId: "1", SelectedAddress: "0xabc"}
	s = &Session{Status: WalletStatusConnected, Wallet: w}
	got, err := s.Connected()
	req.NoError(err)
	req.Equal(w, got)
}

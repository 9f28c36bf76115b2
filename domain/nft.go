package domain

import (
	"github.com/x-xyz/nftexplorer/base/ctx"
	"golang.org/x/xerrors"
)

// TokenStandard is the result of an erc165 probe, never cached
type TokenStandard int

const (
	TokenStandardUnknown TokenStandard = iota
	TokenStandardErc721
	TokenStandardErc1155
)

var tokenStandardNames = map[TokenStandard]string{
	TokenStandardUnknown: "UNKNOWN",
	TokenStandardErc721:  "ERC-721",
	TokenStandardErc1155: "ERC-1155",
}

func (s TokenStandard) String() string {
	if name, ok := tokenStandardNames[s]; ok {
		return name
	}
	return tokenStandardNames[TokenStandardUnknown]
}

func (s TokenStandard) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *TokenStandard) UnmarshalText(text []byte) error {
	for k, v := range tokenStandardNames {
		if v == string(text) {
			*s = k
			return nil
		}
	}
	return xerrors.Errorf("unknown token standard %q", string(text))
}

// NFTQuery is the user input; only emptiness is validated, malformed values fail at the chain call.
// TokenId is decimal or 0x prefixed hex.
type NFTQuery struct {
	ContractAddress Address `json:"contractAddress"`
	TokenId         TokenId `json:"tokenId"`
}

func (q NFTQuery) IsEmpty() bool {
	return q.ContractAddress.IsEmpty() || len(q.TokenId) == 0
}

// NFTSnapshot is filled by CheckNFT then DisplayNFT. nil means unset.
type NFTSnapshot struct {
	Standard     TokenStandard `json:"standard"`
	Symbol       *string       `json:"symbol,omitempty"`
	OwnerAddress *Address      `json:"ownerAddress,omitempty"`
	OwnerName    *string       `json:"ownerName,omitempty"`
	Balance      *string       `json:"balance,omitempty"`
	MetadataURI  *string       `json:"metadataUri,omitempty"`
	Description  *string       `json:"description,omitempty"`
	ImageURI     *string       `json:"imageUri,omitempty"`
}

// Merge replaces every field set in other, the standard is always replaced
func (s *NFTSnapshot) Merge(other NFTSnapshot) {
	s.Standard = other.Standard
	if other.Symbol != nil {
		s.Symbol = other.Symbol
	}
	if other.OwnerAddress != nil {
		s.OwnerAddress = other.OwnerAddress
	}
	if other.OwnerName != nil {
		s.OwnerName = other.OwnerName
	}
	if other.Balance != nil {
		s.Balance = other.Balance
	}
	if other.MetadataURI != nil {
		s.MetadataURI = other.MetadataURI
	}
}

// NFTMetadataView is the part of the metadata document the inspector displays
type NFTMetadataView struct {
	Description *string `json:"description,omitempty"`
	ImageURI    *string `json:"imageUri,omitempty"`
}

// Apply sets the fields present in the view and leaves the others untouched
func (s *NFTSnapshot) Apply(v NFTMetadataView) {
	if v.Description != nil {
		s.Description = v.Description
	}
	if v.ImageURI != nil {
		s.ImageURI = v.ImageURI
	}
}

type NFTDetectorUseCase interface {
	// Probe classifies a contract by erc165; failures classify as TokenStandardUnknown
	Probe(ctx.Ctx, ChainId, Address) TokenStandard
}

type NFTResolverUseCase interface {
	// CheckNFT returns what it could read before the first failing call, together with that failure
	CheckNFT(ctx.Ctx, WalletConnection, NFTQuery, TokenStandard) (NFTSnapshot, error)
	// DisplayNFT fetches and parses the metadata document behind the uri
	DisplayNFT(ctx.Ctx, *string) (NFTMetadataView, error)
}

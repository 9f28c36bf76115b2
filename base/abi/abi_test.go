package abi

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestMethodSelectors(t *testing.T) {
	req := require.New(t)
	req.Equal("01ffc9a7", common.Bytes2Hex(ERC165ABI.Methods["supportsInterface"].ID))
	req.Equal("95d89b41", common.Bytes2Hex(ERC20TokenABI.Methods["symbol"].ID))
	req.Equal("313ce567", common.Bytes2Hex(ERC20TokenABI.Methods["decimals"].ID))
	req.Equal("70a08231", common.Bytes2Hex(ERC20TokenABI.Methods["balanceOf"].ID))
	req.Equal("6352211e", common.Bytes2Hex(ERC721TokenABI.Methods["ownerOf"].ID))
	req.Equal("c87b56dd", common.Bytes2Hex(ERC721TokenABI.Methods["tokenURI"].ID))
	req.Equal("00fdd58e", common.Bytes2Hex(ERC1155TokenABI.Methods["balanceOf"].ID))
	req.Equal("0e89341c", common.Bytes2Hex(ERC1155TokenABI.Methods["uri"].ID))
}

func TestInterfaceIds(t *testing.T) {
	req := require.New(t)
	req.Equal("80ac58cd", common.Bytes2Hex(InterfaceIdErc721[:]))
	req.Equal("d9b67a26", common.Bytes2Hex(InterfaceIdErc1155[:]))
}

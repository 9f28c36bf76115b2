package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var ERC165ABI abi.ABI

var erc165ABI = `[{"type":"function","name":"supportsInterface","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"bytes4","name":"interfaceID"}],"outputs":[{"type":"bool"}]}]`

// interface ids as published in the respective EIPs
var (
	InterfaceIdErc721  = [4]byte{0x80, 0xac, 0x58, 0xcd}
	InterfaceIdErc1155 = [4]byte{0xd9, 0xb6, 0x7a, 0x26}
)

func init() {
	_abi, err := abi.JSON(strings.NewReader(erc165ABI))
	if err != nil {
		panic("Failed to parse erc165 abi")
	}
	ERC165ABI = _abi
}

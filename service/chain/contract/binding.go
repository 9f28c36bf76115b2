package contract

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/x-xyz/nftexplorer/domain"
	"golang.org/x/xerrors"
)

// The bindings form a closed set: Erc165 for the capability probe, Erc20 for the
// reference token, Erc721 and Erc1155 selected by the probed domain.TokenStandard.

func toAddress(addr domain.Address) common.Address {
	return common.HexToAddress(addr.ToLowerStr())
}

func first(method string, unpacked []interface{}) (interface{}, error) {
	if len(unpacked) == 0 {
		return nil, xerrors.Errorf("%s returned no values", method)
	}
	return unpacked[0], nil
}

func unexpected(method string, v interface{}) error {
	return xerrors.Errorf("%s returned unexpected type %T", method, v)
}

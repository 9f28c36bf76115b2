package domain

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

// ChainId as reported by the wallet (networkVersion), e.g. "1", "137"
type ChainId string

func (c ChainId) String() string {
	return string(c)
}

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) String() string {
	return string(a)
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// ToBigInt parses a decimal or 0x prefixed hex token id
func (i TokenId) ToBigInt() (*big.Int, error) {
	s, base := i.String(), 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
	}
	id, ok := new(big.Int).SetString(s, base)
	if !ok || id.Sign() < 0 {
		return nil, xerrors.Errorf("invalid token id %q", i)
	}
	return id, nil
}

// ToHexString returns the id as the 64 char, zero padded, lowercase hex string
// erc1155 clients substitute for {id}
func (i TokenId) ToHexString() (string, error) {
	id, err := i.ToBigInt()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%064x", id), nil
}

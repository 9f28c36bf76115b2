package unitformatter

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// NativeDecimals is the decimals of every evm native currency (wei)
const NativeDecimals = 18

// FormatUnits renders a base-unit amount the way wallets display it: the value is
// shifted by decimals and always carries a fractional part ("1.0", "0.000015").
func FormatUnits(value *big.Int, decimals int32) string {
	if value == nil {
		value = new(big.Int)
	}
	s := decimal.NewFromBigInt(value, -decimals).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatEther is FormatUnits with NativeDecimals
func FormatEther(wei *big.Int) string {
	return FormatUnits(wei, NativeDecimals)
}

// FormatWhole renders an amount that has no fractional unit, e.g. an erc1155 balance
func FormatWhole(value *big.Int) string {
	if value == nil {
		return "0"
	}
	return value.String()
}

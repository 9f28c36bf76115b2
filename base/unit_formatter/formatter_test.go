package unitformatter

import (
	"math/big"
	"testing"
)

func TestFormatUnits(t *testing.T) {
	wei, _ := new(big.Int).SetString("1500000000000000000", 10)
	tests := []struct {
		name     string
		value    *big.Int
		decimals int32
		want     string
	}{
		{name: "one and a half ether", value: wei, decimals: 18, want: "1.5"},
		{name: "whole usdt", value: big.NewInt(2000000), decimals: 6, want: "2.0"},
		{name: "dust", value: big.NewInt(15), decimals: 6, want: "0.000015"},
		{name: "zero", value: big.NewInt(0), decimals: 18, want: "0.0"},
		{name: "nil", value: nil, decimals: 18, want: "0.0"},
		{name: "no decimals", value: big.NewInt(42), decimals: 0, want: "42.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatUnits(tt.value, tt.decimals); got != tt.want {
				t.Errorf("FormatUnits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatEther(t *testing.T) {
	if got := FormatEther(big.NewInt(1)); got != "0.000000000000000001" {
		t.Errorf("FormatEther() = %v", got)
	}
}

func TestFormatWhole(t *testing.T) {
	if got := FormatWhole(big.NewInt(7)); got != "7" {
		t.Errorf("FormatWhole() = %v", got)
	}
	if got := FormatWhole(nil); got != "0" {
		t.Errorf("FormatWhole(nil) = %v", got)
	}
}

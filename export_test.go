package numeric

import (
	"math/big"

	"github.com/shopspring/decimal"
)

func Rescale(dec decimal.Decimal) (*big.Int, error) {
	return rescale(dec)
}

func PackTwosComplement(n *big.Int) []byte {
	return packTwosComplement(n)
}

func UnpackTwosComplement(data []byte) (*big.Int, error) {
	return unpackTwosComplement(data)
}

const (
	NumericScale     = numericScale
	NumericPrecision = numericPrecision
)

// Package numeric encodes and decodes arbitrary-precision decimals to and
// from the byte-string form of Google BigQuery's NUMERIC data type, as
// consumed by the BigQuery storage Write API.
//
// NUMERIC values carry 38 decimal digits of precision, 9 of them fractional.
// The wire form is the value scaled by 10^9 and packed as a variable-length,
// little-endian, minimal two's-complement integer.
//
// See also:
//
//   - BigQuery NUMERIC type:
//     https://cloud.google.com/bigquery/docs/reference/standard-sql/data-types#decimal_types
//
//   - BigQuery Write API data type conversions:
//     https://cloud.google.com/bigquery/docs/write-api#data_type_conversions
package numeric

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	// Numeric external type.
	numericExtID = 1

	// Fractional digits a NUMERIC value carries on the wire.
	numericScale = 9
	// Total decimal digits a NUMERIC value may carry.
	numericPrecision = 38
)

var (
	ten = big.NewInt(10)
	// 10^numericPrecision, the first scaled magnitude that no longer fits.
	maxScaled = new(big.Int).Exp(ten, big.NewInt(numericPrecision), nil)
	// 10^29 - 10^-9 = 99999999999999999999999999999.999999999
	maxNumeric = decimal.New(1, numericPrecision-numericScale).Sub(decimal.New(1, -numericScale))
	minNumeric = maxNumeric.Neg()
)

var (
	ErrPrecisionLoss = fmt.Errorf("numeric: value has a nonzero digit beyond"+
		" %d fractional digits", numericScale)
	ErrOutOfRange = fmt.Errorf("numeric: value does not fit in %d digits"+
		" of precision", numericPrecision)
	ErrInvalidBytes = fmt.Errorf("numeric: byte string is not a valid NUMERIC encoding")
)

// Numeric is a BigQuery NUMERIC value.
type Numeric struct {
	decimal.Decimal
}

// MakeNumeric creates a new Numeric from a decimal.Decimal.
func MakeNumeric(dec decimal.Decimal) Numeric {
	return Numeric{Decimal: dec}
}

// MakeNumericFromString creates a new Numeric from a string.
func MakeNumericFromString(src string) (Numeric, error) {
	result := Numeric{}
	dec, err := decimal.NewFromString(src)
	if err != nil {
		return result, err
	}
	result = MakeNumeric(dec)
	return result, nil
}

// EncodeBigDecimalToBigQueryBytes encodes a decimal to the NUMERIC
// byte-string form: the value scaled by 10^9 as a minimal little-endian
// two's-complement integer.
//
// Returns ErrPrecisionLoss if the value is not exactly representable with 9
// fractional digits and ErrOutOfRange if the scaled value needs 39 or more
// decimal digits. A failed call returns no bytes.
func EncodeBigDecimalToBigQueryBytes(dec decimal.Decimal) ([]byte, error) {
	scaled, err := rescale(dec)
	if err != nil {
		return nil, err
	}
	return packTwosComplement(scaled), nil
}

// DecodeBigQueryBytesToBigDecimal decodes a NUMERIC byte string back to a
// decimal with 9 fractional digits.
//
// Non-minimal encodings (redundant 0x00 or 0xFF sign-extension bytes) are
// accepted and normalized. An empty byte string fails with ErrInvalidBytes,
// a value outside the NUMERIC range with ErrOutOfRange.
func DecodeBigQueryBytesToBigDecimal(data []byte) (decimal.Decimal, error) {
	scaled, err := unpackTwosComplement(data)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if scaled.CmpAbs(maxScaled) >= 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: %s * 10^-%d",
			ErrOutOfRange, scaled.String(), numericScale)
	}
	return decimal.NewFromBigInt(scaled, -numericScale), nil
}

// Validate reports every NUMERIC constraint the value violates, so callers
// can surface all problems with a row at once. A nil result means the value
// encodes. Unlike the encode path it does not stop at the first violation.
func Validate(dec decimal.Decimal) error {
	var errs *multierror.Error
	if !dec.Equal(dec.Truncate(numericScale)) {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s", ErrPrecisionLoss, dec.String()))
	}
	if dec.GreaterThan(maxNumeric) || dec.LessThan(minNumeric) {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s", ErrOutOfRange, dec.String()))
	}
	return errs.ErrorOrNil()
}

// rescale turns a decimal into the scaled integer value * 10^9, exactly.
// The shopspring representation is coefficient * 10^exponent, so the scaled
// integer is coefficient * 10^(exponent+9).
func rescale(dec decimal.Decimal) (*big.Int, error) {
	scaled := new(big.Int).Set(dec.Coefficient())
	switch exp := int64(dec.Exponent()); {
	case exp > -numericScale:
		scaled.Mul(scaled, pow10(exp+numericScale))
	case exp < -numericScale:
		rem := new(big.Int)
		scaled.QuoRem(scaled, pow10(-numericScale-exp), rem)
		if rem.Sign() != 0 {
			return nil, fmt.Errorf("%w: %s", ErrPrecisionLoss, dec.String())
		}
	}
	if scaled.CmpAbs(maxScaled) >= 0 {
		return nil, fmt.Errorf("%w: %s", ErrOutOfRange, dec.String())
	}
	return scaled, nil
}

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(n), nil)
}

// MarshalMsgpack implements a custom msgpack marshaler. The extension
// payload is the NUMERIC byte string itself.
func (num Numeric) MarshalMsgpack() ([]byte, error) {
	return EncodeBigDecimalToBigQueryBytes(num.Decimal)
}

// UnmarshalMsgpack implements a custom msgpack unmarshaler.
func (num *Numeric) UnmarshalMsgpack(data []byte) error {
	dec, err := DecodeBigQueryBytesToBigDecimal(data)
	if err != nil {
		return err
	}
	*num = MakeNumeric(dec)
	return nil
}

func numericEncoder(e *msgpack.Encoder, v reflect.Value) ([]byte, error) {
	num := v.Interface().(Numeric)

	return num.MarshalMsgpack()
}

func numericDecoder(d *msgpack.Decoder, v reflect.Value, extLen int) error {
	b := make([]byte, extLen)

	switch n, err := d.Buffered().Read(b); {
	case err != nil:
		return err
	case n < extLen:
		return fmt.Errorf("msgpack: unexpected end of stream after %d numeric bytes", n)
	}

	ptr := v.Addr().Interface().(*Numeric)
	return ptr.UnmarshalMsgpack(b)
}

func init() {
	msgpack.RegisterExtDecoder(numericExtID, Numeric{}, numericDecoder)
	msgpack.RegisterExtEncoder(numericExtID, Numeric{}, numericEncoder)
}

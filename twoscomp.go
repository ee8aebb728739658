package numeric

import (
	"fmt"
	"math/big"
)

// packTwosComplement packs a signed integer into its minimal little-endian
// two's-complement byte string. Zero packs to a single zero byte. A sign
// byte (0x00 positive, 0xFF negative) is prepended only when the magnitude's
// top bit would otherwise be read as the wrong sign.
func packTwosComplement(n *big.Int) []byte {
	buf := n.Bytes()
	if len(buf) == 0 {
		return []byte{0}
	}

	if n.Sign() > 0 {
		if buf[0]&0x80 != 0 {
			buf = append([]byte{0x00}, buf...)
		}
	} else {
		for i := range buf {
			buf[i] = ^buf[i]
		}
		// Ripple the +1 up from the low byte. The carry cannot run off
		// the top: the magnitude is nonzero, so some byte absorbs it.
		for i := len(buf) - 1; i >= 0; i-- {
			buf[i]++
			if buf[i] != 0 {
				break
			}
		}
		if buf[0]&0x80 == 0 {
			buf = append([]byte{0xFF}, buf...)
		}
	}

	reverseBytes(buf)
	return buf
}

// unpackTwosComplement reads a little-endian two's-complement byte string of
// any length. If the sign bit of the most significant byte is set, the
// unsigned value is shifted down by 2^(8k) to recover the negative integer.
func unpackTwosComplement(data []byte) (*big.Int, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty byte string", ErrInvalidBytes)
	}

	buf := make([]byte, len(data))
	for i, b := range data {
		buf[len(data)-1-i] = b
	}

	n := new(big.Int).SetBytes(buf)
	if buf[0]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(8*len(buf))))
	}
	return n, nil
}

func reverseBytes(buf []byte) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}

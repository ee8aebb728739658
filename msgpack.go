//go:build !go_bqnumeric_msgpack_v5
// +build !go_bqnumeric_msgpack_v5

package numeric

import (
	"gopkg.in/vmihailenco/msgpack.v2"
)

func init() {
	msgpack.RegisterExt(numericExtID, &Numeric{})
}

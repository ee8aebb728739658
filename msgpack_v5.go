//go:build go_bqnumeric_msgpack_v5
// +build go_bqnumeric_msgpack_v5

package numeric

import (
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	msgpack.RegisterExt(numericExtID, (*Numeric)(nil))
}

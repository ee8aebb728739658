//go:build go_bqnumeric_msgpack_v5
// +build go_bqnumeric_msgpack_v5

package numeric_test

import (
	"github.com/vmihailenco/msgpack/v5"

	. "github.com/SINTEF/go-bigquery-numeric"
)

type encoder = msgpack.Encoder
type decoder = msgpack.Decoder

func toNumeric(i interface{}) (num Numeric, ok bool) {
	var ptr *Numeric
	if ptr, ok = i.(*Numeric); ok {
		num = *ptr
	}
	return
}

func marshal(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

func unmarshal(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}

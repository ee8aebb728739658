//go:build !go_bqnumeric_msgpack_v5
// +build !go_bqnumeric_msgpack_v5

package numeric_test

import (
	. "github.com/SINTEF/go-bigquery-numeric"

	"gopkg.in/vmihailenco/msgpack.v2"
)

type encoder = msgpack.Encoder
type decoder = msgpack.Decoder

func toNumeric(i interface{}) (num Numeric, ok bool) {
	num, ok = i.(Numeric)
	return
}

func marshal(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

func unmarshal(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}

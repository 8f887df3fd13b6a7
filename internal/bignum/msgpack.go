package bignum

import (
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = BigInt{}
	_ msgpack.CustomDecoder = (*BigInt)(nil)
)

// EncodeMsgpack writes the canonical decimal string, so the payload stays
// readable by decoders that know nothing about this type.
func (i BigInt) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(i.String())
}

// DecodeMsgpack reads a value written by [BigInt.EncodeMsgpack].
func (i *BigInt) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

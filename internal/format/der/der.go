// Package der encodes the handful of ASN.1 DER types needed for private
// keys: INTEGER, OCTET STRING, NULL, OBJECT IDENTIFIER and SEQUENCE.
package der

import (
	"errors"
	"fmt"
	"math/big"
)

const (
	TagInteger     byte = 0x02
	TagOctetString byte = 0x04
	TagNull        byte = 0x05
	TagOID         byte = 0x06
	TagSequence    byte = 0x30
)

// MaxLength is the largest value length Encode accepts (two length octets).
const MaxLength = 0xffff

// ErrTooLong is returned for values longer than MaxLength.
var ErrTooLong = errors.New("der: value too long")

// Encode returns tag || length || value using the DER short form for
// lengths below 128 and the one or two octet long form above.
func Encode(tag byte, value []byte) ([]byte, error) {
	l := len(value)
	out := make([]byte, 0, l+4)
	out = append(out, tag)
	switch {
	case l < 0x80:
		out = append(out, byte(l))
	case l <= 0xff:
		out = append(out, 0x81, byte(l))
	case l <= MaxLength:
		out = append(out, 0x82, byte(l>>8), byte(l))
	default:
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLong, l)
	}
	return append(out, value...), nil
}

// Integer turns a big-endian magnitude into INTEGER content octets,
// prepending 0x00 when the high bit is set so the value stays positive.
func Integer(magnitude []byte) []byte {
	if len(magnitude) == 0 {
		return []byte{0x00}
	}
	if magnitude[0]&0x80 == 0 {
		return append([]byte(nil), magnitude...)
	}
	out := make([]byte, len(magnitude)+1)
	copy(out[1:], magnitude)
	return out
}

// BigInt returns the INTEGER content octets of a non-negative x.
// The same bytes are a valid SSH mpint.
func BigInt(x *big.Int) []byte {
	return Integer(x.Bytes())
}

// EncodeInteger is Encode(TagInteger, BigInt(x)).
func EncodeInteger(x *big.Int) ([]byte, error) {
	return Encode(TagInteger, BigInt(x))
}

// Sequence concatenates already encoded elements and wraps them in a
// SEQUENCE.
func Sequence(elems ...[]byte) ([]byte, error) {
	n := 0
	for _, e := range elems {
		n += len(e)
	}
	body := make([]byte, 0, n)
	for _, e := range elems {
		body = append(body, e...)
	}
	return Encode(TagSequence, body)
}

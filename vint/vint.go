// Package vint implements the variable-length integer codec used to
// frame the interval container's header: little-endian base-128
// digits, 7 payload bits per byte, with the high bit marking the final
// byte. Values up to 128 bits are supported; the container uses it for
// the anchor count, the anchor deltas and the value count.
package vint

import (
	"errors"
	"fmt"

	"github.com/kaelin-vasko/ipcolumn/u128"
)

// stopBit marks the final byte of an encoded value.
const stopBit = 0x80

// maxBytes bounds the number of bytes a 128-bit value can expand to at
// 7 bits per byte (ceil(128/7) = 19).
const maxBytes = 19

// ErrTooLong is returned by Deserialize when more than maxBytes bytes
// are consumed without encountering a byte with the stop bit set.
var ErrTooLong = errors.New("vint: value exceeds 19 bytes without a stop bit")

// ErrTruncated is returned by Deserialize when the input runs out of
// bytes before a stop byte is found.
var ErrTruncated = errors.New("vint: truncated input")

// Serialize appends the base-128 encoding of v to out and returns the
// extended slice. Zero encodes as the single byte 0x80.
func Serialize(v u128.U128, out []byte) []byte {
	for {
		b := v.Low7()
		v = v.Shr(7)
		if v.IsZero() {
			return append(out, b|stopBit)
		}
		out = append(out, b)
	}
}

// SerializeUint64 is a convenience wrapper for values known to fit in a
// uint64 (the common case for compact codes).
func SerializeUint64(v uint64, out []byte) []byte {
	return Serialize(u128.FromUint64(v), out)
}

// Deserialize consumes bytes from in until one with the stop bit is
// found, returning the decoded value and the remaining slice.
func Deserialize(in []byte) (u128.U128, []byte, error) {
	result := u128.Zero
	shift := uint(0)
	for i := 0; i < maxBytes; i++ {
		if i >= len(in) {
			return u128.Zero, nil, ErrTruncated
		}
		b := in[i]
		term := u128.FromUint64(uint64(b & 0x7f))
		result = result.Add(term.Shl(shift))
		if b&stopBit != 0 {
			return result, in[i+1:], nil
		}
		shift += 7
	}
	return u128.Zero, nil, ErrTooLong
}

// DeserializeUint64 decodes a value known to fit in 64 bits.
func DeserializeUint64(in []byte) (uint64, []byte, error) {
	v, rest, err := Deserialize(in)
	if err != nil {
		return 0, nil, err
	}
	lo, ok := v.Uint64()
	if !ok {
		return 0, nil, fmt.Errorf("vint: decoded value %d:%d overflows uint64", v.Hi, v.Lo)
	}
	return lo, rest, nil
}

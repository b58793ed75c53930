// Package ipcodec defines the uniform encode/decode contract (§4.6,
// "IpRepr" in the reference implementation) that every codec variant
// in this module satisfies, and supplies both variants: IntervalCodec,
// and HalfDictCodec, which wraps the dictionary layer of package
// halfdict (halfdict.Outer itself also satisfies Codec).
package ipcodec

import "github.com/kaelin-vasko/ipcolumn/u128"

// Codec encodes and decodes sequences of 128-bit values. For all
// implementations and all finite xs, Decode(Encode(xs)) == xs. Empty
// input encodes to an empty byte sequence and decodes to an empty
// sequence.
type Codec interface {
	Encode(values []u128.U128) ([]byte, error)
	Decode(data []byte) ([]u128.U128, error)
}

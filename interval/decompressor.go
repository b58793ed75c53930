package interval

import (
	"errors"
	"fmt"

	"github.com/kaelin-vasko/ipcolumn/bitpack"
	"github.com/kaelin-vasko/ipcolumn/u128"
	"github.com/kaelin-vasko/ipcolumn/vint"
)

// ErrMalformedContainer wraps malformed-header and truncated-body
// errors from the decoder taxonomy in §7. Use errors.Is against this
// sentinel to detect any container parsing failure.
var ErrMalformedContainer = errors.New("interval: malformed container")

// ErrInvalidNumBits is returned when a decoded num_bits byte is 0 or
// greater than 64.
var ErrInvalidNumBits = fmt.Errorf("%w: num_bits must be in [1, 64]", ErrMalformedContainer)

// Decompressor holds the inverse anchor map and bit width read from a
// container header.
type Decompressor struct {
	Inverse InverseMap
	NumBits uint8
}

// Open reads K, the K anchor delta-pairs, and num_bits from buf,
// returning the constructed Decompressor and the remaining slice
// (pointing at the value-count VInt followed by the packed body).
func Open(buf []byte) (*Decompressor, []byte, error) {
	kVal, rest, err := vint.DeserializeUint64(buf)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading K: %v", ErrMalformedContainer, err)
	}

	anchors := make([]InverseAnchor, 0, kVal)
	prevValue := u128.Zero
	prevCompact := uint64(0)
	for i := uint64(0); i < kVal; i++ {
		deltaValue, r, err := vint.Deserialize(rest)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: reading anchor %d value delta: %v", ErrMalformedContainer, i, err)
		}
		rest = r

		deltaCompact, r, err := vint.DeserializeUint64(rest)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: reading anchor %d compact delta: %v", ErrMalformedContainer, i, err)
		}
		rest = r

		value := prevValue.Add(deltaValue)
		compact := prevCompact + deltaCompact
		anchors = append(anchors, InverseAnchor{CompactBase: compact, ValueBase: value})
		prevValue = value
		prevCompact = compact
	}

	if len(rest) < 1 {
		return nil, nil, fmt.Errorf("%w: truncated before num_bits byte", ErrMalformedContainer)
	}
	numBits := rest[0]
	rest = rest[1:]
	if numBits < 1 || numBits > 64 {
		return nil, nil, ErrInvalidNumBits
	}

	return &Decompressor{Inverse: NewInverseMap(anchors), NumBits: numBits}, rest, nil
}

// Get extracts the i-th fixed-width code from the packed body and
// applies Inverse.
func (d *Decompressor) Get(i uint64, body []byte) u128.U128 {
	code := bitpack.Get(i, d.NumBits, body)
	return d.Inverse.Inverse(code)
}

// Decode implements the full IpRepr.decode stream contract for the
// Interval Encoding container format: open the header, read the value
// count n, then produce n values from the packed body.
func Decode(buf []byte) ([]u128.U128, error) {
	if len(buf) == 0 {
		return nil, nil
	}

	decomp, rest, err := Open(buf)
	if err != nil {
		return nil, err
	}

	n, body, err := vint.DeserializeUint64(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: reading value count: %v", ErrMalformedContainer, err)
	}

	want := bitpack.ByteLen(n, decomp.NumBits)
	if uint64(len(body)) < want {
		return nil, fmt.Errorf("%w: body has %d bytes, need %d for %d values at %d bits",
			ErrMalformedContainer, len(body), want, n, decomp.NumBits)
	}

	values := make([]u128.U128, n)
	for i := uint64(0); i < n; i++ {
		values[i] = decomp.Get(i, body)
	}
	return values, nil
}

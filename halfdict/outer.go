package halfdict

import (
	"fmt"

	"github.com/kaelin-vasko/ipcolumn/u128"
)

// InnerCodec is the minimal Encode/Decode contract this layer needs
// from whatever compresses the remapped u128 sequence. Spec §4.5 notes
// the choice of inner codec is "agnostic"; this repo uses the interval
// package (see ipcodec.HalfDictCodec), since it already handles
// arbitrary u128 sequences and needs no second dependency.
type InnerCodec interface {
	Encode(values []u128.U128) ([]byte, error)
	Decode(data []byte) ([]u128.U128, error)
}

// Outer is the dictionary-remap codec: train a top-N dictionary,
// remap values against it, and delegate the remapped sequence to
// Inner. Container format per §6.2: dictionary header, then Inner's
// opaque payload.
type Outer struct {
	// DictSize is N, the maximum dictionary size.
	DictSize int
	Inner    InnerCodec
}

// Encode trains a fresh dictionary over values, remaps values against
// it, and writes the dictionary header followed by Inner's payload.
func (o *Outer) Encode(values []u128.U128) ([]byte, error) {
	if len(values) == 0 {
		return nil, nil
	}

	dict := Train(values, o.DictSize)
	remapped := dict.Remap(values)

	out, err := dict.WriteHeader(nil)
	if err != nil {
		return nil, fmt.Errorf("halfdict: encode: %w", err)
	}

	innerPayload, err := o.Inner.Encode(remapped)
	if err != nil {
		return nil, fmt.Errorf("halfdict: encode: inner codec failed: %w", err)
	}
	return append(out, innerPayload...), nil
}

// Decode reads the dictionary header, decodes Inner's payload, and
// reverses the remap.
func (o *Outer) Decode(data []byte) ([]u128.U128, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dict, rest, err := ReadHeader(data)
	if err != nil {
		return nil, fmt.Errorf("halfdict: decode: %w", err)
	}

	remapped, err := o.Inner.Decode(rest)
	if err != nil {
		return nil, fmt.Errorf("halfdict: decode: inner codec failed: %w", err)
	}

	return dict.Unmap(remapped), nil
}

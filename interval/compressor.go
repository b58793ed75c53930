// Package interval implements the Interval Encoding codec: the trainer
// that selects skip intervals over a sorted domain (trainer.go), the
// forward/inverse anchor maps (anchor.go), and the compressor/
// decompressor that write and read the self-describing container
// (this file and decompressor.go).
//
// Grounded on _examples/original_source/src/interval.rs (the Rust
// reference this algorithm was distilled from) and, for the bit/byte
// mechanics, on the teacher's internal/compression package.
package interval

import (
	"fmt"
	"sort"

	"github.com/kaelin-vasko/ipcolumn/bitpack"
	"github.com/kaelin-vasko/ipcolumn/internal/logger"
	"github.com/kaelin-vasko/ipcolumn/u128"
	"github.com/kaelin-vasko/ipcolumn/vint"
)

// Compressor holds a trained anchor map and bit width, ready to encode
// any sequence of values that appeared in (or falls inside a run
// preserved by) training.
type Compressor struct {
	Anchors AnchorMap
	NumBits uint8
}

// Train sorts a private copy of xs, runs the trainer with the given
// cost budget, and returns a Compressor for the original (unsorted)
// sequence. xs must be non-empty; callers handle the empty-input case
// (§4.6: empty input encodes to zero bytes) before calling Train.
func Train(xs []u128.U128, costBudgetBits int, log *logger.Logger) (*Compressor, error) {
	sorted := make([]u128.U128, len(xs))
	copy(sorted, xs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	anchors, numBits, err := TrainAnchors(sorted, costBudgetBits, log)
	if err != nil {
		return nil, err
	}
	return &Compressor{Anchors: anchors, NumBits: numBits}, nil
}

// Forward maps a value to its compact code via the trained anchor map.
func (c *Compressor) Forward(v u128.U128) uint64 {
	return c.Anchors.Forward(v)
}

// WriteHeader emits K (VInt), K anchor delta-pairs, and num_bits (one
// byte), per container format §6.1 points 1-3.
func (c *Compressor) WriteHeader(out []byte) []byte {
	anchors := c.Anchors.Anchors()
	out = vint.SerializeUint64(uint64(len(anchors)), out)

	prevValue := u128.Zero
	prevCompact := uint64(0)
	for _, a := range anchors {
		deltaValue := a.ValueBase.Sub(prevValue)
		deltaCompact := a.CompactBase - prevCompact
		out = vint.Serialize(deltaValue, out)
		out = vint.SerializeUint64(deltaCompact, out)
		prevValue = a.ValueBase
		prevCompact = a.CompactBase
	}
	out = append(out, c.NumBits)
	return out
}

// Compress writes the full container for xs: header, value count, and
// the bitpacked body (§6.1 points 4-5). xs need not be sorted; values
// are written in their original order.
func (c *Compressor) Compress(xs []u128.U128, out []byte) ([]byte, error) {
	out = c.WriteHeader(out)
	out = vint.SerializeUint64(uint64(len(xs)), out)

	w, err := bitpack.NewWriter(c.NumBits)
	if err != nil {
		return nil, fmt.Errorf("interval: compress: %w", err)
	}
	for _, v := range xs {
		out = w.Write(c.Forward(v), out)
	}
	out = w.Close(out)
	return out, nil
}

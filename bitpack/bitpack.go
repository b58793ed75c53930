// Package bitpack implements the fixed-width bit packer the interval
// container uses for its body: a stream of unsigned integers (1-64
// bits wide) packed least-significant-bit first within each byte, with
// the final byte zero-padded at the most-significant end on Close.
//
// This is the "external, assumed provided" bit packer from the
// specification; it is implemented here in the same spirit as the
// teacher's packBits/unpackBits (internal/compression/helpers.go),
// generalized from a fixed uint32/32-bit-max packer to arbitrary
// 1-64-bit widths over a streaming writer.
package bitpack

import (
	"errors"
	"fmt"

	"github.com/kaelin-vasko/ipcolumn/u128"
)

// ErrWidthOutOfRange is returned when a requested bit width is not in [1, 64].
var ErrWidthOutOfRange = errors.New("bitpack: width must be in [1, 64]")

// Writer packs fixed-width unsigned integers into a byte buffer.
type Writer struct {
	width uint8
	mask  uint64
	acc   u128.U128
	bits  uint
}

// NewWriter creates a Writer for the given bit width, in [1, 64].
func NewWriter(width uint8) (*Writer, error) {
	if width < 1 || width > 64 {
		return nil, fmt.Errorf("%w: got %d", ErrWidthOutOfRange, width)
	}
	var mask uint64
	if width == 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << width) - 1
	}
	return &Writer{width: width, mask: mask}, nil
}

// Write appends value (truncated to the writer's width) to out and
// returns the extended slice.
func (w *Writer) Write(value uint64, out []byte) []byte {
	v := u128.FromUint64(value & w.mask)
	w.acc = w.acc.Or(v.Shl(w.bits))
	w.bits += uint(w.width)
	for w.bits >= 8 {
		out = append(out, w.acc.LowByte())
		w.acc = w.acc.Shr(8)
		w.bits -= 8
	}
	return out
}

// Close flushes any remaining partial byte (zero-padded at the
// most-significant end) and returns the extended slice.
func (w *Writer) Close(out []byte) []byte {
	if w.bits > 0 {
		out = append(out, w.acc.LowByte())
		w.acc = u128.Zero
		w.bits = 0
	}
	return out
}

// Get extracts the idx-th fixed-width code from body at the given
// width, assuming LSB-first packing as produced by Writer.
func Get(idx uint64, width uint8, body []byte) uint64 {
	bitPos := idx * uint64(width)
	var result uint64
	for bit := uint8(0); bit < width; bit++ {
		pos := bitPos + uint64(bit)
		byteIdx := pos / 8
		bitIdx := pos % 8
		if int(byteIdx) < len(body) && body[byteIdx]&(1<<bitIdx) != 0 {
			result |= uint64(1) << bit
		}
	}
	return result
}

// ByteLen returns the number of bytes needed to pack count values of
// the given width (ceil(count*width/8)), matching what Close produces.
func ByteLen(count uint64, width uint8) uint64 {
	totalBits := count * uint64(width)
	return (totalBits + 7) / 8
}

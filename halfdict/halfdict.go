// Package halfdict implements the HalfDict-Quantile outer layer
// (spec §4.5, container format §6.2): a most-common-values dictionary
// that remaps the top-N most frequent values to small ordinals and
// shifts everything else up by N, then delegates the remapped sequence
// to an inner codec.
//
// Grounded on _examples/original_source/src/half_dict_quantile.rs,
// which hard-codes N=4096 and never serializes the dictionary
// (spec.md §9 open question 1). This package makes N a caller
// parameter and serializes it — see DESIGN.md for the resolution.
package halfdict

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/kaelin-vasko/ipcolumn/u128"
)

// Dictionary is the trained most-common-values table: Values[k] is the
// original value for ordinal k, in descending-frequency order (ties
// broken ascending by value, per spec design notes §9, so encoded
// output is reproducible).
type Dictionary struct {
	Values []u128.U128
}

// Size returns N, the dictionary size.
func (d Dictionary) Size() int { return len(d.Values) }

// Train selects the top maxSize most frequent values in xs by exact
// count, breaking ties by ascending value for determinism.
func Train(xs []u128.U128, maxSize int) Dictionary {
	counts := make(map[u128.U128]int, len(xs))
	for _, v := range xs {
		counts[v]++
	}

	type entry struct {
		value u128.U128
		count int
	}
	entries := make([]entry, 0, len(counts))
	for v, c := range counts {
		entries = append(entries, entry{value: v, count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].value.Less(entries[j].value)
	})

	if maxSize < len(entries) {
		entries = entries[:maxSize]
	}

	values := make([]u128.U128, len(entries))
	for i, e := range entries {
		values[i] = e.value
	}
	return Dictionary{Values: values}
}

// ordinals builds the value -> ordinal lookup for this dictionary.
func (d Dictionary) ordinals() map[u128.U128]uint64 {
	m := make(map[u128.U128]uint64, len(d.Values))
	for i, v := range d.Values {
		m[v] = uint64(i)
	}
	return m
}

// Remap produces ys of the same length as xs: dictionary members map
// to their ordinal; everything else shifts up by N.
func (d Dictionary) Remap(xs []u128.U128) []u128.U128 {
	ords := d.ordinals()
	n := uint64(len(d.Values))
	ys := make([]u128.U128, len(xs))
	for i, x := range xs {
		if k, ok := ords[x]; ok {
			ys[i] = u128.FromUint64(k)
		} else {
			ys[i] = x.AddUint64(n)
		}
	}
	return ys
}

// Unmap reverses Remap: for each y, produce dict[y] if y < N, else y - N.
// Every y handed back by an inner codec is one Remap itself produced, so
// this cannot fail: there is no error return.
func (d Dictionary) Unmap(ys []u128.U128) []u128.U128 {
	n := uint64(len(d.Values))
	xs := make([]u128.U128, len(ys))
	for i, y := range ys {
		yLo, fits := y.Uint64()
		if fits && yLo < n {
			xs[i] = d.Values[yLo]
			continue
		}
		xs[i] = y.SubUint64(n)
	}
	return xs
}

// WriteHeader serializes the dictionary: N as a fixed 32-bit
// little-endian integer, followed by N×16 raw bytes in ordinal order,
// big-endian within each value to match canonical IP byte order
// (§6.2 points 1-2).
func (d Dictionary) WriteHeader(out []byte) ([]byte, error) {
	if len(d.Values) > 0xFFFFFFFF {
		return nil, fmt.Errorf("halfdict: dictionary size %d exceeds uint32 range", len(d.Values))
	}
	var sizeBuf [4]byte
	binary.LittleEndian.PutUint32(sizeBuf[:], uint32(len(d.Values)))
	out = append(out, sizeBuf[:]...)
	for _, v := range d.Values {
		b := v.Bytes16()
		out = append(out, b[:]...)
	}
	return out, nil
}

// ReadHeader reads a dictionary header from buf, returning the
// Dictionary and the remaining slice.
func ReadHeader(buf []byte) (Dictionary, []byte, error) {
	if len(buf) < 4 {
		return Dictionary{}, nil, fmt.Errorf("halfdict: truncated dictionary size")
	}
	n := binary.LittleEndian.Uint32(buf[:4])
	rest := buf[4:]

	need := int(n) * 16
	if len(rest) < need {
		return Dictionary{}, nil, fmt.Errorf("halfdict: truncated dictionary: need %d bytes, have %d", need, len(rest))
	}

	values := make([]u128.U128, n)
	for i := uint32(0); i < n; i++ {
		var b [16]byte
		copy(b[:], rest[i*16:i*16+16])
		values[i] = u128.FromBytes16(b)
	}
	return Dictionary{Values: values}, rest[need:], nil
}

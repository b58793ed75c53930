package interval

import (
	"sort"

	"github.com/kaelin-vasko/ipcolumn/u128"
)

// Anchor pairs a value-space base with its compact-space image. Anchors
// collapse a run of unused gap values in the value domain down to a
// single compact code.
type Anchor struct {
	ValueBase   u128.U128
	CompactBase uint64
}

// AnchorMap is the forward anchor table, ordered ascending by ValueBase.
// Queried with "greatest key <= v"; built once by the trainer and never
// mutated, so a sorted slice with binary search is preferred over a
// tree (see spec design notes: built once, queried many times).
type AnchorMap struct {
	anchors []Anchor
}

// NewAnchorMap wraps a slice already sorted ascending by ValueBase.
func NewAnchorMap(anchors []Anchor) AnchorMap {
	return AnchorMap{anchors: anchors}
}

// Len reports the anchor count K.
func (m AnchorMap) Len() int { return len(m.anchors) }

// Anchors returns the underlying ascending slice (read-only use).
func (m AnchorMap) Anchors() []Anchor { return m.anchors }

// Forward maps a value to its compact code: find the greatest
// ValueBase <= v and return CompactBase + (v - ValueBase). If no
// anchor's ValueBase is <= v, the identity v (truncated to 64 bits) is
// returned; the trainer guarantees this branch is unreachable for any
// value that actually appeared in training.
func (m AnchorMap) Forward(v u128.U128) uint64 {
	i := sort.Search(len(m.anchors), func(i int) bool {
		return m.anchors[i].ValueBase.Cmp(v) > 0
	}) - 1
	if i < 0 {
		lo, _ := v.Uint64()
		return lo
	}
	a := m.anchors[i]
	delta, _ := v.Sub(a.ValueBase).Uint64()
	return a.CompactBase + delta
}

// InverseAnchor pairs a compact-space base with its value-space image.
type InverseAnchor struct {
	CompactBase uint64
	ValueBase   u128.U128
}

// InverseMap is the mirror anchor table, ordered ascending by
// CompactBase, used by the decompressor.
type InverseMap struct {
	anchors []InverseAnchor
}

// Invert builds the inverse map from the forward map.
func (m AnchorMap) Invert() InverseMap {
	inv := make([]InverseAnchor, len(m.anchors))
	for i, a := range m.anchors {
		inv[i] = InverseAnchor{CompactBase: a.CompactBase, ValueBase: a.ValueBase}
	}
	return InverseMap{anchors: inv}
}

// NewInverseMap wraps a slice already sorted ascending by CompactBase
// (used when reconstructing the inverse map directly from a decoded
// container header, without an intermediate forward map).
func NewInverseMap(anchors []InverseAnchor) InverseMap {
	return InverseMap{anchors: anchors}
}

// Len reports the anchor count K.
func (m InverseMap) Len() int { return len(m.anchors) }

// Inverse maps a compact code back to its original value: find the
// greatest CompactBase <= c and return ValueBase + (c - CompactBase).
// If no anchor's CompactBase is <= c, the identity c (widened to 128
// bits) is returned.
func (m InverseMap) Inverse(c uint64) u128.U128 {
	i := sort.Search(len(m.anchors), func(i int) bool {
		return m.anchors[i].CompactBase > c
	}) - 1
	if i < 0 {
		return u128.FromUint64(c)
	}
	a := m.anchors[i]
	return a.ValueBase.AddUint64(c - a.CompactBase)
}

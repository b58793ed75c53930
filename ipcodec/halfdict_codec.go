package ipcodec

import (
	"github.com/kaelin-vasko/ipcolumn/halfdict"
	"github.com/kaelin-vasko/ipcolumn/internal/logger"
)

// HalfDictCodec is the Codec implementation for the HalfDict-Quantile
// outer layer (spec §4.5-§4.6; container format §6.2), wrapping an
// IntervalCodec as the inner codec for the remapped sequence.
type HalfDictCodec struct {
	*halfdict.Outer
}

// NewHalfDictCodec returns a HalfDictCodec with a dictionary capped at
// dictSize entries and an inner IntervalCodec trained with
// costBudgetBits. log may be nil.
func NewHalfDictCodec(dictSize, costBudgetBits int, log *logger.Logger) *HalfDictCodec {
	inner := NewIntervalCodec(costBudgetBits)
	inner.Log = log
	return &HalfDictCodec{Outer: &halfdict.Outer{DictSize: dictSize, Inner: inner}}
}

var _ Codec = (*HalfDictCodec)(nil)

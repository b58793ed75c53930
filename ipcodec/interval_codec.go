package ipcodec

import (
	"fmt"

	"github.com/kaelin-vasko/ipcolumn/internal/logger"
	"github.com/kaelin-vasko/ipcolumn/interval"
	"github.com/kaelin-vasko/ipcolumn/u128"
)

// IntervalCodec is the Codec implementation for Interval Encoding
// (spec §4.2-§4.4, §4.6; container format §6.1). A zero-value
// IntervalCodec uses a cost budget of 0.
type IntervalCodec struct {
	// CostBudgetBits is the header-cost budget B passed to the trainer.
	CostBudgetBits int

	// Log receives Debug diagnostics from training; nil is safe.
	Log *logger.Logger
}

// NewIntervalCodec returns an IntervalCodec with the given cost budget.
func NewIntervalCodec(costBudgetBits int) *IntervalCodec {
	return &IntervalCodec{CostBudgetBits: costBudgetBits}
}

// Encode trains a fresh anchor map over values and writes the
// container. Empty input encodes to an empty byte sequence (§4.6).
func (c *IntervalCodec) Encode(values []u128.U128) ([]byte, error) {
	if len(values) == 0 {
		return nil, nil
	}

	compressor, err := interval.Train(values, c.CostBudgetBits, c.Log)
	if err != nil {
		return nil, fmt.Errorf("ipcodec: interval encode: %w", err)
	}

	out, err := compressor.Compress(values, nil)
	if err != nil {
		return nil, fmt.Errorf("ipcodec: interval encode: %w", err)
	}
	return out, nil
}

// Decode reads the container produced by Encode. Empty input decodes
// to an empty sequence (§4.6).
func (c *IntervalCodec) Decode(data []byte) ([]u128.U128, error) {
	if len(data) == 0 {
		return nil, nil
	}
	values, err := interval.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("ipcodec: interval decode: %w", err)
	}
	return values, nil
}

var _ Codec = (*IntervalCodec)(nil)

package interval

import (
	"container/heap"
	"fmt"
	"math"
	"math/bits"
	"sort"

	"github.com/kaelin-vasko/ipcolumn/internal/logger"
	"github.com/kaelin-vasko/ipcolumn/u128"
)

// ErrNotSorted is returned by TrainAnchors if the input slice is not
// sorted ascending (callers are expected to sort; Train sorts a private
// copy for them).
var ErrNotSorted = fmt.Errorf("interval: training input must be sorted ascending")

// ErrAmplitudeOverflow is the precondition-violation error from §7:
// the trainer failed to collapse the domain under 2^64, which the
// codec refuses to encode rather than silently truncate.
var ErrAmplitudeOverflow = fmt.Errorf("interval: post-training amplitude exceeds 64 bits")

// deltaItem is one candidate gap in the delta max-heap.
type deltaItem struct {
	delta u128.U128
	pos   int
}

// deltaHeap is a max-heap on delta, with ties broken by descending pos
// (matching the reference implementation's behavior when it pushes
// (delta, pos) tuples into a max-heap: equal deltas compare next on
// pos, and the larger tuple — hence larger pos — is popped first).
// This keeps tie-breaking deterministic as required by the spec.
type deltaHeap []deltaItem

func (h deltaHeap) Len() int { return len(h) }
func (h deltaHeap) Less(i, j int) bool {
	c := h[i].delta.Cmp(h[j].delta)
	if c != 0 {
		return c > 0
	}
	return h[i].pos > h[j].pos
}
func (h deltaHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *deltaHeap) Push(x interface{}) { *h = append(*h, x.(deltaItem)) }
func (h *deltaHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// TrainAnchors runs the greedy gap-removal algorithm of spec §4.2 over
// a sorted, non-empty slice of values with cost budget B (in bits),
// returning the resulting forward anchor map and the chosen bit width.
// log may be nil; when present it receives Debug diagnostics about the
// anchors accepted. Most callers want the higher-level Train in
// compressor.go, which sorts a copy and returns a ready-to-use
// Compressor.
func TrainAnchors(sortedXs []u128.U128, costBudgetBits int, log *logger.Logger) (AnchorMap, uint8, error) {
	if len(sortedXs) == 0 {
		return AnchorMap{}, 0, fmt.Errorf("interval: cannot train on empty input")
	}
	if !sort.SliceIsSorted(sortedXs, func(i, j int) bool { return sortedXs[i].Less(sortedXs[j]) }) {
		return AnchorMap{}, 0, ErrNotSorted
	}

	n := len(sortedXs)

	// Step 1: build the delta heap.
	h := make(deltaHeap, 0, n)
	for i, v := range sortedXs {
		var delta u128.U128
		if i == 0 {
			delta = v.AddUint64(1)
		} else {
			delta = v.Sub(sortedXs[i-1])
		}
		h = append(h, deltaItem{delta: delta, pos: i})
	}
	heap.Init(&h)

	// Step 2: initialize amplitude.
	amplitude := sortedXs[n-1].AddUint64(1)
	amplitudeLog2 := log2(amplitude.Float64())
	if amplitude.IsZero() {
		// xs[n-1] is 2^128-1, so the amplitude 2^128 wrapped to zero.
		amplitudeLog2 = 128
	}

	// Step 3: greedy gap removal.
	var blanks []int
	for h.Len() > 0 {
		item := heap.Pop(&h).(deltaItem)
		nextAmplitude := amplitude.Sub(item.delta).AddUint64(1)
		nextLog2 := log2(nextAmplitude.Float64())
		gained := int(float64(n) * (amplitudeLog2 - nextLog2))
		if costBudgetBits >= gained {
			break
		}
		amplitude = nextAmplitude
		amplitudeLog2 = nextLog2
		blanks = append(blanks, item.pos)
		log.Debug("interval: accepted anchor", map[string]interface{}{
			"pos":     item.pos,
			"gained":  gained,
			"budget":  costBudgetBits,
		})
	}

	sort.Ints(blanks)

	lo, fits := amplitude.Uint64()
	if !fits || amplitude.IsZero() {
		return AnchorMap{}, 0, ErrAmplitudeOverflow
	}

	// Step 4: build anchors.
	anchors := make([]Anchor, 0, len(blanks))
	offset := u128.Zero
	prevBase := u128.Zero
	for _, pos := range blanks {
		value := sortedXs[pos]
		if pos == 0 {
			offLo, _ := offset.Uint64()
			anchors = append(anchors, Anchor{ValueBase: value, CompactBase: offLo})
			prevBase = value
			continue
		}
		offset = offset.Add(sortedXs[pos-1].Sub(prevBase)).AddUint64(1)
		offLo, fits := offset.Uint64()
		if !fits {
			return AnchorMap{}, 0, ErrAmplitudeOverflow
		}
		anchors = append(anchors, Anchor{ValueBase: value, CompactBase: offLo})
		prevBase = value
	}

	// Step 5: bit width.
	numBits := ceilLog2(lo)
	if numBits < 1 {
		numBits = 1
	}

	log.Debug("interval: training complete", map[string]interface{}{
		"num_anchors": len(anchors),
		"num_bits":    numBits,
		"amplitude":   lo,
	})

	return NewAnchorMap(anchors), uint8(numBits), nil
}

// log2 returns log2(x) for x > 0, and 0 for x <= 0.
func log2(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log2(x)
}

// ceilLog2 returns ceil(log2(a)) for a >= 1, computed exactly on the
// integer (not via floating point) since a is known to fit in 64 bits
// by this point: the number of bits needed to hold values [0, a-1].
func ceilLog2(a uint64) int {
	if a <= 1 {
		return 0
	}
	return bits.Len64(a - 1)
}

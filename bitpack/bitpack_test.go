package bitpack

import (
	"math"
	"testing"
)

func packAll(t *testing.T, width uint8, values []uint64) []byte {
	t.Helper()
	w, err := NewWriter(width)
	if err != nil {
		t.Fatalf("NewWriter(%d): %v", width, err)
	}
	var out []byte
	for _, v := range values {
		out = w.Write(v, out)
	}
	return w.Close(out)
}

func TestRoundTripVariousWidths(t *testing.T) {
	widths := []uint8{1, 2, 3, 7, 8, 9, 16, 31, 32, 63, 64}

	for _, width := range widths {
		var mask uint64
		if width == 64 {
			mask = math.MaxUint64
		} else {
			mask = (uint64(1) << width) - 1
		}
		values := []uint64{0, 1, mask, mask / 2, mask / 3}

		packed := packAll(t, width, values)
		for i, want := range values {
			got := Get(uint64(i), width, packed)
			if got != want {
				t.Fatalf("width=%d idx=%d: got %d, want %d", width, i, got, want)
			}
		}
	}
}

func TestByteLenMatchesCloseOutputLength(t *testing.T) {
	cases := []struct {
		width uint8
		count int
	}{
		{1, 1}, {1, 7}, {1, 8}, {1, 9},
		{3, 5}, {7, 10}, {64, 3},
	}
	for _, c := range cases {
		values := make([]uint64, c.count)
		packed := packAll(t, c.width, values)
		want := ByteLen(uint64(c.count), c.width)
		if uint64(len(packed)) != want {
			t.Fatalf("width=%d count=%d: ByteLen=%d, actual packed len=%d", c.width, c.count, want, len(packed))
		}
	}
}

func TestMaskingTruncatesOversizedValues(t *testing.T) {
	w, err := NewWriter(4)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	out := w.Write(0xFF, nil) // only the low 4 bits (0xF) should survive
	out = w.Close(out)
	if got := Get(0, 4, out); got != 0xF {
		t.Fatalf("expected masked value 0xF, got %d", got)
	}
}

func TestNewWriterRejectsOutOfRangeWidth(t *testing.T) {
	if _, err := NewWriter(0); err == nil {
		t.Fatal("expected error for width 0")
	}
	if _, err := NewWriter(65); err == nil {
		t.Fatal("expected error for width 65")
	}
}

func TestWidth64FullRange(t *testing.T) {
	values := []uint64{0, 1, math.MaxUint64, math.MaxUint64 / 2}
	packed := packAll(t, 64, values)
	for i, want := range values {
		if got := Get(uint64(i), 64, packed); got != want {
			t.Fatalf("idx=%d: got %d, want %d", i, got, want)
		}
	}
}

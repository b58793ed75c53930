package vint

import (
	"math"
	"testing"

	"github.com/kaelin-vasko/ipcolumn/u128"
)

func u128Max() u128.U128 {
	return u128.U128{Hi: math.MaxUint64, Lo: math.MaxUint64}
}

func TestRoundTripUint64Values(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 16383, 16384, math.MaxUint64}

	for _, v := range values {
		out := SerializeUint64(v, nil)
		got, rest, err := DeserializeUint64(out)
		if err != nil {
			t.Fatalf("SerializeUint64(%d): deserialize failed: %v", v, err)
		}
		if got != v {
			t.Fatalf("SerializeUint64(%d): round-trip mismatch, got %d", v, got)
		}
		if len(rest) != 0 {
			t.Fatalf("SerializeUint64(%d): expected empty remainder, got %d bytes", v, len(rest))
		}
	}
}

func TestRoundTrip128BitValues(t *testing.T) {
	cases := []u128.U128{
		u128.Zero,
		u128.FromUint64(1),
		u128Max(),
		{Hi: 1, Lo: 0},
		{Hi: math.MaxUint64, Lo: 0},
	}

	for _, v := range cases {
		out := Serialize(v, nil)
		got, rest, err := Deserialize(out)
		if err != nil {
			t.Fatalf("Serialize(%+v): deserialize failed: %v", v, err)
		}
		if got != v {
			t.Fatalf("Serialize(%+v): round-trip mismatch, got %+v", v, got)
		}
		if len(rest) != 0 {
			t.Fatalf("Serialize(%+v): expected empty remainder, got %d bytes", v, len(rest))
		}
	}
}

func TestZeroEncodesAsSingleByte(t *testing.T) {
	out := SerializeUint64(0, nil)
	if len(out) != 1 || out[0] != 0x80 {
		t.Fatalf("expected zero to encode as [0x80], got %v", out)
	}
}

func TestSerializeAppendsToExistingSlice(t *testing.T) {
	prefix := []byte{0xaa, 0xbb}
	out := SerializeUint64(300, prefix)
	if out[0] != 0xaa || out[1] != 0xbb {
		t.Fatalf("Serialize must append rather than overwrite, got %v", out)
	}
}

func TestDeserializeTruncated(t *testing.T) {
	// A continuation byte (no stop bit) with nothing following.
	_, _, err := Deserialize([]byte{0x01})
	if err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestDeserializeTooLong(t *testing.T) {
	in := make([]byte, 20)
	for i := range in {
		in[i] = 0x01 // never sets the stop bit
	}
	_, _, err := Deserialize(in)
	if err != ErrTooLong {
		t.Fatalf("expected ErrTooLong, got %v", err)
	}
}

func TestDeserializeLeavesRemainder(t *testing.T) {
	out := SerializeUint64(42, nil)
	out = append(out, 0xde, 0xad)
	got, rest, err := DeserializeUint64(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if len(rest) != 2 || rest[0] != 0xde || rest[1] != 0xad {
		t.Fatalf("expected remainder [0xde 0xad], got %v", rest)
	}
}

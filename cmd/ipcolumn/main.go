// Command ipcolumn is a small demo binary proving the codec packages
// wire together end to end. It carries none of the ingestion, stats, or
// benchmarking responsibilities named out of scope in the specification
// this module implements (see SPEC_FULL.md §6.3A) — no stdin parsing, no
// flags, no histogram, no budget sweep. It only exercises both codecs
// against an embedded sample and logs the resulting sizes.
package main

import (
	"math/rand"

	"github.com/kaelin-vasko/ipcolumn/internal/config"
	"github.com/kaelin-vasko/ipcolumn/internal/logger"
	"github.com/kaelin-vasko/ipcolumn/ipcodec"
	"github.com/kaelin-vasko/ipcolumn/u128"
)

// sampleColumn builds a small, deterministic stand-in for a column of
// IP addresses: 2048 values cycling through three very common
// addresses, then 2048 addresses drawn at random from the single
// 65536-address block 172.16.0.0/16, which is the shape both codecs are
// designed for.
func sampleColumn() []u128.U128 {
	rng := rand.New(rand.NewSource(1))
	values := make([]u128.U128, 0, 4096)

	common := []uint64{0x0a000001, 0x0a000002, 0xc0a80001}
	for i := 0; i < 2048; i++ {
		values = append(values, u128.FromUint64(common[i%len(common)]))
	}
	base := uint64(0xac100000)
	for i := 0; i < 2048; i++ {
		values = append(values, u128.FromUint64(base+uint64(rng.Intn(1<<16))))
	}
	return values
}

func main() {
	cfg := config.Load()
	log := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		Component:   "ipcolumn-demo",
	})

	values := sampleColumn()
	rawSize := len(values) * 16
	log.Info("loaded sample column", map[string]interface{}{
		"count":    len(values),
		"raw_size": rawSize,
	})

	interval := ipcodec.NewIntervalCodec(cfg.CostBudgetBits)
	interval.Log = log
	encodeAndReport(log, "interval", interval, values, rawSize)

	halfDict := ipcodec.NewHalfDictCodec(cfg.DictSize, cfg.CostBudgetBits, log)
	encodeAndReport(log, "half-dict-quantile", halfDict, values, rawSize)
}

func encodeAndReport(log *logger.Logger, name string, codec ipcodec.Codec, values []u128.U128, rawSize int) {
	encoded, err := codec.Encode(values)
	if err != nil {
		log.Error("encode failed", err, map[string]interface{}{"codec": name})
		return
	}

	decoded, err := codec.Decode(encoded)
	if err != nil {
		log.Error("decode failed", err, map[string]interface{}{"codec": name})
		return
	}
	if len(decoded) != len(values) {
		log.Error("round trip length mismatch", nil, map[string]interface{}{"codec": name})
		return
	}
	for i := range values {
		if decoded[i] != values[i] {
			log.Error("round trip value mismatch", nil, map[string]interface{}{"codec": name, "index": i})
			return
		}
	}

	log.Info("codec round trip ok", map[string]interface{}{
		"codec":        name,
		"encoded_size": len(encoded),
		"raw_size":     rawSize,
	})
}

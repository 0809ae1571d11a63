// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// The tickgen command writes a synthetic fixture of JSON tick records,
// suitable as input to the tickstream command or to jsonstream's
// benchmarks.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aristanetworks/glog"
	"golang.org/x/exp/rand"
)

const (
	defaultSymbol   = "BTC-200730-9000-C"
	startTime       = 1592317127349
	oneSecondMillis = 1000
)

type tradeData struct {
	symbol             string
	priceChange        float64
	priceChangePercent float64
	lastPrice          float64
	lastQty            float64
	open               float64
	high               float64
	low                float64
	volume             float64
	amount             float64
	bidPrice           float64
	askPrice           float64
	openTime           uint64
	closeTime          uint64
	firstTradeID       uint64
	tradeCount         uint64
	strikePrice        float64
	exercisePrice      float64
}

func generate(rng *rand.Rand, symbol string, openTime, closeTime uint64) tradeData {
	basePrice := 9000.0 + rng.Float64()*2000.0
	return tradeData{
		symbol:             symbol,
		priceChange:        -100.0 + rng.Float64()*200.0,
		priceChangePercent: -5.0 + rng.Float64()*10.0,
		lastPrice:          basePrice,
		lastQty:            1.0 + rng.Float64()*99.0,
		open:               basePrice - 50.0 + rng.Float64()*100.0,
		high:               basePrice + rng.Float64()*100.0,
		low:                basePrice - rng.Float64()*100.0,
		volume:             1.0 + rng.Float64()*999.0,
		amount:             1.0 + rng.Float64()*99.0,
		bidPrice:           basePrice - rng.Float64()*10.0,
		askPrice:           basePrice + rng.Float64()*10.0,
		openTime:           openTime,
		closeTime:          closeTime,
		firstTradeID:       1 + uint64(rng.Int63n(999)),
		tradeCount:         1 + uint64(rng.Int63n(99)),
		strikePrice:        8000.0 + rng.Float64()*4000.0,
		exercisePrice:      3000.0 + rng.Float64()*9000.0,
	}
}

func (t tradeData) writeJSON(w io.Writer) (int, error) {
	return fmt.Fprintf(w,
		`{"symbol":"%s","priceChange":"%.4f","priceChangePercent":"%.4f","lastPrice":"%.2f",`+
			`"lastQty":"%.2f","open":"%.2f","high":"%.2f","low":"%.2f","volume":"%.2f",`+
			`"amount":"%.2f","bidPrice":"%.2f","askPrice":"%.2f","openTime":%d,"closeTime":%d,`+
			`"firstTradeId":%d,"tradeCount":%d,"strikePrice":"%.2f","exercisePrice":"%.4f"}`,
		t.symbol, t.priceChange, t.priceChangePercent, t.lastPrice, t.lastQty, t.open, t.high,
		t.low, t.volume, t.amount, t.bidPrice, t.askPrice, t.openTime, t.closeTime,
		t.firstTradeID, t.tradeCount, t.strikePrice, t.exercisePrice)
}

func main() {
	output := flag.String("output", "ticks.json", "Path of the fixture file to write")
	targetSize := flag.Int64("target-size", 16<<20, "Approximate size in bytes of the generated file")
	symbol := flag.String("symbol", defaultSymbol, "Symbol to stamp every record with")
	seed := flag.Uint64("seed", 42, "Seed for the pseudo-random generator, for reproducible fixtures")

	flag.Parse()

	f, err := os.Create(*output)
	if err != nil {
		glog.Fatalf("can't create %q: %v", *output, err)
	}
	defer f.Close()

	if err := generateFixture(f, *targetSize, *symbol, *seed); err != nil {
		glog.Fatal(err)
	}

	glog.Infof("fixture written successfully: %s", *output)
}

// generateFixture writes a JSON array of synthetic tick records to w,
// stopping once the array's approximate encoded size reaches
// targetSize, then closing the array without a trailing comma.
func generateFixture(f *os.File, targetSize int64, symbol string, seed uint64) error {
	w := bufio.NewWriter(f)
	if _, err := io.WriteString(w, "[\n"); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	var totalSize int64
	openTime := uint64(startTime)

	for totalSize < targetSize {
		closeTime := openTime + oneSecondMillis
		trade := generate(rng, symbol, openTime, closeTime)

		if _, err := io.WriteString(w, "  "); err != nil {
			return err
		}
		n, err := trade.writeJSON(w)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, ",\n"); err != nil {
			return err
		}
		totalSize += int64(n) + 2

		openTime = closeTime + oneSecondMillis
	}

	if err := w.Flush(); err != nil {
		return err
	}

	// Strip the trailing ",\n" left by the last record and close the array.
	if _, err := f.Seek(-2, io.SeekEnd); err != nil {
		return err
	}
	if err := f.Truncate(totalOffset(f)); err != nil {
		return err
	}
	if _, err := io.WriteString(f, "\n]\n"); err != nil {
		return err
	}
	return nil
}

func totalOffset(f *os.File) int64 {
	off, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		glog.Fatalf("seek failed: %v", err)
	}
	return off
}

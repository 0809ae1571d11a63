// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package pipeline

import (
	"context"
	"strings"
	"testing"
)

type stubLogger struct{ infos []string }

func (l *stubLogger) Info(args ...interface{})                 {}
func (l *stubLogger) Infof(format string, args ...interface{}) { l.infos = append(l.infos, format) }
func (l *stubLogger) Error(args ...interface{})                {}
func (l *stubLogger) Errorf(format string, args ...interface{}) {}
func (l *stubLogger) Fatal(args ...interface{})                 {}
func (l *stubLogger) Fatalf(format string, args ...interface{}) {}

func TestRunAccumulatesAcrossSmallBlocks(t *testing.T) {
	doc := `[` +
		`{"symbol":"BTC","volume":"5.00","amount":"1.00","bidPrice":"999.34","askPrice":"1000.23","tradeCount":5},` +
		`{"symbol":"ETH","volume":"2.00","amount":"0.50","bidPrice":"100.00","askPrice":"101.00","tradeCount":2}` +
		`]`

	cfg := &Config{BlockSize: 7, QueueSize: 2, SymbolCacheSize: 10}
	log := &stubLogger{}
	m := NewMetrics()

	res, err := Run(context.Background(), cfg, strings.NewReader(doc), log, m)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Stats.RecordsSeen() != 2 {
		t.Errorf("RecordsSeen() = %d; want 2", res.Stats.RecordsSeen())
	}
	if res.Stats.TotalVolume != 7.00 {
		t.Errorf("TotalVolume = %v; want 7", res.Stats.TotalVolume)
	}
	if res.SymbolsTracked != 2 {
		t.Errorf("SymbolsTracked = %d; want 2", res.SymbolsTracked)
	}
}

func TestRunEvictsFromBoundedSymbolCache(t *testing.T) {
	doc := `[` +
		`{"symbol":"AAA","tradeCount":1},` +
		`{"symbol":"BBB","tradeCount":1},` +
		`{"symbol":"CCC","tradeCount":1}` +
		`]`

	cfg := &Config{BlockSize: 64 * 1024, QueueSize: 1, SymbolCacheSize: 2}
	log := &stubLogger{}
	m := NewMetrics()

	res, err := Run(context.Background(), cfg, strings.NewReader(doc), log, m)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.SymbolsTracked != 2 {
		t.Errorf("SymbolsTracked = %d; want 2 (bounded by SymbolCacheSize)", res.SymbolsTracked)
	}
	if len(log.infos) == 0 {
		t.Error("expected an eviction to be logged")
	}
}

func TestRunPropagatesParseErrors(t *testing.T) {
	cfg := &Config{BlockSize: 4, QueueSize: 1, SymbolCacheSize: 4}
	m := NewMetrics()

	_, err := Run(context.Background(), cfg, strings.NewReader("not json"), &stubLogger{}, m)
	if err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestRunRespectsContextCancellation(t *testing.T) {
	// The input is 1 MiB of unclosed '[' bytes read in 4 KiB blocks;
	// with the context already canceled, Run must return an error
	// rather than a result.
	cfg := &Config{BlockSize: 4096, QueueSize: 1, SymbolCacheSize: 4}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, cfg, strings.NewReader(strings.Repeat("[", 1<<20)), &stubLogger{}, nil)
	if err == nil {
		t.Fatal("expected a context cancellation error")
	}
}

// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package pipeline wires jsonstream, internal/stats and hashtable
// together into a producer/consumer feed: one goroutine reads an input
// in fixed-size blocks and hands them over a bounded channel, while
// another feeds the blocks into a resumable parser, accumulates
// statistics, and maintains a bounded recency cache of symbols seen.
package pipeline

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/aristanetworks/tickstream/hashtable"
	"github.com/aristanetworks/tickstream/internal/stats"
	"github.com/aristanetworks/tickstream/jsonstream"
	"github.com/aristanetworks/tickstream/logger"
)

// Result is what a completed pipeline run produced.
type Result struct {
	Stats           stats.Accumulator
	SymbolsTracked  int
	SymbolCacheSize int
}

// Run reads r to completion, parsing it as a stream of tick records,
// and returns the accumulated statistics. It stops early and returns
// ctx.Err() if ctx is canceled before the input is exhausted.
func Run(ctx context.Context, cfg *Config, r io.Reader, log logger.Logger, m *Metrics) (*Result, error) {
	blocks := make(chan []byte, cfg.QueueSize)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(blocks)
		return produce(gCtx, r, cfg.BlockSize, blocks, m)
	})

	var acc stats.Accumulator
	cache := hashtable.NewStrings[int](cfg.SymbolCacheSize)

	g.Go(func() error {
		return consume(gCtx, blocks, &acc, cache, log, m)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{
		Stats:           acc,
		SymbolsTracked:  cache.Len(),
		SymbolCacheSize: cfg.SymbolCacheSize,
	}, nil
}

// produce reads r in cfg.BlockSize chunks and sends copies of them on
// out, respecting cancellation. It returns nil on a clean io.EOF.
func produce(ctx context.Context, r io.Reader, blockSize int, out chan<- []byte, m *Metrics) error {
	buf := make([]byte, blockSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case out <- chunk:
				if m != nil {
					m.QueueDepth.Set(float64(len(out)))
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// consume drains blocks into a resumable parser, updating acc and the
// symbol cache as records complete, until the channel closes.
func consume(
	ctx context.Context,
	blocks <-chan []byte,
	acc *stats.Accumulator,
	cache *hashtable.Table[string, int],
	log logger.Logger,
	m *Metrics,
) error {
	var currentKey string
	var lastRecordsSeen uint64
	statsHandler := acc.Handler()
	p := jsonstream.New(func(e jsonstream.Event) {
		statsHandler(e)
		switch e.Kind {
		case jsonstream.EventKey:
			currentKey = e.Text
		case jsonstream.EventString:
			if currentKey == "symbol" {
				trackSymbol(cache, e.Text, log, m)
			}
			currentKey = ""
		case jsonstream.EventNumber:
			currentKey = ""
		case jsonstream.EventEndObject:
			currentKey = ""
		}
	})

	for {
		select {
		case chunk, ok := <-blocks:
			if !ok {
				if _, err := p.Parse(nil); err != nil {
					if m != nil {
						m.ParseErrors.Inc()
					}
					return err
				}
				return nil
			}
			if _, err := p.Parse(chunk); err != nil {
				if m != nil {
					m.ParseErrors.Inc()
				}
				return err
			}
			if m != nil {
				if seen := acc.RecordsSeen(); seen > lastRecordsSeen {
					m.TicksProcessed.Add(float64(seen - lastRecordsSeen))
					lastRecordsSeen = seen
				}
				m.QueueDepth.Set(float64(len(blocks)))
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// trackSymbol records symbol as the most recently seen entry in the
// bounded cache, evicting the least-recently-seen symbol first if the
// cache is full and symbol is not already present.
func trackSymbol(cache *hashtable.Table[string, int], symbol string, log logger.Logger, m *Metrics) {
	if _, ok := cache.Get(symbol); ok {
		// A full table rejects even an update, so move the symbol to the
		// newest position by deleting and reinserting it.
		if !cache.Insert(symbol, 0) {
			cache.Delete(symbol)
			cache.Insert(symbol, 0)
		}
		return
	}
	if !cache.Insert(symbol, 0) {
		if oldest, _, ok := cache.First(); ok {
			cache.Delete(oldest)
			if m != nil {
				m.SymbolCacheEvictions.Inc()
			}
			if log != nil {
				log.Infof("symbol cache full, evicted %s to make room for %s", oldest, symbol)
			}
		}
		cache.Insert(symbol, 0)
	}
}

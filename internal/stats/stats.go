// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package stats implements an illustrative statistics consumer: a
// small event-driven accumulator fed directly by jsonstream events,
// demonstrating that aggregate values can be computed from a document
// without ever materializing it as a tree of objects.
package stats

import (
	"strconv"

	"github.com/aristanetworks/tickstream/jsonstream"
)

// field identifies which accumulator the next String/Number event
// should update. fieldNone is the sink state for unrecognized keys.
type field int

const (
	fieldNone field = iota
	fieldPriceChange
	fieldLastQty
	fieldVolume
	fieldAmount
	fieldBidPrice
	fieldAskPrice
	fieldTradeCount
)

var keyToField = map[string]field{
	"priceChange": fieldPriceChange,
	"lastQty":     fieldLastQty,
	"volume":      fieldVolume,
	"amount":      fieldAmount,
	"bidPrice":    fieldBidPrice,
	"askPrice":    fieldAskPrice,
	"tradeCount":  fieldTradeCount,
}

// Accumulator holds the running aggregates derived from a stream of
// tick records. Zero value is ready to use.
type Accumulator struct {
	LastPrice       float64
	LastQty         float64
	TotalVolume     float64
	TotalAmount     float64
	MaxBidPrice     float64
	MinAskPrice     float64
	TotalTradeCount uint64

	current      field
	sawAnyBid    bool
	sawAnyAsk    bool
	recordsSeen  uint64
	currentDepth int
}

// RecordsSeen returns the number of top-level array elements observed
// so far (a proxy for "ticks processed").
func (a *Accumulator) RecordsSeen() uint64 {
	return a.recordsSeen
}

// Handler returns a jsonstream.Handler that feeds events into a.
func (a *Accumulator) Handler() jsonstream.Handler {
	return a.handle
}

func (a *Accumulator) handle(e jsonstream.Event) {
	switch e.Kind {
	case jsonstream.EventStartObject:
		a.currentDepth++
	case jsonstream.EventEndObject:
		if a.currentDepth == 1 {
			a.recordsSeen++
		}
		a.currentDepth--
	case jsonstream.EventKey:
		a.current = keyToField[e.Text]
	case jsonstream.EventString:
		a.consumeString(e.Text)
	case jsonstream.EventNumber:
		a.consumeNumber(e.Number)
	}
}

func (a *Accumulator) consumeString(text string) {
	field := a.current
	a.current = fieldNone
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return
	}
	a.apply(field, v)
}

func (a *Accumulator) consumeNumber(v float64) {
	field := a.current
	a.current = fieldNone
	a.apply(field, v)
}

func (a *Accumulator) apply(f field, v float64) {
	switch f {
	case fieldPriceChange:
		a.LastPrice = v
	case fieldLastQty:
		a.LastQty = v
	case fieldVolume:
		a.TotalVolume += v
	case fieldAmount:
		a.TotalAmount += v
	case fieldBidPrice:
		if !a.sawAnyBid || v > a.MaxBidPrice {
			a.MaxBidPrice = v
		}
		a.sawAnyBid = true
	case fieldAskPrice:
		if !a.sawAnyAsk || v < a.MinAskPrice {
			a.MinAskPrice = v
		}
		a.sawAnyAsk = true
	case fieldTradeCount:
		a.TotalTradeCount += uint64(v)
	}
}

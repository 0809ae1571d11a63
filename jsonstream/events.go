// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package jsonstream implements a streaming, chunk-resumable JSON
// tokenizer. Input is supplied as a sequence of arbitrary byte slices;
// chunk boundaries may fall anywhere, including mid-token. Structural
// events are delivered through a Handler callback. The text of String
// and Key events is copied out of the parser's internal buffer into a
// new string for each event, so it stays valid after the callback
// returns; payloads are not handed to the callback zero-copy.
//
// Escape sequences inside strings are not decoded: a backslash simply
// causes the following byte to be skipped when scanning for the
// closing quote, so the text handed to the callback is the raw,
// undecoded source bytes between the quotes. Trailing commas in arrays
// and objects are accepted. Numbers are recognized by a permissive
// digit/dot/exponent/sign lexical class and parsed with strconv, not
// validated against strict JSON number grammar. None of this aims for
// RFC 8259 conformance.
package jsonstream

// EventKind identifies the kind of structural token an Event reports.
type EventKind uint8

const (
	EventNull EventKind = iota
	EventBool
	EventNumber
	EventString
	EventKey
	EventStartObject
	EventEndObject
	EventStartArray
	EventEndArray
)

func (k EventKind) String() string {
	switch k {
	case EventNull:
		return "Null"
	case EventBool:
		return "Bool"
	case EventNumber:
		return "Number"
	case EventString:
		return "String"
	case EventKey:
		return "Key"
	case EventStartObject:
		return "StartObject"
	case EventEndObject:
		return "EndObject"
	case EventStartArray:
		return "StartArray"
	case EventEndArray:
		return "EndArray"
	default:
		return "Unknown"
	}
}

// Event is a single structural token emitted by the parser. Bool,
// Number, and Text are only meaningful for the EventKind that produces
// them. Text is a copy of the source bytes, owned by the receiver.
type Event struct {
	Kind   EventKind
	Bool   bool
	Number float64
	Text   string
}

// Handler receives parser events. Text is already a copy, so a Handler
// may keep it after the call returns.
type Handler func(Event)

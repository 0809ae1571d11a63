// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package main

import (
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/aristanetworks/tickstream/jsonstream"
)

func TestGenerateFixtureProducesParseableArray(t *testing.T) {
	f, err := ioutil.TempFile("", "tickgen-*.json")
	if err != nil {
		t.Fatalf("TempFile: %v", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if err := generateFixture(f, 4096, "BTC-TEST", 7); err != nil {
		t.Fatalf("generateFixture: %v", err)
	}

	data, err := ioutil.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.HasSuffix(strings.TrimSpace(string(data)), ",") {
		t.Fatalf("fixture ends with a trailing comma: %q", data)
	}

	var records int
	depth := 0
	p := jsonstream.New(func(e jsonstream.Event) {
		switch e.Kind {
		case jsonstream.EventStartObject:
			depth++
		case jsonstream.EventEndObject:
			if depth == 1 {
				records++
			}
			depth--
		}
	})
	if _, err := p.Parse(data); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := p.Parse(nil); err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if records == 0 {
		t.Fatal("expected at least one record")
	}
}

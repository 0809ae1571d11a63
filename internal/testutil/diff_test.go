// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package testutil

import "testing"

type recordedEvent struct {
	Kind int
	Text string
}

func TestDiffEqualValuesReturnEmptyString(t *testing.T) {
	a := []recordedEvent{{Kind: 1, Text: "BTC"}, {Kind: 2, Text: "ETH"}}
	b := []recordedEvent{{Kind: 1, Text: "BTC"}, {Kind: 2, Text: "ETH"}}
	if d := Diff(a, b); d != "" {
		t.Fatalf("Diff = %q; want empty", d)
	}
}

func TestDiffReportsFieldMismatch(t *testing.T) {
	a := recordedEvent{Kind: 1, Text: "BTC"}
	b := recordedEvent{Kind: 1, Text: "ETH"}
	d := Diff(a, b)
	if d == "" {
		t.Fatal("Diff = \"\"; want a mismatch report")
	}
}

func TestDiffReportsLengthMismatch(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{1, 2}
	if d := Diff(a, b); d == "" {
		t.Fatal("Diff = \"\"; want a length mismatch report")
	}
}

func TestDiffReportsMapKeyMismatch(t *testing.T) {
	a := map[string]int{"BTC": 1, "ETH": 2}
	b := map[string]int{"BTC": 1, "ETH": 3}
	if d := Diff(a, b); d == "" {
		t.Fatal("Diff = \"\"; want a map value mismatch report")
	}
}

func TestDiffIgnoresUnexportedFields(t *testing.T) {
	type withUnexported struct {
		Exported   int
		unexported int
	}
	a := withUnexported{Exported: 1, unexported: 2}
	b := withUnexported{Exported: 1, unexported: 99}
	if d := Diff(a, b); d != "" {
		t.Fatalf("Diff = %q; want empty (unexported fields ignored)", d)
	}
}

func TestPrettyPrintStruct(t *testing.T) {
	got := PrettyPrint(recordedEvent{Kind: 1, Text: "BTC"})
	want := `testutil.recordedEvent{Kind:1, Text:"BTC"}`
	if got != want {
		t.Fatalf("PrettyPrint = %q; want %q", got, want)
	}
}

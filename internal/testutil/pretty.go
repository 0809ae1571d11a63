// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package testutil provides failure-message helpers for tests that
// compare structured values, such as recorded jsonstream events. Diff
// reports which field made two
// values unequal instead of a bare reflect.DeepEqual mismatch.
package testutil

import (
	"fmt"
	"reflect"
	"sort"
)

// PrettyPrint renders v as a readable string, bounded to a few levels
// of nesting so a cyclic or very deep structure cannot produce an
// unbounded dump.
func PrettyPrint(v interface{}) string {
	return prettyPrint(reflect.ValueOf(v), 4)
}

func prettyPrint(v reflect.Value, depth int) string {
	if depth < 0 {
		return "..."
	}
	if !v.IsValid() {
		return "nil"
	}
	switch v.Kind() {
	case reflect.String:
		return fmt.Sprintf("%q", v.String())
	case reflect.Ptr:
		if v.IsNil() {
			return "nil"
		}
		return "*" + prettyPrint(v.Elem(), depth-1)
	case reflect.Interface:
		if v.IsNil() {
			return "nil"
		}
		return prettyPrint(v.Elem(), depth-1)
	case reflect.Slice, reflect.Array:
		var entries []string
		for i := 0; i < v.Len(); i++ {
			entries = append(entries, prettyPrint(v.Index(i), depth-1))
		}
		return fmt.Sprintf("%s{%s}", v.Type(), joinComma(entries))
	case reflect.Map:
		keys := v.MapKeys()
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s:%s", prettyPrint(k, depth-1), prettyPrint(v.MapIndex(k), depth-1)))
		}
		sort.Strings(pairs)
		return fmt.Sprintf("%s{%s}", v.Type(), joinComma(pairs))
	case reflect.Struct:
		t := v.Type()
		var fields []string
		for i := 0; i < v.NumField(); i++ {
			if t.Field(i).PkgPath != "" {
				fields = append(fields, fmt.Sprintf("%s:<unexported>", t.Field(i).Name))
				continue
			}
			fields = append(fields, fmt.Sprintf("%s:%s", t.Field(i).Name, prettyPrint(v.Field(i), depth-1)))
		}
		return fmt.Sprintf("%s{%s}", t, joinComma(fields))
	default:
		if !v.CanInterface() {
			return "<unexported>"
		}
		return fmt.Sprintf("%v", v.Interface())
	}
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}

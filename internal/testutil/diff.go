// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package testutil

import (
	"fmt"
	"reflect"
)

// Diff returns a human-readable description of the first difference
// found between a and b, walking into structs, slices and maps.
// An empty string means the two values are equal.
func Diff(a, b interface{}) string {
	return diffImpl(reflect.ValueOf(a), reflect.ValueOf(b))
}

func diffImpl(av, bv reflect.Value) string {
	if !av.IsValid() || !bv.IsValid() {
		if av.IsValid() != bv.IsValid() {
			return fmt.Sprintf("one value is nil: %s vs %s", PrettyPrint(valueOrNil(av)), PrettyPrint(valueOrNil(bv)))
		}
		return ""
	}
	if av.Type() != bv.Type() {
		return fmt.Sprintf("types differ: %s vs %s", av.Type(), bv.Type())
	}

	switch av.Kind() {
	case reflect.Ptr, reflect.Interface:
		if av.IsNil() || bv.IsNil() {
			if av.IsNil() != bv.IsNil() {
				return fmt.Sprintf("one value is nil: %s vs %s", prettyPrint(av, 4), prettyPrint(bv, 4))
			}
			return ""
		}
		return diffImpl(av.Elem(), bv.Elem())

	case reflect.Slice, reflect.Array:
		if av.Len() != bv.Len() {
			return fmt.Sprintf("lengths differ: %d vs %d", av.Len(), bv.Len())
		}
		for i := 0; i < av.Len(); i++ {
			if d := diffImpl(av.Index(i), bv.Index(i)); d != "" {
				return fmt.Sprintf("index %d: %s", i, d)
			}
		}
		return ""

	case reflect.Map:
		if av.Len() != bv.Len() {
			return fmt.Sprintf("map sizes differ: %d vs %d", av.Len(), bv.Len())
		}
		for _, k := range av.MapKeys() {
			be := bv.MapIndex(k)
			if !be.IsValid() {
				return fmt.Sprintf("key %s missing from second map", prettyPrint(k, 4))
			}
			if d := diffImpl(av.MapIndex(k), be); d != "" {
				return fmt.Sprintf("key %s: %s", prettyPrint(k, 4), d)
			}
		}
		return ""

	case reflect.Struct:
		t := av.Type()
		for i := 0; i < av.NumField(); i++ {
			if t.Field(i).PkgPath != "" {
				continue // unexported; not comparable via reflect without unsafe
			}
			if d := diffImpl(av.Field(i), bv.Field(i)); d != "" {
				return fmt.Sprintf("field %s: %s", t.Field(i).Name, d)
			}
		}
		return ""

	default:
		if av.Interface() != bv.Interface() {
			return fmt.Sprintf("%s != %s", prettyPrint(av, 4), prettyPrint(bv, 4))
		}
		return ""
	}
}

func valueOrNil(v reflect.Value) interface{} {
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}

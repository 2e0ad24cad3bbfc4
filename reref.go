// Copyright 2025 Huan Du. All rights reserved.
// Licensed under the MIT license that can be found in the LICENSE file.

// Package reref provides a function to give a mutable value a new identity
// without copying its data. The new reference reads from and writes to the
// original backing object, so reference-based change detection can be
// satisfied while all existing references keep seeing every mutation.
package reref

import (
	"reflect"
)

// Delegator is implemented by every interception layer created by this
// package. Delegate returns the object the layer reads member values from,
// which allows Unwrap to walk a chain of layers back to the backing object.
type Delegator interface {
	Delegate() interface{}
}

// Reref returns a new reference over the backing object of v.
//
// The result is always a freshly allocated *Ref, so it never compares equal
// to v or to the result of any other Reref call. If v is already a reference
// created by Reref, its backing object is recovered first; layers never stack.
// Reads through the result always see the current state of the backing
// object, and writes mutate it in place.
//
// Reref(nil) returns nil.
func Reref(v interface{}) *Ref {
	orig := Unwrap(v)

	if orig == nil {
		return nil
	}

	val := reflect.ValueOf(orig)
	return newRef(val, val)
}

// Unwrap returns the backing object behind v.
// If v is not an interception layer, v is returned unchanged.
func Unwrap(v interface{}) interface{} {
	for {
		d, ok := v.(Delegator)

		if !ok {
			return v
		}

		v = d.Delegate()
	}
}

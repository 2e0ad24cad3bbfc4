// Copyright 2025 Huan Du. All rights reserved.
// Licensed under the MIT license that can be found in the LICENSE file.

// Package reref is a proxy to the original go-reref package with generic
// support for member access. To minimize the maintenance cost, there is no
// doc in this package. Please read the document in
// https://pkg.go.dev/github.com/huandu/go-reref instead.
package reref

import (
	"fmt"

	"github.com/huandu/go-reref"
)

type Ref = reref.Ref
type Delegator = reref.Delegator

func Reref[T any](t T) *reref.Ref {
	return reref.Reref(t)
}

func Unwrap[T any](v interface{}) (T, bool) {
	t, ok := reref.Unwrap(v).(T)
	return t, ok
}

func Get[T any](r *reref.Ref, name string) (T, error) {
	var zero T
	v, err := r.Get(name)

	if err != nil {
		return zero, err
	}

	if v == nil {
		return zero, nil
	}

	t, ok := v.(T)

	if !ok {
		return zero, fmt.Errorf("go-reref: member <%v> is %T, not %T", name, v, zero)
	}

	return t, nil
}

func Set[T any](r *reref.Ref, name string, value T) error {
	return r.Set(name, value)
}

func Call[T any](r *reref.Ref, name string, args ...interface{}) (T, error) {
	var zero T
	out, err := r.Call(name, args...)

	if err != nil {
		return zero, err
	}

	if len(out) == 0 {
		return zero, nil
	}

	t, ok := out[0].(T)

	if !ok {
		return zero, fmt.Errorf("go-reref: result of <%v> is %T, not %T", name, out[0], zero)
	}

	return t, nil
}

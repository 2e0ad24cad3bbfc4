// Copyright 2025 Huan Du. All rights reserved.
// Licensed under the MIT license that can be found in the LICENSE file.

package reref

import (
	"github.com/spf13/cast"
)

// Typed member reads. Each of them reads the named member with Get and
// coerces the result, which is mostly useful for map backings holding
// loosely typed data.

// String reads the named member as a string.
func (r *Ref) String(name string) (string, error) {
	v, err := r.Get(name)

	if err != nil {
		return "", err
	}

	return cast.ToStringE(v)
}

// Int reads the named member as an int.
func (r *Ref) Int(name string) (int, error) {
	v, err := r.Get(name)

	if err != nil {
		return 0, err
	}

	return cast.ToIntE(v)
}

// Int64 reads the named member as an int64.
func (r *Ref) Int64(name string) (int64, error) {
	v, err := r.Get(name)

	if err != nil {
		return 0, err
	}

	return cast.ToInt64E(v)
}

// Float64 reads the named member as a float64.
func (r *Ref) Float64(name string) (float64, error) {
	v, err := r.Get(name)

	if err != nil {
		return 0, err
	}

	return cast.ToFloat64E(v)
}

// Bool reads the named member as a bool.
func (r *Ref) Bool(name string) (bool, error) {
	v, err := r.Get(name)

	if err != nil {
		return false, err
	}

	return cast.ToBoolE(v)
}

// StringSlice reads the named member as a []string.
func (r *Ref) StringSlice(name string) ([]string, error) {
	v, err := r.Get(name)

	if err != nil {
		return nil, err
	}

	return cast.ToStringSliceE(v)
}

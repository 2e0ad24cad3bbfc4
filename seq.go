// Copyright 2025 Huan Du. All rights reserved.
// Licensed under the MIT license that can be found in the LICENSE file.

package reref

import (
	"reflect"
	"strconv"
)

// Member returns an interception layer over the named member itself.
//
// Unlike Get, which returns the member's current value, Member gives access
// to the member's own storage: for a struct backing reached through a
// pointer, the layer is built over the field's address, so length-changing
// operations like Append flow back into the backing object. For a map
// backing, the layer is built over the entry's value; mutations of that
// value are shared as far as the value itself is a reference.
func (r *Ref) Member(name string) (*Ref, error) {
	if r == nil || !r.delegate.IsValid() {
		return nil, ErrNilRef
	}

	elem, err := deref(r.delegate)

	if err != nil {
		return nil, err
	}

	switch elem.Kind() {
	case reflect.Struct:
		idx, ok, err := fieldIndex(elem.Type(), name)

		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, memberErr(r.delegate.Type(), name)
		}

		field := elem.FieldByIndex(idx)

		if !field.CanInterface() {
			return nil, unexportedErr(elem.Type(), name)
		}

		if field.CanAddr() {
			addr := field.Addr()
			return newRef(addr, addr), nil
		}

		return newRef(field, field), nil

	case reflect.Map:
		key, err := mapKey(elem.Type(), name)

		if err != nil {
			return nil, err
		}

		if elem.IsNil() {
			return nil, memberErr(elem.Type(), name)
		}

		v := elem.MapIndex(key)

		if !v.IsValid() {
			return nil, memberErr(elem.Type(), name)
		}

		if v.Kind() == reflect.Interface && !v.IsNil() {
			v = v.Elem()
		}

		return newRef(v, v), nil
	}

	return nil, memberErr(r.delegate.Type(), name)
}

// Len returns the length of a sequence or map backing.
func (r *Ref) Len() (int, error) {
	if r == nil || !r.delegate.IsValid() {
		return 0, ErrNilRef
	}

	elem, err := deref(r.delegate)

	if err != nil {
		return 0, err
	}

	switch elem.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return elem.Len(), nil
	}

	return 0, seqErr(r.delegate.Type())
}

// Index reads the i-th element of a sequence backing.
func (r *Ref) Index(i int) (interface{}, error) {
	if r == nil || !r.delegate.IsValid() {
		return nil, ErrNilRef
	}

	elem, err := deref(r.delegate)

	if err != nil {
		return nil, err
	}

	switch elem.Kind() {
	case reflect.Slice, reflect.Array, reflect.String:
		if i < 0 || i >= elem.Len() {
			return nil, rangeErr(elem.Type(), i, elem.Len())
		}

		return memberValue(elem.Index(i))
	}

	return nil, seqErr(r.delegate.Type())
}

// SetIndex writes the i-th element of a sequence backing.
// Slice elements are always addressable through the slice's data pointer, so
// writes are visible through every reference to the same slice.
func (r *Ref) SetIndex(i int, value interface{}) error {
	if r == nil || !r.target.IsValid() {
		return ErrNilRef
	}

	elem, err := deref(r.target)

	if err != nil {
		return err
	}

	switch elem.Kind() {
	case reflect.Slice, reflect.Array:
		if i < 0 || i >= elem.Len() {
			return rangeErr(elem.Type(), i, elem.Len())
		}

		el := elem.Index(i)

		if !el.CanSet() {
			return assignErr(elem.Type(), strconv.Itoa(i))
		}

		return assign(el, value)
	}

	return seqErr(r.target.Type())
}

// Append appends items to a slice backing in place.
// The backing must be reachable through a pointer or otherwise settable, as
// appending replaces the slice header of the backing object.
func (r *Ref) Append(items ...interface{}) error {
	if r == nil || !r.target.IsValid() {
		return ErrNilRef
	}

	elem, err := deref(r.target)

	if err != nil {
		return err
	}

	if elem.Kind() != reflect.Slice {
		return seqErr(r.target.Type())
	}

	if !elem.CanSet() {
		return assignErr(elem.Type(), "append")
	}

	et := elem.Type().Elem()
	s := elem

	for _, item := range items {
		v, err := conform(item, et)

		if err != nil {
			return err
		}

		s = reflect.Append(s, v)
	}

	elem.Set(s)
	return nil
}

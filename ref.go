// Copyright 2025 Huan Du. All rights reserved.
// Licensed under the MIT license that can be found in the LICENSE file.

package reref

import (
	"reflect"
)

var typeOfRef = reflect.TypeOf((*Ref)(nil))

// Ref is an interception layer over a backing object.
//
// A Ref reads members from its delegate and forwards writes to its write
// target. For layers created by Reref both are the backing object itself.
// For method layers the delegate is the original function and the write
// target is the receiver-bound form, so the bound method keeps executing
// with the backing object as receiver no matter how it is invoked.
type Ref struct {
	delegate reflect.Value
	target   reflect.Value
}

func newRef(delegate, target reflect.Value) *Ref {
	return &Ref{
		delegate: delegate,
		target:   target,
	}
}

// Delegate returns the object this layer reads from.
func (r *Ref) Delegate() interface{} {
	if r == nil || !r.delegate.IsValid() {
		return nil
	}

	return r.delegate.Interface()
}

// Interface is an alias for Delegate.
func (r *Ref) Interface() interface{} {
	return r.Delegate()
}

// Get reads the named member of the backing object.
//
// Struct fields and map entries are looked up first, then methods. A callable
// member is returned as a fresh method layer (*Ref) whose receiver is
// permanently bound to the backing object; a new layer is built on every
// read, so two reads of the same method are never reference-equal.
// Non-callable members are returned as they are, without any wrapping.
// Reading an absent entry of a map backing returns nil.
func (r *Ref) Get(name string) (interface{}, error) {
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

		if ok {
			field := elem.FieldByIndex(idx)

			// A promoted field behind an unexported embedded field is
			// read-only through reflection.
			if !field.CanInterface() {
				return nil, unexportedErr(elem.Type(), name)
			}

			return memberValue(field)
		}

	case reflect.Map:
		key, err := mapKey(elem.Type(), name)

		if err != nil {
			return nil, err
		}

		if !elem.IsNil() {
			if v := elem.MapIndex(key); v.IsValid() {
				return memberValue(v)
			}
		}
	}

	if orig, bound, ok := lookupMethod(r.delegate, name); ok {
		return newRef(orig, bound), nil
	}

	// Absent map entries read as nil, like any map access.
	if elem.Kind() == reflect.Map {
		return nil, nil
	}

	return nil, memberErr(r.delegate.Type(), name)
}

// memberValue converts a resolved member into its exposed form.
// Callable members become fresh bound layers, everything else is returned
// unchanged. A member that is already a layer over a function is unwrapped
// first so that layers never stack.
func memberValue(v reflect.Value) (interface{}, error) {
	if bound, orig := asFunc(v); bound.IsValid() {
		return newRef(orig, bound), nil
	}

	if !v.IsValid() {
		return nil, nil
	}

	return v.Interface(), nil
}

// asFunc resolves v to a callable. It returns the function to invoke and the
// original function to use as the layer's delegate. Both are invalid when v
// is not callable.
func asFunc(v reflect.Value) (bound, orig reflect.Value) {
	if v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}

	if !v.IsValid() {
		return
	}

	if v.Type() == typeOfRef {
		l := v.Interface().(*Ref)

		if l == nil {
			return
		}

		if b := l.boundFunc(); b.IsValid() {
			o := l.origFunc()

			if !o.IsValid() {
				o = b
			}

			return b, o
		}

		return
	}

	if v.Kind() == reflect.Func && !v.IsNil() {
		return v, v
	}

	return
}

func (r *Ref) boundFunc() reflect.Value {
	t := r.target

	if t.Kind() == reflect.Interface && !t.IsNil() {
		t = t.Elem()
	}

	if t.Kind() == reflect.Func && !t.IsNil() {
		return t
	}

	return reflect.Value{}
}

func (r *Ref) origFunc() reflect.Value {
	v := reflect.ValueOf(Unwrap(r))

	if v.Kind() == reflect.Func {
		return v
	}

	return reflect.Value{}
}

// Set writes the named member of the backing object.
//
// The value is converted to the member type when necessary; an interception
// layer that does not fit as-is is unwrapped and retried. Writes through a
// method layer fail, as Go functions have no assignable members. Writes to a
// layer over a non-pointer struct fail as well, matching the assignability
// rules of the storage itself.
func (r *Ref) Set(name string, value interface{}) error {
	if r == nil || !r.target.IsValid() {
		return ErrNilRef
	}

	if r.target.Kind() == reflect.Func {
		return assignErr(r.target.Type(), name)
	}

	elem, err := deref(r.target)

	if err != nil {
		return err
	}

	switch elem.Kind() {
	case reflect.Struct:
		idx, ok, err := fieldIndex(elem.Type(), name)

		if err != nil {
			return err
		}

		if !ok {
			return memberErr(r.target.Type(), name)
		}

		field := elem.FieldByIndex(idx)

		if !field.CanSet() {
			return assignErr(elem.Type(), name)
		}

		return assign(field, value)

	case reflect.Map:
		key, err := mapKey(elem.Type(), name)

		if err != nil {
			return err
		}

		if elem.IsNil() {
			return assignErr(elem.Type(), name)
		}

		v, err := conform(value, elem.Type().Elem())

		if err != nil {
			return err
		}

		elem.SetMapIndex(key, v)
		return nil
	}

	return assignErr(elem.Type(), name)
}

// Method reads the named callable member as a fresh bound layer.
// It fails if the member exists but is not callable.
func (r *Ref) Method(name string) (*Ref, error) {
	v, err := r.Get(name)

	if err != nil {
		return nil, err
	}

	if l, ok := v.(*Ref); ok {
		return l, nil
	}

	return nil, callErr(r.delegate.Type(), name)
}

// Call invokes the named method of the backing object.
// It is a shorthand for Method followed by Invoke.
func (r *Ref) Call(name string, args ...interface{}) ([]interface{}, error) {
	m, err := r.Method(name)

	if err != nil {
		return nil, err
	}

	return m.Invoke(args...)
}

// Invoke calls the bound function of a method layer.
//
// Arguments are converted to the parameter types when necessary; an
// interception layer passed as argument is unwrapped when it does not fit
// as-is. Variadic functions accept any trailing argument count.
func (r *Ref) Invoke(args ...interface{}) ([]interface{}, error) {
	if r == nil {
		return nil, ErrNilRef
	}

	fn := r.boundFunc()

	if !fn.IsValid() {
		var t reflect.Type

		if r.delegate.IsValid() {
			t = r.delegate.Type()
		}

		return nil, notFuncErr(t)
	}

	t := fn.Type()
	num := t.NumIn()

	if t.IsVariadic() {
		if len(args) < num-1 {
			return nil, arityErr(t, len(args))
		}
	} else if len(args) != num {
		return nil, arityErr(t, len(args))
	}

	in := make([]reflect.Value, len(args))

	for i, arg := range args {
		var pt reflect.Type

		if t.IsVariadic() && i >= num-1 {
			pt = t.In(num - 1).Elem()
		} else {
			pt = t.In(i)
		}

		v, err := conform(arg, pt)

		if err != nil {
			return nil, err
		}

		in[i] = v
	}

	out := fn.Call(in)
	res := make([]interface{}, len(out))

	for i := range out {
		res[i] = out[i].Interface()
	}

	return res, nil
}

// Func returns the bound function value of a method layer, or nil if this
// layer is not a method layer. The receiver stays fixed to the backing
// object wherever the returned value travels.
func (r *Ref) Func() interface{} {
	if r == nil {
		return nil
	}

	if fn := r.boundFunc(); fn.IsValid() {
		return fn.Interface()
	}

	return nil
}

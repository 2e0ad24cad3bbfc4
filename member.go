// Copyright 2025 Huan Du. All rights reserved.
// Licensed under the MIT license that can be found in the LICENSE file.

package reref

import (
	"reflect"
	"sync"
)

var (
	cachedMemberTypes sync.Map
)

// memberType is the cached member index of a backing type.
type memberType struct {
	fields     map[string][]int
	unexported map[string]bool
	methods    map[string]int
}

func loadMemberType(t reflect.Type) (mt memberType) {
	if v, ok := cachedMemberTypes.Load(t); ok {
		mt = v.(memberType)
		return
	}

	st := t

	for st.Kind() == reflect.Ptr {
		st = st.Elem()
	}

	if st.Kind() == reflect.Struct {
		num := st.NumField()
		mt.fields = make(map[string][]int, num)

		for i := 0; i < num; i++ {
			field := st.Field(i)

			if field.PkgPath != "" {
				if mt.unexported == nil {
					mt.unexported = map[string]bool{}
				}

				mt.unexported[field.Name] = true
				continue
			}

			mt.fields[field.Name] = field.Index
		}
	}

	if num := t.NumMethod(); num > 0 {
		mt.methods = make(map[string]int, num)

		for i := 0; i < num; i++ {
			mt.methods[t.Method(i).Name] = i
		}
	}

	cachedMemberTypes.LoadOrStore(t, mt)
	return
}

// fieldIndex resolves name to a field index path on struct type t.
// Promoted fields of embedded structs are resolved through reflect directly
// as they are not part of the cached index.
func fieldIndex(t reflect.Type, name string) ([]int, bool, error) {
	mt := loadMemberType(t)

	if idx, ok := mt.fields[name]; ok {
		return idx, true, nil
	}

	if mt.unexported[name] {
		return nil, false, unexportedErr(t, name)
	}

	if field, ok := t.FieldByName(name); ok && field.PkgPath == "" {
		return field.Index, true, nil
	}

	return nil, false, nil
}

// lookupMethod resolves name to a method of v. It returns the original
// method function, whose receiver is an explicit first argument, and the
// form bound to v. Binding happens here, once, before the method is exposed.
func lookupMethod(v reflect.Value, name string) (orig, bound reflect.Value, ok bool) {
	if !v.IsValid() {
		return
	}

	mt := loadMemberType(v.Type())
	i, found := mt.methods[name]

	if !found {
		return
	}

	return v.Type().Method(i).Func, v.Method(i), true
}

// mapKey converts a member name to the key type of map type t.
func mapKey(t reflect.Type, name string) (reflect.Value, error) {
	kt := t.Key()
	k := reflect.ValueOf(name)

	if k.Type().AssignableTo(kt) {
		return k, nil
	}

	if kt.Kind() == reflect.String {
		return k.Convert(kt), nil
	}

	return reflect.Value{}, keyErr(t)
}

// conform converts value to type t following assignment semantics.
// An interception layer that does not fit as-is is unwrapped and retried.
func conform(value interface{}, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(t), nil
	}

	v := reflect.ValueOf(value)

	if v.Type().AssignableTo(t) {
		return v, nil
	}

	if convertible(v.Type(), t) {
		return v.Convert(t), nil
	}

	if d, ok := value.(Delegator); ok {
		return conform(Unwrap(d), t)
	}

	return reflect.Value{}, convertErr(v.Type(), t)
}

// convertible reports whether a value of type from may be converted to type
// to as part of a member write. Code point conversions to string are
// excluded; writing an int into a string member must not produce a rune.
func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}

	if to.Kind() == reflect.String && from.Kind() != reflect.String && from.Kind() != reflect.Slice {
		return false
	}

	return true
}

func assign(dst reflect.Value, value interface{}) error {
	v, err := conform(value, dst.Type())

	if err != nil {
		return err
	}

	dst.Set(v)
	return nil
}

// deref follows pointers down to the pointed-to value.
func deref(v reflect.Value) (reflect.Value, error) {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return v, nilBackingErr(v.Type())
		}

		v = v.Elem()
	}

	return v, nil
}

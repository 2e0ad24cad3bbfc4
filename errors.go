// Copyright 2025 Huan Du. All rights reserved.
// Licensed under the MIT license that can be found in the LICENSE file.

package reref

import (
	"reflect"
	"strconv"
)

type strErr string

func (e strErr) Error() string {
	return string(e)
}

// ErrNilRef is returned when calling methods on a nil reference.
const ErrNilRef = strErr("go-reref: nil reference")

func memberErr(t reflect.Type, name string) error {
	return strErr("go-reref: type <" + typeString(t) + "> has no member <" + name + ">")
}

func unexportedErr(t reflect.Type, name string) error {
	return strErr("go-reref: member <" + name + "> of type <" + typeString(t) + "> is unexported")
}

func assignErr(t reflect.Type, name string) error {
	return strErr("go-reref: can't assign member <" + name + "> on type <" + typeString(t) + ">")
}

func callErr(t reflect.Type, name string) error {
	return strErr("go-reref: member <" + name + "> of type <" + typeString(t) + "> is not callable")
}

func notFuncErr(t reflect.Type) error {
	return strErr("go-reref: reference over type <" + typeString(t) + "> is not callable")
}

func convertErr(from, to reflect.Type) error {
	return strErr("go-reref: can't use value of type <" + typeString(from) + "> as <" + typeString(to) + ">")
}

func arityErr(t reflect.Type, got int) error {
	return strErr("go-reref: wrong argument count for <" + typeString(t) + ">: got " + strconv.Itoa(got))
}

func seqErr(t reflect.Type) error {
	return strErr("go-reref: type <" + typeString(t) + "> is not an indexed sequence")
}

func rangeErr(t reflect.Type, i, length int) error {
	return strErr("go-reref: index " + strconv.Itoa(i) + " out of range for <" + typeString(t) + "> of length " + strconv.Itoa(length))
}

func keyErr(t reflect.Type) error {
	return strErr("go-reref: key type of <" + typeString(t) + "> can't be named by a string")
}

func nilBackingErr(t reflect.Type) error {
	return strErr("go-reref: can't address member through nil pointer of type <" + typeString(t) + ">")
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "nil"
	}

	return t.String()
}

// Copyright 2025 Huan Du. All rights reserved.
// Licensed under the MIT license that can be found in the LICENSE file.

package reref

import (
	"testing"

	"github.com/huandu/go-assert"
)

type testValue struct {
	Value []string
}

func TestAppendThroughSlicePointer(t *testing.T) {
	a := assert.New(t)
	arr := []string{"a"}
	r := Reref(&arr)
	a.Use(&arr, &r)

	a.NilError(r.Append("b"))
	a.Equal(len(arr), 2)
	a.Equal(arr[1], "b")

	n, err := r.Len()
	a.NilError(err)
	a.Equal(n, 2)

	v, err := r.Index(0)
	a.NilError(err)
	a.Equal(v, "a")
}

func TestPushOnMemberSlice(t *testing.T) {
	a := assert.New(t)
	o := &testValue{
		Value: []string{},
	}
	r := Reref(o)
	a.Use(&o, &r)

	m, err := r.Member("Value")
	a.NilError(err)
	a.NilError(m.Append("x"))
	a.Equal(o.Value, []string{"x"})
	a.Assert(Unwrap(r).(*testValue) == o)
}

func TestSetIndexSharesStorage(t *testing.T) {
	a := assert.New(t)
	s := []int{1, 2, 3}
	r := Reref(s)
	a.Use(&s, &r)

	// Element writes reach the shared array even without a pointer backing.
	a.NilError(r.SetIndex(1, 20))
	a.Equal(s[1], 20)

	// Replacing the slice header does need a pointer backing.
	a.Assert(r.Append(4) != nil)

	_, err := r.Index(5)
	a.Assert(err != nil)
	a.Assert(r.SetIndex(5, 0) != nil)
}

func TestLenOverBackings(t *testing.T) {
	a := assert.New(t)

	n, err := Reref([]int{1, 2}).Len()
	a.NilError(err)
	a.Equal(n, 2)

	n, err = Reref(map[string]int{"def": 123}).Len()
	a.NilError(err)
	a.Equal(n, 1)

	n, err = Reref("abcd").Len()
	a.NilError(err)
	a.Equal(n, 4)

	_, err = Reref(123).Len()
	a.Assert(err != nil)
}

func TestMemberOfMapBacking(t *testing.T) {
	a := assert.New(t)
	m := map[string]interface{}{
		"list": []int{1},
	}
	r := Reref(m)
	a.Use(&m, &r)

	lm, err := r.Member("list")
	a.NilError(err)

	v, err := lm.Index(0)
	a.NilError(err)
	a.Equal(v, 1)

	a.NilError(lm.SetIndex(0, 9))
	a.Equal(m["list"].([]int)[0], 9)

	_, err = r.Member("missing")
	a.Assert(err != nil)
}

func TestMemberSharesLayerStorage(t *testing.T) {
	a := assert.New(t)
	o := &testValue{
		Value: []string{"a"},
	}
	r1 := Reref(o)
	r2 := Reref(o)
	a.Use(&o, &r1, &r2)

	m1, err := r1.Member("Value")
	a.NilError(err)
	m2, err := r2.Member("Value")
	a.NilError(err)

	// Two layers over the same member target identical storage.
	a.Assert(m1 != m2)
	a.NilError(m1.Append("b"))
	n, err := m2.Len()
	a.NilError(err)
	a.Equal(n, 2)
	a.Equal(o.Value, []string{"a", "b"})
}

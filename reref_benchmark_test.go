// Copyright 2025 Huan Du. All rights reserved.
// Licensed under the MIT license that can be found in the LICENSE file.

package reref

import "testing"

func BenchmarkUnwrap(b *testing.B) {
	orig := &testType{
		Foo: "abcd",
		Bar: map[string]interface{}{
			"def": 123,
			"ghi": 78.9,
		},
		Player: []float64{
			12.3, 45.6, -78.9,
		},
	}
	r := Reref(orig)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Unwrap(r)
	}
}

func BenchmarkReref(b *testing.B) {
	orig := &testSimple{
		Foo: 123,
		Bar: "abcd",
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Reref(orig)
	}
}

func BenchmarkGet(b *testing.B) {
	orig := &testSimple{
		Foo: 123,
		Bar: "abcd",
	}
	r := Reref(orig)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r.Get("Foo")
	}
}

func BenchmarkMethod(b *testing.B) {
	orig := &testType{
		Foo: "abcd",
	}
	r := Reref(orig)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r.Method("Self")
	}
}

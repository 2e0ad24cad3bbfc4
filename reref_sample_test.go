package reref

import "fmt"

func ExampleReref() {
	v := &testSimple{
		Foo: 123,
		Bar: "player",
	}
	r := Reref(v) // A new identity over the same storage.

	foo, _ := r.Get("Foo")
	fmt.Println(foo) // 123

	// Writes through the reference mutate the original value.
	r.Set("Bar", "abcd")
	fmt.Println(v.Bar) // abcd

	// Reads always see the current state of the original value.
	v.Foo = 456
	foo, _ = r.Get("Foo")
	fmt.Println(foo) // 456

	// The backing object is recoverable with Unwrap.
	fmt.Println(Unwrap(r).(*testSimple) == v) // true

	// Output:
	// 123
	// abcd
	// 456
	// true
}

func ExampleRef_Call() {
	c := &testCalc{}
	r := Reref(c)

	// Methods called through the reference run with the
	// original value as receiver.
	r.Call("Add", 1, 2, 3)
	fmt.Println(c.Sum)

	// Output:
	// 6
}

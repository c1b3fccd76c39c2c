package vector

import (
	"fmt"
)

// Example demonstrates basic vector usage
func Example() {
	// Create an empty vector with 32-bit counters
	v, err := New[int, uint32](0)
	if err != nil {
		panic(err)
	}
	defer v.Release() // Always clean up

	// Amortized appends
	v.Push(5)
	v.Push(7)
	fmt.Printf("Elements: %v (len=%d cap=%d)\n", v.Slice(), v.Len(), v.Cap())

	// Preallocate room for more
	v.Reserve(10)
	fmt.Printf("After Reserve: len=%d cap=%d\n", v.Len(), v.Cap())

	// Drop the headroom again
	v.ShrinkToFit()
	fmt.Printf("After ShrinkToFit: len=%d cap=%d\n", v.Len(), v.Cap())

	// Output:
	// Elements: [5 7] (len=2 cap=2)
	// After Reserve: len=2 cap=10
	// After ShrinkToFit: len=2 cap=2
}

// ExampleVector_Emplace shows that exact-fit appends never leave headroom
func ExampleVector_Emplace() {
	v, _ := New[string, uint16](0)
	v.Reserve(8)

	for _, s := range []string{"a", "b", "c"} {
		v.Emplace(s)
		fmt.Printf("len=%d cap=%d\n", v.Len(), v.Cap())
	}

	// Output:
	// len=1 cap=1
	// len=2 cap=2
	// len=3 cap=3
}

// ExampleVector_Push shows the amortized growth sequence
func ExampleVector_Push() {
	v, _ := New[int, uint32](0)

	var caps []uint32
	for i := range 10 {
		before := v.Cap()
		v.Push(i)
		if v.Cap() != before {
			caps = append(caps, v.Cap())
		}
	}
	fmt.Printf("Capacities: %v\n", caps)
	fmt.Printf("Relocations: %d\n", v.Reallocations())

	// Output:
	// Capacities: [1 2 3 4 5 6 7 8 10]
	// Relocations: 9
}

// ExampleVector_Resize shows exact resize semantics
func ExampleVector_Resize() {
	v, _ := Of[int, uint32](1, 2, 3)

	v.Resize(5)
	fmt.Printf("%v cap=%d\n", v.Slice(), v.Cap())

	v.Resize(2)
	fmt.Printf("%v cap=%d\n", v.Slice(), v.Cap())

	// Output:
	// [1 2 3 0 0] cap=5
	// [1 2] cap=5
}

// ExampleNewUninitialized demonstrates two-phase construction
func ExampleNewUninitialized() {
	u, err := NewUninitialized[int, uint8](5)
	if err != nil {
		panic(err)
	}
	for i := range u.Len() {
		u.Set(i, int(i)*int(i))
	}

	v, err := u.Finish()
	if err != nil {
		panic(err)
	}
	fmt.Println(v.Slice())

	// Output:
	// [0 1 4 9 16]
}

// ExampleEqual compares vectors with different counter widths
func ExampleEqual() {
	a, _ := Of[int, uint8](1, 2, 3)
	b, _ := Of[int, uint64](1, 2, 3)
	c, _ := Of[int, uint32](1, 2, 4)

	fmt.Println(Equal(a, b))
	fmt.Println(Equal(a, c))

	// Output:
	// true
	// false
}

// ExampleVectorMetrics demonstrates metrics collection
func ExampleVectorMetrics() {
	v, _ := New[int64, uint32](0)
	v.Reserve(100)
	for i := range 25 {
		v.Push(int64(i))
	}

	m := v.Metrics()
	fmt.Printf("Utilization: %.0f%%\n", m.Utilization*100)
	fmt.Println(m)

	// Output:
	// Utilization: 25%
	// len=25 cap=100 in-use=200 B buffer=800 B reallocations=1 utilization=25.00%
}

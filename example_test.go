package bumparena

import (
	"fmt"
)

// Example demonstrates basic arena usage
func Example() {
	a := New()
	defer a.Release() // Frees every chunk at once

	al := a.Allocator()

	x := Alloc(al, int32(44))
	y := Alloc(al, uint8(3))
	z := Alloc(al, uint32(0x11223344))
	w := AllocDefault[float64](al)
	fmt.Println(*x, *y, *z == 0x11223344, *w)

	s := AllocSlice(al, []byte("abc"))
	fmt.Println(string(s))

	xs := AllocSliceFunc(al, 10, func(i int) int32 { return int32(i) * 7 })
	fmt.Println(xs[9])

	ys := AllocSliceDefault[uint64](al, 4)
	fmt.Println(ys)

	fmt.Printf("Memory in use: %d bytes\n", a.SizeInUse())
	fmt.Printf("Utilization: %.2f%%\n", a.Utilization()*100)

	// Output:
	// 44 3 true 0
	// abc
	// 63
	// [0 0 0 0]
	// Memory in use: 104 bytes
	// Utilization: 2.54%
}

// ExampleNewRef shows a checked reference outliving its arena.
func ExampleNewRef() {
	a := New()
	al := a.Allocator()

	r := NewRef(al, Alloc(al, 42))
	fmt.Println(r.Valid(), *r.Get())

	a.Release()
	fmt.Println(r.Valid())

	// Output:
	// true 42
	// false
}

// ExampleAllocSliceFunc shows that the generator runs in index order.
func ExampleAllocSliceFunc() {
	a := New()
	defer a.Release()

	sum := 0
	prefix := AllocSliceFunc(a.Allocator(), 5, func(i int) int {
		sum += i
		return sum
	})
	fmt.Println(prefix)

	// Output:
	// [0 1 3 6 10]
}

package bumparena

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/pavanmanishd/bumparena/internal/layout"
)

// zeroBase is the address handed out for zero-size requests. It is aligned
// for every Go type and never written through.
var zeroBase [MaxAlign / 8]uint64

// Allocator is a short-lived handle that hands out memory from its Arena.
// It holds no storage. Everything it returns stays valid until the Arena is
// released.
type Allocator struct {
	arena *Arena
	gen   uint64
}

// Arena returns the arena the handle was borrowed from.
func (al *Allocator) Arena() *Arena {
	return al.arena
}

// check panics if the arena was released after this handle was borrowed.
func (al *Allocator) check() {
	if al.gen != al.arena.generation || al.arena.released {
		panic(ErrReleased)
	}
}

// reserve is the primitive every operation shares.
func (al *Allocator) reserve(size, align uintptr) unsafe.Pointer {
	al.check()
	if size == 0 {
		return unsafe.Pointer(&zeroBase)
	}
	return al.arena.reserve(size, align)
}

// AllocBytes returns an n-byte slice inside the arena. The bytes are zero.
// n == 0 yields an empty, non-nil slice.
func (al *Allocator) AllocBytes(n int) []byte {
	if n < 0 {
		panic(fmt.Errorf("AllocBytes(%d): %w", n, ErrNegativeLen))
	}
	p := al.reserve(uintptr(n), 1)
	return unsafe.Slice((*byte)(p), n)
}

// Defaulter is implemented by types whose default value is not the zero
// value. AllocDefault and AllocSliceDefault use it when present.
type Defaulter[T any] interface {
	Default() T
}

// defaultOf returns T's default value and whether it came from a Defaulter.
func defaultOf[T any]() (T, bool) {
	var zero T
	if d, ok := any(zero).(Defaulter[T]); ok {
		return d.Default(), true
	}
	if d, ok := any(&zero).(Defaulter[T]); ok {
		return d.Default(), true
	}
	return zero, false
}

// mustCopySafe panics unless T is pointer-free.
func mustCopySafe[T any]() {
	t := reflect.TypeFor[T]()
	if !layout.PointerFree(t) {
		panic(fmt.Errorf("%v: %w", t, ErrNotCopySafe))
	}
}

// Alloc copies v into the arena and returns a pointer to the copy.
func Alloc[T any](al *Allocator, v T) *T {
	mustCopySafe[T]()
	p := (*T)(al.reserve(unsafe.Sizeof(v), unsafe.Alignof(v)))
	*p = v
	return p
}

// AllocDefault allocates a T holding its default value: the zero value,
// or Default() when T implements Defaulter.
func AllocDefault[T any](al *Allocator) *T {
	v, _ := defaultOf[T]()
	return Alloc(al, v)
}

// allocSliceRaw reserves room for n elements of T without initializing them.
func allocSliceRaw[T any](al *Allocator, n int) []T {
	mustCopySafe[T]()
	if n < 0 {
		panic(fmt.Errorf("slice of %d elements: %w", n, ErrNegativeLen))
	}
	var zero T
	size, ok := layout.MulSize(uintptr(n), unsafe.Sizeof(zero))
	if !ok {
		panic(fmt.Errorf("%d elements of %d bytes: %w", n, unsafe.Sizeof(zero), ErrSizeOverflow))
	}
	p := al.reserve(size, unsafe.Alignof(zero))
	return unsafe.Slice((*T)(p), n)
}

// AllocSlice copies src into the arena and returns the copy.
// An empty src yields an empty, non-nil slice.
func AllocSlice[T any](al *Allocator, src []T) []T {
	dst := allocSliceRaw[T](al, len(src))
	copy(dst, src)
	return dst
}

// AllocSliceFunc allocates n elements and sets element i to f(i), calling f
// for i = 0, 1, ..., n-1 in order. f is never called when n == 0.
//
// If f panics, the panic propagates: the region stays reserved, no slice is
// returned, and the arena remains usable.
func AllocSliceFunc[T any](al *Allocator, n int, f func(int) T) []T {
	dst := allocSliceRaw[T](al, n)
	for i := range dst {
		dst[i] = f(i)
	}
	return dst
}

// AllocSliceDefault allocates n elements holding T's default value.
func AllocSliceDefault[T any](al *Allocator, n int) []T {
	dst := allocSliceRaw[T](al, n)
	v, custom := defaultOf[T]()
	if !custom {
		clear(dst)
		return dst
	}
	for i := range dst {
		dst[i] = v
	}
	return dst
}

// Package layout answers memory-layout questions about Go types: whether a
// type may live in memory the garbage collector does not scan, and how to
// round offsets up to an alignment.
package layout

import (
	"math/bits"
	"reflect"
	"sync"
)

var pointerFree sync.Map // reflect.Type -> bool

// PointerFree reports whether values of t contain no Go pointers, so that
// they can be stored in raw byte memory and copied bitwise. Results are
// cached per type.
func PointerFree(t reflect.Type) bool {
	if v, ok := pointerFree.Load(t); ok {
		return v.(bool)
	}
	free := scan(t)
	pointerFree.Store(t, free)
	return free
}

func scan(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || scan(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !scan(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Pointer, UnsafePointer, Slice, String, Map, Chan, Func, Interface.
		return false
	}
}

// IsPowerOfTwo reports whether x is a power of two.
func IsPowerOfTwo(x uintptr) bool {
	return x != 0 && x&(x-1) == 0
}

// AlignUp rounds off up to the next multiple of align, which must be a
// power of two.
func AlignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) &^ mask
}

// MulSize returns n*size and whether the product fits in a uintptr.
func MulSize(n, size uintptr) (uintptr, bool) {
	hi, lo := bits.Mul(uint(n), uint(size))
	return uintptr(lo), hi == 0
}

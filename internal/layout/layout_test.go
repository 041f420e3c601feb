package layout

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

type flat struct {
	A int64
	B [4]float32
	C struct{ X, Y uint8 }
}

type withString struct {
	ID   int
	Name string
}

type nested struct {
	Inner [2]withString
}

func TestPointerFree(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"int", reflect.TypeFor[int](), true},
		{"uintptr", reflect.TypeFor[uintptr](), true},
		{"complex128", reflect.TypeFor[complex128](), true},
		{"flat struct", reflect.TypeFor[flat](), true},
		{"empty struct", reflect.TypeFor[struct{}](), true},
		{"array of ints", reflect.TypeFor[[16]int32](), true},
		{"zero-length array of pointers", reflect.TypeFor[[0]*int](), true},
		{"pointer", reflect.TypeFor[*int](), false},
		{"unsafe pointer", reflect.TypeFor[unsafe.Pointer](), false},
		{"string", reflect.TypeFor[string](), false},
		{"slice", reflect.TypeFor[[]byte](), false},
		{"map", reflect.TypeFor[map[int]int](), false},
		{"chan", reflect.TypeFor[chan int](), false},
		{"func", reflect.TypeFor[func()](), false},
		{"interface", reflect.TypeFor[any](), false},
		{"struct with string", reflect.TypeFor[withString](), false},
		{"array of structs with string", reflect.TypeFor[nested](), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointerFree(tt.typ))
			// Second call is served from the cache.
			assert.Equal(t, tt.want, PointerFree(tt.typ))
		})
	}
}

func TestAlignUp(t *testing.T) {
	tests := []struct {
		off, align, want uintptr
	}{
		{0, 1, 0},
		{7, 1, 7},
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{17, 16, 32},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AlignUp(tt.off, tt.align), "AlignUp(%d, %d)", tt.off, tt.align)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, x := range []uintptr{1, 2, 4, 8, 16, 4096} {
		assert.True(t, IsPowerOfTwo(x), "%d", x)
	}
	for _, x := range []uintptr{0, 3, 6, 12, 4095} {
		assert.False(t, IsPowerOfTwo(x), "%d", x)
	}
}

func TestMulSize(t *testing.T) {
	got, ok := MulSize(1000, 8)
	assert.True(t, ok)
	assert.Equal(t, uintptr(8000), got)

	_, ok = MulSize(^uintptr(0)/2+1, 2)
	assert.False(t, ok)

	got, ok = MulSize(0, ^uintptr(0))
	assert.True(t, ok)
	assert.Equal(t, uintptr(0), got)
}

package bumparena

// Ref is a pointer into an arena that checks, on every access, that the
// arena has not been released since the pointer was handed out.
//
// Raw pointers returned by Alloc carry no such check; wrap them in a Ref
// when they outlive the code that owns the arena.
type Ref[T any] struct {
	p     *T
	arena *Arena
	gen   uint64
}

// NewRef wraps p, which must have been allocated through al.
func NewRef[T any](al *Allocator, p *T) Ref[T] {
	al.check()
	return Ref[T]{p: p, arena: al.arena, gen: al.gen}
}

// Valid reports whether the referenced memory is still live.
// The zero Ref is never valid.
func (r Ref[T]) Valid() bool {
	return r.arena != nil && r.arena.generation == r.gen
}

// Get returns the pointer, panicking with ErrReleased if the arena has
// been released.
func (r Ref[T]) Get() *T {
	if !r.Valid() {
		panic(ErrReleased)
	}
	return r.p
}

// SliceRef is the slice counterpart of Ref.
type SliceRef[T any] struct {
	s     []T
	arena *Arena
	gen   uint64
}

// NewSliceRef wraps s, which must have been allocated through al.
func NewSliceRef[T any](al *Allocator, s []T) SliceRef[T] {
	al.check()
	return SliceRef[T]{s: s, arena: al.arena, gen: al.gen}
}

// Valid reports whether the referenced memory is still live.
func (r SliceRef[T]) Valid() bool {
	return r.arena != nil && r.arena.generation == r.gen
}

// Len returns the slice length. It does not touch arena memory and never
// panics.
func (r SliceRef[T]) Len() int {
	return len(r.s)
}

// Get returns the slice, panicking with ErrReleased if the arena has been
// released.
func (r SliceRef[T]) Get() []T {
	if !r.Valid() {
		panic(ErrReleased)
	}
	return r.s
}

package bumparena

import "errors"

var (
	// ErrReleased is the panic cause when an arena, or an Allocator or Ref
	// borrowed from it, is used after Release.
	ErrReleased = errors.New("bumparena: use after Release()")
	// ErrNotCopySafe is the panic cause when a type containing Go pointers
	// is placed in the arena.
	ErrNotCopySafe = errors.New("bumparena: type is not pointer-free")
	// ErrSizeOverflow is the panic cause when a slice request does not fit
	// in the address space.
	ErrSizeOverflow = errors.New("bumparena: slice size overflow")
	// ErrNegativeLen is the panic cause for a negative slice length.
	ErrNegativeLen = errors.New("bumparena: negative slice length")
	// ErrOutOfMemory is the panic cause when backing storage for a new
	// chunk cannot be obtained.
	ErrOutOfMemory = errors.New("bumparena: out of memory")
)

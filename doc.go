// Package bumparena implements a chunked bump allocator (memory arena) for
// pointer-free value types.
//
// # Overview
//
// An arena hands out memory by advancing a cursor through large chunks and
// frees everything at once when it is released. There is no per-allocation
// bookkeeping and no individual free. This suits:
//
//   - Building many small values that all die together
//   - Parsers, planners and graph builders with phase-scoped data
//   - Reducing garbage collection pressure for bulk numeric data
//
// # Basic Usage
//
//	a := bumparena.New()   // 4 KiB minimum chunks
//	defer a.Release()      // Frees every chunk at once
//
//	al := a.Allocator()
//
//	x := bumparena.Alloc(al, int32(44))
//	w := bumparena.AllocDefault[float64](al)
//	s := bumparena.AllocSlice(al, []byte("abc"))
//	sq := bumparena.AllocSliceFunc(al, 10, func(i int) int { return i * i })
//	zs := bumparena.AllocSliceDefault[uint64](al, 4)
//
// Go methods cannot take type parameters, so the typed operations are
// functions that take the Allocator as their first argument.
//
// # Pointer-free Types
//
// Arena memory is not scanned by the garbage collector, so only types that
// contain no Go pointers may be stored: numbers, bools, and arrays and
// structs built from them. Strings, slices, maps, channels, funcs,
// interfaces and pointers are rejected with a panic wrapping ErrNotCopySafe.
//
// # Lifetime
//
// Everything an Allocator returns is valid until the Arena is released.
// Allocators borrowed before Release panic with ErrReleased when used
// afterwards. Raw pointers and slices cannot be checked; wrap them with
// NewRef or NewSliceRef to get a checked accessor.
//
// # Thread Safety
//
// An Arena and its Allocators are not safe for concurrent use. Give each
// goroutine its own arena, or synchronize externally.
//
// # Memory Layout
//
// The first chunk has the minimum chunk size. When a request does not fit in
// the current chunk, a new chunk of twice the current capacity (or of the
// request size, if larger) is appended. Earlier chunks are never moved or
// reused, so growth never invalidates outstanding pointers. Chunks start on
// a MaxAlign boundary and every allocation is aligned for its type.
//
// With WithOffHeap, chunks are anonymous memory mappings and are returned to
// the OS on Release.
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Memory in use: %d bytes\n", m.SizeInUse)
//	fmt.Printf("Total capacity: %d bytes\n", m.Capacity)
package bumparena

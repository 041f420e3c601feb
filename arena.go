package bumparena

import (
	"fmt"
	"log/slog"
	"math"
	"unsafe"

	"github.com/pavanmanishd/bumparena/internal/layout"
	"github.com/pavanmanishd/bumparena/internal/mmap"
)

// MaxAlign is the alignment of the first byte of every chunk. It covers the
// alignment of every Go type.
const MaxAlign = 16

// maxChunkSize bounds chunk capacity so that the padded heap allocation of
// a chunk still fits in an int.
const maxChunkSize = math.MaxInt - MaxAlign

// chunk represents a single memory chunk within an arena.
type chunk struct {
	buf     []byte        // backing memory, base aligned to MaxAlign
	base    uintptr       // address of buf[0]
	offset  uintptr       // allocation offset within buf
	mapping *mmap.Mapping // non-nil for off-heap chunks
}

// reserve carves size bytes aligned to align out of the chunk.
// It returns the start of the region and the padding skipped to reach it.
func (c *chunk) reserve(size, align uintptr) (unsafe.Pointer, uintptr, bool) {
	start := layout.AlignUp(c.base+c.offset, align) - c.base
	capacity := uintptr(len(c.buf))
	if start > capacity || size > capacity-start {
		return nil, 0, false
	}
	pad := start - c.offset
	c.offset = start + size
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(c.buf)), start), pad, true
}

// Arena is a chunked bump allocator. It owns every chunk and releases them
// together. Not goroutine-safe: use one arena per goroutine, or synchronize
// externally.
type Arena struct {
	chunks    []*chunk
	current   *chunk
	chunkSize int

	// generation changes on Release; Allocators and Refs compare against it.
	generation uint64
	released   bool

	offHeap bool
	log     *slog.Logger
	stats   stats
}

type stats struct {
	allocs  int
	growths int
	wasted  int
}

// New creates an Arena whose first chunk has the configured minimum
// capacity (DefaultChunkSize unless WithChunkSize is given).
func New(opts ...Option) *Arena {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newArena(cfg, cfg.chunkSize)
}

// NewWithCapacity creates an Arena whose first chunk holds exactly capacity
// bytes. Later chunks follow the usual growth policy. A capacity <= 0 starts
// with an empty chunk, so the first allocation grows the arena.
func NewWithCapacity(capacity int, opts ...Option) *Arena {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newArena(cfg, max(capacity, 0))
}

func newArena(cfg config, first int) *Arena {
	a := &Arena{
		chunkSize:  cfg.chunkSize,
		generation: 1,
		offHeap:    cfg.offHeap,
		log:        cfg.logger,
	}
	a.appendChunk(uintptr(first), "initial")
	return a
}

// Allocator returns a handle that allocates from this arena. Handles are
// cheap and interchangeable; only one should be in use at a time.
func (a *Arena) Allocator() *Allocator {
	a.panicIfReleased()
	return &Allocator{arena: a, gen: a.generation}
}

// Release drops all chunks at once and makes the arena unusable.
// Allocators and Refs borrowed from it panic on further use.
// Release is idempotent.
func (a *Arena) Release() {
	if a.released {
		return
	}
	capacity, inUse := a.Capacity(), a.SizeInUse()
	for i, c := range a.chunks {
		if c.mapping == nil {
			continue
		}
		if err := c.mapping.Close(); err != nil {
			a.log.Warn("failed to unmap chunk", "chunk", i, "capacity", len(c.buf), "error", err)
		}
	}
	n := len(a.chunks)
	a.chunks = nil
	a.current = nil
	a.released = true
	a.generation++
	a.log.Debug("arena released", "chunks", n, "capacity", capacity, "in_use", inUse)
}

// Released reports whether Release has been called.
func (a *Arena) Released() bool {
	return a.released
}

// reserve returns size bytes aligned to align from the current chunk,
// growing the arena when the chunk cannot hold the request.
func (a *Arena) reserve(size, align uintptr) unsafe.Pointer {
	if p, pad, ok := a.current.reserve(size, align); ok {
		a.stats.allocs++
		a.stats.wasted += int(pad)
		return p
	}
	return a.reserveSlow(size, align)
}

// reserveSlow handles allocation when the current chunk is exhausted.
func (a *Arena) reserveSlow(size, align uintptr) unsafe.Pointer {
	need := size
	if align > MaxAlign {
		need += align - MaxAlign
	}
	if need < size || need > maxChunkSize {
		panic(fmt.Errorf("reserve %d bytes: %w", size, ErrSizeOverflow))
	}
	a.grow(need)

	p, pad, ok := a.current.reserve(size, align)
	if !ok {
		panic(fmt.Sprintf("bumparena: fresh chunk of %d bytes cannot hold %d bytes", len(a.current.buf), size))
	}
	a.stats.allocs++
	a.stats.wasted += int(pad)
	return p
}

// grow appends a chunk of at least need bytes. Capacity doubles from the
// current chunk and never drops below the configured chunk size.
func (a *Arena) grow(need uintptr) {
	next := uintptr(a.chunkSize)
	if a.current != nil {
		if doubled := nextCapacity(uintptr(len(a.current.buf))); doubled > next {
			next = doubled
		}
	}
	if need > next {
		next = need
	}
	a.stats.growths++
	a.appendChunk(next, "exhausted")
}

func nextCapacity(prev uintptr) uintptr {
	if prev > maxChunkSize/2 {
		return maxChunkSize
	}
	return prev * 2
}

func (a *Arena) appendChunk(size uintptr, reason string) {
	c := a.newChunk(int(size))
	a.chunks = append(a.chunks, c)
	a.current = c
	a.log.Debug("chunk allocated",
		"capacity", len(c.buf),
		"chunks", len(a.chunks),
		"off_heap", c.mapping != nil,
		"reason", reason,
	)
}

func (a *Arena) newChunk(size int) *chunk {
	if size == 0 {
		return &chunk{}
	}
	if a.offHeap {
		m, err := mmap.MapAnon(size)
		if err != nil {
			panic(fmt.Errorf("map %d-byte chunk: %w: %w", size, ErrOutOfMemory, err))
		}
		buf := m.Bytes()
		return &chunk{buf: buf, base: uintptr(unsafe.Pointer(unsafe.SliceData(buf))), mapping: m}
	}

	// Over-allocate so the chunk can start on a MaxAlign boundary.
	raw := make([]byte, size+MaxAlign-1)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	off := layout.AlignUp(addr, MaxAlign) - addr
	buf := raw[off : off+uintptr(size) : off+uintptr(size)]
	return &chunk{buf: buf, base: addr + off}
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.released {
		panic(ErrReleased)
	}
}

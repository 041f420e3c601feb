package bumparena

import "fmt"

// SizeInUse returns the total number of bytes handed out by the arena.
// This includes padding skipped for alignment.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.offset)
	}
	return sum
}

// NumChunks returns the number of chunks currently held by the arena.
func (a *Arena) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total capacity (in bytes) of all chunks in the arena.
func (a *Arena) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the minimum chunk capacity used by this arena.
func (a *Arena) ChunkSize() int {
	return a.chunkSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.ChunkSize(),
		Utilization: a.Utilization(),
		Allocations: a.stats.allocs,
		Growths:     a.stats.growths,
		Wasted:      a.stats.wasted,
	}
}

// String implements fmt.Stringer.
func (a *Arena) String() string {
	return fmt.Sprintf("Arena{capacity_bytes: %d, chunks: %d, in_use: %d}",
		a.Capacity(), a.NumChunks(), a.SizeInUse())
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes handed out, padding included
	Capacity    int     // Total capacity in bytes
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Minimum chunk capacity
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
	Allocations int     // Non-empty reservations served
	Growths     int     // Chunks added because the current one was full
	Wasted      int     // Alignment padding in bytes
}

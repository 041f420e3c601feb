package bumparena

import "log/slog"

// DefaultChunkSize is the minimum capacity of a chunk (4 KiB).
const DefaultChunkSize = 4 << 10

type config struct {
	chunkSize int
	offHeap   bool
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{
		chunkSize: DefaultChunkSize,
		logger:    slog.New(slog.DiscardHandler),
	}
}

// Option configures an Arena.
type Option func(*config)

// WithChunkSize sets the minimum chunk capacity in bytes.
// If n <= 0, DefaultChunkSize is used.
func WithChunkSize(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = DefaultChunkSize
		}
		c.chunkSize = n
	}
}

// WithLogger sets the logger used for chunk growth and release events.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOffHeap backs chunks with anonymous memory mappings instead of the Go
// heap. Chunk memory is then returned to the OS on Release, and any pointer
// still held into the arena faults when dereferenced.
func WithOffHeap() Option {
	return func(c *config) {
		c.offHeap = true
	}
}

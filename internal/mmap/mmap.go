// Package mmap provides anonymous memory mappings used as off-heap arena
// storage. Memory obtained here is invisible to the garbage collector and is
// returned to the OS when the mapping is closed.
package mmap

import "errors"

// ErrInvalidSize is returned for negative mapping sizes.
var ErrInvalidSize = errors.New("mmap: invalid size")

// Mapping owns an anonymous, read-write memory mapping.
type Mapping struct {
	data   []byte
	closed bool
	unmap  func([]byte) error
}

// MapAnon maps size bytes of zeroed, private, read-write memory.
// A zero size yields an empty mapping that owns nothing.
func MapAnon(size int) (*Mapping, error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	if size == 0 {
		return &Mapping{}, nil
	}
	data, unmap, err := osMapAnon(size)
	if err != nil {
		return nil, err
	}
	return &Mapping{data: data, unmap: unmap}, nil
}

// Bytes returns the mapped memory, or nil once the mapping is closed.
func (m *Mapping) Bytes() []byte {
	if m.closed {
		return nil
	}
	return m.data
}

// Size returns the mapping length in bytes.
func (m *Mapping) Size() int {
	return len(m.data)
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	data := m.data
	m.data = nil
	if m.unmap != nil && data != nil {
		return m.unmap(data)
	}
	return nil
}

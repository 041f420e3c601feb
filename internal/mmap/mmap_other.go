//go:build !unix

package mmap

import "unsafe"

const pageSize = 4096

// Without anonymous mmap the mapping falls back to a heap slice, trimmed to
// start on a page boundary like a real mapping, and released to the
// garbage collector on Close.
func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	raw := make([]byte, size+pageSize-1)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	off := int((pageSize - addr%pageSize) % pageSize)
	return raw[off : off+size : off+size], nil, nil
}

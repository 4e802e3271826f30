// Package pool provides pooled block buffers for the transform passes.
//
// Both the scan and commit passes read the input in fixed-size blocks. The
// pool keeps those buffers out of the allocator's way when many files are
// processed through one process.
package pool

import "sync"

var blockPool = sync.Pool{
	New: func() any { return &[]byte{} },
}

// GetBlock retrieves a byte slice of exactly the given size from the pool.
//
// If the pooled slice has insufficient capacity, a new slice is allocated.
// The caller must call the returned cleanup function (typically with defer)
// to return the slice to the pool; the slice must not be used afterwards.
//
// Example:
//
//	block, cleanup := pool.GetBlock(format.BlockSize)
//	defer cleanup()
func GetBlock(size int) ([]byte, func()) {
	ptr, _ := blockPool.Get().(*[]byte)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]byte, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { blockPool.Put(ptr) }
}

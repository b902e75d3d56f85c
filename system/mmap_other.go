//go:build !unix

package system

import "unsafe"

// mmapAllocator falls back to the heap on platforms without an anonymous
// mapping syscall available through golang.org/x/sys/unix.
type mmapAllocator struct {
	heap *heapAllocator
}

func newMmapAllocator() *mmapAllocator {
	return &mmapAllocator{heap: newHeapAllocator()}
}

func (m *mmapAllocator) alloc(size, alignment int) (unsafe.Pointer, Tag, error) {
	p, tag, err := m.heap.alloc(size, alignment)
	tag.kind = Persistent
	return p, tag, err
}

func (m *mmapAllocator) free(tag Tag) error {
	return m.heap.free(tag)
}

package system

import (
	"fmt"
	"sync"
	"unsafe"
)

// heapAllocator backs Transient allocations with the Go heap. The
// over-allocated slice is retained in live until Free, both so the GC can't
// reclaim it out from under the arena and so Free has something to drop.
type heapAllocator struct {
	mu   sync.Mutex
	next uint64
	live map[uint64][]byte
}

func newHeapAllocator() *heapAllocator {
	return &heapAllocator{live: make(map[uint64][]byte)}
}

func (h *heapAllocator) alloc(size, alignment int) (unsafe.Pointer, Tag, error) {
	if size < 0 {
		return nil, Tag{}, fmt.Errorf("system: negative size %d", size)
	}
	// Over-allocate by alignment-1 so there is always a correctly aligned
	// offset somewhere inside the slice.
	buf := make([]byte, size+alignment-1)

	base := uintptr(0)
	if len(buf) > 0 {
		base = uintptr(unsafe.Pointer(&buf[0]))
	}
	aligned := (base + uintptr(alignment) - 1) &^ (uintptr(alignment) - 1)
	off := aligned - base

	h.mu.Lock()
	id := h.next
	h.next++
	h.live[id] = buf
	h.mu.Unlock()

	var p unsafe.Pointer
	if len(buf) > 0 {
		p = unsafe.Pointer(&buf[off])
	}
	return p, Tag{kind: Transient, id: id}, nil
}

func (h *heapAllocator) free(tag Tag) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.live, tag.id)
	return nil
}

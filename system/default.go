package system

import (
	"fmt"
	"sync"
	"unsafe"
)

// combined routes allocation requests to a heapAllocator or mmapAllocator by
// Kind. It is the process-wide singleton returned by Default().
type combined struct {
	once sync.Once
	heap *heapAllocator
	mmap *mmapAllocator
}

func (c *combined) init() {
	c.once.Do(func() {
		c.heap = newHeapAllocator()
		c.mmap = newMmapAllocator()
	})
}

func (c *combined) AlignedAlloc(size, alignment int, kind Kind) (unsafe.Pointer, Tag, error) {
	if alignment <= 0 || (alignment&(alignment-1)) != 0 {
		return nil, Tag{}, fmt.Errorf("system: alignment %d is not a power of two", alignment)
	}
	c.init()
	switch kind {
	case Transient:
		return c.heap.alloc(size, alignment)
	case Persistent:
		return c.mmap.alloc(size, alignment)
	default:
		return nil, Tag{}, fmt.Errorf("system: unknown kind %v", kind)
	}
}

func (c *combined) Free(addr unsafe.Pointer, tag Tag, kind Kind) error {
	_ = addr
	c.init()
	switch kind {
	case Transient:
		return c.heap.free(tag)
	case Persistent:
		return c.mmap.free(tag)
	default:
		return fmt.Errorf("system: unknown kind %v", kind)
	}
}

var defaultInstance = &combined{}

func defaultAllocator() Allocator { return defaultInstance }

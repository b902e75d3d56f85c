//go:build unix

package system

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// mmapAllocator backs Persistent allocations with an anonymous, private
// memory mapping, page-sized and over-mapped by alignment-1 bytes so an
// aligned offset always exists inside the mapping.
type mmapAllocator struct {
	mu   sync.Mutex
	next uint64
	live map[uint64]mapping
}

type mapping struct {
	base unsafe.Pointer
	len  int
}

func newMmapAllocator() *mmapAllocator {
	return &mmapAllocator{live: make(map[uint64]mapping)}
}

func (m *mmapAllocator) alloc(size, alignment int) (unsafe.Pointer, Tag, error) {
	if size < 0 {
		return nil, Tag{}, fmt.Errorf("system: negative size %d", size)
	}
	length := size + alignment - 1
	if length == 0 {
		length = 1
	}
	mem, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, Tag{}, fmt.Errorf("system: mmap %d bytes: %w", length, err)
	}

	base := uintptr(unsafe.Pointer(&mem[0]))
	aligned := (base + uintptr(alignment) - 1) &^ (uintptr(alignment) - 1)
	off := aligned - base

	m.mu.Lock()
	id := m.next
	m.next++
	m.live[id] = mapping{base: unsafe.Pointer(&mem[0]), len: length}
	m.mu.Unlock()

	return unsafe.Pointer(&mem[off]), Tag{kind: Persistent, id: id}, nil
}

func (m *mmapAllocator) free(tag Tag) error {
	m.mu.Lock()
	mp, ok := m.live[tag.id]
	if ok {
		delete(m.live, tag.id)
	}
	m.mu.Unlock()
	if !ok {
		return nil
	}
	mem := unsafe.Slice((*byte)(mp.base), mp.len)
	return unix.Munmap(mem)
}

package arena

import (
	"fmt"
	"iter"
	"sync"
	"unsafe"
)

// ArenaView is a fixed-length typed window onto an arena sub-range. It
// borrows — never owns — its backing memory; its validity is bounded by the
// parent arena's Live state and by the absence of an intervening Reset.
type ArenaView[T any] struct {
	arena       *Arena
	base        uintptr
	length      int
	capturedGen uint64
}

// NewView allocates length elements of T from a, aligned to
// NextPow2Clamped(sizeof(T)), and returns a view over them.
func NewView[T any](a *Arena, length int, tag string) (*ArenaView[T], error) {
	if !isPlainData[T]() {
		return nil, ErrInvalidElementType
	}
	if length < 1 {
		return nil, ErrInvalidLength
	}

	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	align := NextPow2Clamped(elemSize)

	addr, err := a.Allocate(elemSize*length, align, tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocationFailed, err)
	}

	return &ArenaView[T]{
		arena:       a,
		base:        addr,
		length:      length,
		capturedGen: a.snapshot(),
	}, nil
}

// Len returns the view's fixed length.
func (v *ArenaView[T]) Len() int { return v.length }

// RawBase returns the view's backing address.
func (v *ArenaView[T]) RawBase() uintptr { return v.base }

func (v *ArenaView[T]) slice() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(v.base)), v.length) //nolint:govet // base is a bump-arena address kept alive by the arena's system allocation
}

// At returns the element at index i.
func (v *ArenaView[T]) At(i int) (T, error) {
	var zero T
	if err := v.arena.check(v.capturedGen); err != nil {
		return zero, err
	}
	if i < 0 || i >= v.length {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, v.length)
	}
	return v.slice()[i], nil
}

// Set writes val at index i.
func (v *ArenaView[T]) Set(i int, val T) error {
	if err := v.arena.check(v.capturedGen); err != nil {
		return err
	}
	if i < 0 || i >= v.length {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, v.length)
	}
	v.slice()[i] = val
	return nil
}

// CopyFrom copies src into the view element-wise. len(src) must equal
// v.Len().
func (v *ArenaView[T]) CopyFrom(src []T) error {
	if err := v.arena.check(v.capturedGen); err != nil {
		return err
	}
	if len(src) != v.length {
		return fmt.Errorf("%w: src has %d elements, view has %d", ErrLengthMismatch, len(src), v.length)
	}
	copy(v.slice(), src)
	return nil
}

// CopyTo copies the view into dst element-wise. len(dst) must equal
// v.Len().
func (v *ArenaView[T]) CopyTo(dst []T) error {
	if err := v.arena.check(v.capturedGen); err != nil {
		return err
	}
	if len(dst) != v.length {
		return fmt.Errorf("%w: dst has %d elements, view has %d", ErrLengthMismatch, len(dst), v.length)
	}
	copy(dst, v.slice())
	return nil
}

// All produces a lazy, restartable, finite iterator over (index, element)
// pairs. Restartable: calling All() again walks from index 0, since the
// returned sequence carries no cursor state of its own.
func (v *ArenaView[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v.arena.check(v.capturedGen) != nil {
			return
		}
		s := v.slice()
		for i, val := range s {
			if !yield(i, val) {
				return
			}
		}
	}
}

// Parallel partitions [0, Len()) into workers disjoint, contiguous ranges
// and runs fn over each range on its own goroutine, rewriting every visited
// slot with fn's result. This is the one sanctioned concurrent-access
// pattern for a view: all workers touch disjoint indices of memory that was
// allocated before the parallel region started, and no Allocate/Reset/
// Dispose call on the backing arena may happen while this is running.
func (v *ArenaView[T]) Parallel(workers int, fn func(i int, cur T) T) error {
	if err := v.arena.check(v.capturedGen); err != nil {
		return err
	}
	if workers < 1 {
		workers = 1
	}
	if workers > v.length {
		workers = v.length
	}

	s := v.slice()
	chunk := (v.length + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, v.length)
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				s[i] = fn(i, s[i])
			}
		}(start, end)
	}
	wg.Wait()
	return nil
}

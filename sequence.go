package arena

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/quillmere/arena/logging"
)

// ArenaSequence is a fixed-capacity, arena-backed sequence of T: the same
// borrowing contract as ArenaView, plus a mutable Count bounded by a
// capacity fixed at construction. There is no destruction on Remove/Clear —
// T is plain data, so there is nothing to destruct, and slot bytes past
// Count are simply left intact until overwritten.
type ArenaSequence[T any] struct {
	arena       *Arena
	log         logging.Sink
	base        uintptr
	count       int
	capacity    int
	capturedGen uint64
}

// NewSequence allocates room for capacity elements of T from a and returns
// an empty sequence over them.
func NewSequence[T any](a *Arena, capacity int, tag string) (*ArenaSequence[T], error) {
	if !isPlainData[T]() {
		return nil, ErrInvalidElementType
	}
	if capacity < 0 {
		return nil, ErrInvalidLength
	}

	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	align := NextPow2Clamped(elemSize)

	addr, err := a.Allocate(elemSize*capacity, align, tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocationFailed, err)
	}

	return &ArenaSequence[T]{
		arena:       a,
		log:         a.log,
		base:        addr,
		capacity:    capacity,
		capturedGen: a.snapshot(),
	}, nil
}

// Count returns the number of live elements.
func (s *ArenaSequence[T]) Count() int { return s.count }

// Capacity returns the fixed element capacity chosen at construction.
func (s *ArenaSequence[T]) Capacity() int { return s.capacity }

func (s *ArenaSequence[T]) slice() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(s.base)), s.capacity) //nolint:govet // base is a bump-arena address kept alive by the arena's system allocation
}

// Add appends x, failing with ErrCapacityExceeded if the sequence is full.
func (s *ArenaSequence[T]) Add(x T) error {
	if err := s.arena.check(s.capturedGen); err != nil {
		return err
	}
	if s.count == s.capacity {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, s.capacity)
	}
	s.slice()[s.count] = x
	s.count++
	return nil
}

// AddMany appends xs in order, failing with ErrCapacityExceeded (state
// unchanged) if there is not room for all of them.
func (s *ArenaSequence[T]) AddMany(xs []T) error {
	if err := s.arena.check(s.capturedGen); err != nil {
		return err
	}
	if s.count+len(xs) > s.capacity {
		return fmt.Errorf("%w: have %d, want room for %d more (capacity %d)", ErrCapacityExceeded, s.count, len(xs), s.capacity)
	}
	copy(s.slice()[s.count:], xs)
	s.count += len(xs)
	return nil
}

// InsertAt shifts slots [i, Count) right by one and writes x at i.
func (s *ArenaSequence[T]) InsertAt(i int, x T) error {
	if err := s.arena.check(s.capturedGen); err != nil {
		return err
	}
	if i < 0 || i > s.count {
		return fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, i, s.count)
	}
	if s.count == s.capacity {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, s.capacity)
	}
	sl := s.slice()
	copy(sl[i+1:s.count+1], sl[i:s.count])
	sl[i] = x
	s.count++
	return nil
}

// RemoveAt shifts slots (i, Count) left by one, removing the element at i.
// i == -1 means "remove the last element". Fails with ErrEmptyRemove if the
// sequence is empty.
func (s *ArenaSequence[T]) RemoveAt(i int) error {
	if err := s.arena.check(s.capturedGen); err != nil {
		return err
	}
	if s.count == 0 {
		return ErrEmptyRemove
	}
	if i == -1 {
		i = s.count - 1
	}
	if i < 0 || i >= s.count {
		return fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, i, s.count)
	}
	sl := s.slice()
	copy(sl[i:s.count-1], sl[i+1:s.count])
	s.count--
	return nil
}

// Clear sets Count to zero. Slot bytes are left intact.
func (s *ArenaSequence[T]) Clear() {
	s.count = 0
}

// At returns the element at index i, which must be in [0, Count).
func (s *ArenaSequence[T]) At(i int) (T, error) {
	var zero T
	if err := s.arena.check(s.capturedGen); err != nil {
		return zero, err
	}
	if i < 0 || i >= s.count {
		return zero, fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, i, s.count)
	}
	return s.slice()[i], nil
}

// Set writes val at index i, which must be in [0, Count).
func (s *ArenaSequence[T]) Set(i int, val T) error {
	if err := s.arena.check(s.capturedGen); err != nil {
		return err
	}
	if i < 0 || i >= s.count {
		return fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, i, s.count)
	}
	s.slice()[i] = val
	return nil
}

// ToOwnedArray produces a fresh, caller-owned slice holding a copy of the
// live prefix. If Count == 0, this logs a Warning and returns an empty
// slice. If the generation check fails (the backing arena was reset or
// disposed since construction, detected only in arenadebug builds), it
// returns an empty slice without reading arena memory.
func (s *ArenaSequence[T]) ToOwnedArray() []T {
	if s.arena.check(s.capturedGen) != nil {
		return []T{}
	}
	if s.count == 0 {
		s.arena.logger().Log("sequence.to_owned_array", "sequence is empty", logging.Warning)
		return []T{}
	}
	out := make([]T, s.count)
	copy(out, s.slice()[:s.count])
	return out
}

// ToView allocates a new ArenaView[T] of length Count in a and copies the
// live prefix into it.
func (s *ArenaSequence[T]) ToView(a *Arena, tag string) (*ArenaView[T], error) {
	if err := s.arena.check(s.capturedGen); err != nil {
		return nil, err
	}
	if s.count == 0 {
		return nil, fmt.Errorf("arena: %w: cannot view zero elements", ErrInvalidLength)
	}
	v, err := NewView[T](a, s.count, tag)
	if err != nil {
		return nil, err
	}
	if err := v.CopyFrom(s.slice()[:s.count]); err != nil {
		return nil, err
	}
	return v, nil
}

// All produces a lazy, restartable, finite iterator over (index, element)
// pairs for the live prefix [0, Count).
func (s *ArenaSequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if s.arena.check(s.capturedGen) != nil {
			return
		}
		sl := s.slice()
		for i := 0; i < s.count; i++ {
			if !yield(i, sl[i]) {
				return
			}
		}
	}
}

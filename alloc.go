package arena

import (
	"fmt"
	"unsafe"
)

// SmartAllocate carves out room for one T from a, aligned to
// NextPow2Clamped(sizeof(T)), and returns a pointer into arena memory.
// T must be plain data (see isPlainData); violating that is fatal.
func SmartAllocate[T any](a *Arena, tag string) (*T, error) {
	if !isPlainData[T]() {
		return nil, ErrInvalidElementType
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	align := NextPow2Clamped(size)

	addr, err := a.Allocate(size, align, tag)
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(addr)), nil //nolint:govet // addr is a bump-arena address kept alive by the arena's system allocation
}

// SmartAllocateSlice carves out room for n contiguous Ts from a, aligned to
// NextPow2Clamped(sizeof(T)), and returns a slice over arena memory.
func SmartAllocateSlice[T any](a *Arena, n int, tag string) ([]T, error) {
	if !isPlainData[T]() {
		return nil, ErrInvalidElementType
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidLength, n)
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	align := NextPow2Clamped(elemSize)

	addr, err := a.Allocate(elemSize*n, align, tag)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(addr)), n), nil //nolint:govet // addr is a bump-arena address kept alive by the arena's system allocation
}

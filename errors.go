package arena

import "errors"

// Sentinel errors for every failure kind the core can raise. Wrap with
// fmt.Errorf("%w: ...") for context; compare with errors.Is.
var (
	// ErrInvalidAlignment is raised both at arena construction (fatal — the
	// arena could not be built) and at allocation time (non-fatal — the
	// call is rejected and the arena is left exactly as it was).
	ErrInvalidAlignment = errors.New("arena: alignment is not a power of two")

	// ErrOutOfMemory is raised by New (construction fails) and
	// Arena.Allocate (the call is rejected, arena state unchanged).
	ErrOutOfMemory = errors.New("arena: out of memory")

	// ErrInvalidElementType is raised by ArenaView/ArenaSequence
	// construction when T is not a plain-data type this package can place
	// in raw memory.
	ErrInvalidElementType = errors.New("arena: element type is not plain data")

	// ErrInvalidLength is raised by ArenaView construction when length < 1
	// and by ArenaSequence construction when capacity < 0.
	ErrInvalidLength = errors.New("arena: length must be >= 1")

	// ErrAllocationFailed is raised by ArenaView/ArenaSequence construction
	// when the backing arena could not satisfy the underlying allocation.
	ErrAllocationFailed = errors.New("arena: backing allocation failed")

	// ErrIndexOutOfRange is raised by indexers, InsertAt and RemoveAt.
	ErrIndexOutOfRange = errors.New("arena: index out of range")

	// ErrCapacityExceeded is raised by Add, AddMany and InsertAt when a
	// sequence has no room left.
	ErrCapacityExceeded = errors.New("arena: capacity exceeded")

	// ErrEmptyRemove is raised by RemoveAt on an empty sequence.
	ErrEmptyRemove = errors.New("arena: remove from empty sequence")

	// ErrLengthMismatch is raised by View.CopyFrom/CopyTo when the supplied
	// slice's length does not match the view's length.
	ErrLengthMismatch = errors.New("arena: length mismatch")
)

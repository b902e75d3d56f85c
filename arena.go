// Package arena implements a bump-pointer memory arena and the typed,
// unmanaged views over it: a single up-front block backs many small typed
// allocations, none of which are ever freed individually — the arena is
// reset (rewound to empty) or disposed (released to the system allocator)
// as a whole.
//
// This is the allocator engine the rest of the module's packages build on:
// system.Allocator supplies the raw aligned bytes, monitor.Registry records
// what was carved out of them, and logging.Sink/config.Snapshot are the two
// purely-external contracts the core consults without ever owning.
package arena

import (
	"fmt"
	"unsafe"

	"github.com/quillmere/arena/config"
	"github.com/quillmere/arena/logging"
	"github.com/quillmere/arena/monitor"
	"github.com/quillmere/arena/system"
)

// DefaultAlignment is the arena-level block alignment used when New is
// called with alignment <= 0.
const DefaultAlignment = 64

// Arena is a bump-pointer allocator over one fixed-capacity, contiguous
// byte block. It is not safe for concurrent mutation (see ArenaView.Parallel
// for the one sanctioned concurrent-access pattern); distinct arenas are
// fully independent and may be used from different goroutines freely.
type Arena struct {
	generation

	id        int64
	base      unsafe.Pointer
	capacity  int
	alignment int
	kind      system.Kind
	tag       system.Tag

	offset int
	waste  int
	live   bool

	alloc    system.Allocator
	registry *monitor.Registry
	log      logging.Sink
}

// New constructs an Arena identified by id, backed by capacity bytes from
// alloc under kind's lifetime policy, itself aligned to alignment (a power
// of two; DefaultAlignment if <= 0).
//
// alloc and registry may be nil, in which case system.Default() and
// monitor.Shared() are used — the common case for a single-process caller
// that does not need to substitute a test double.
func New(id int64, capacity int, kind system.Kind, alignment int, alloc system.Allocator, registry *monitor.Registry, log logging.Sink) (*Arena, error) {
	if alignment <= 0 {
		alignment = DefaultAlignment
	}
	if !IsPowerOfTwo(alignment) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlignment, alignment)
	}
	if alloc == nil {
		alloc = system.Default()
	}
	if registry == nil {
		registry = monitor.Shared()
	}
	if log == nil {
		log = logging.Nop()
	}

	if capacity < 0 {
		capacity = 0
	}
	p, tag, err := alloc.AlignedAlloc(capacity, alignment, kind)
	if err != nil {
		if config.Load().EnableLogging {
			log.Log("arena.new", fmt.Sprintf("failed to allocate %d bytes for arena %d: %v", capacity, id, err), logging.Error)
		}
		return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}

	a := &Arena{
		id:        id,
		base:      p,
		capacity:  capacity,
		alignment: alignment,
		kind:      kind,
		tag:       tag,
		live:      true,
		alloc:     alloc,
		registry:  registry,
		log:       log,
	}
	a.logger().Log("arena.new", fmt.Sprintf("arena %d live: capacity=%d alignment=%d kind=%v", id, capacity, alignment, kind), logging.Success)
	return a, nil
}

// ID returns the arena's caller-assigned identifier.
func (a *Arena) ID() int64 { return a.id }

// Capacity returns the arena's total byte capacity, fixed for its lifetime.
func (a *Arena) Capacity() int { return a.capacity }

// Offset returns the next free byte index.
func (a *Arena) Offset() int { return a.offset }

// Waste returns cumulative alignment-padding bytes skipped since creation or
// the last Reset.
func (a *Arena) Waste() int { return a.waste }

// IsLive reports whether the arena has not yet been disposed.
func (a *Arena) IsLive() bool { return a.live }

// Allocate carves out size bytes aligned to alignment, tagged for the
// monitor, and returns the resulting address as an arena-relative absolute
// address (base + aligned offset).
//
// If alignment is not a power of two, this is non-fatal: it logs a Warning
// and returns (0, ErrInvalidAlignment) with the arena left untouched. Out of
// memory (the request would exceed capacity) logs an Error and returns
// (0, ErrOutOfMemory), again with the arena untouched. A zero-size request
// is accepted and recorded, advancing nothing, so tag-only markers remain
// visible in the monitor.
func (a *Arena) Allocate(size, alignment int, tag string) (uintptr, error) {
	if !a.live {
		return 0, fmt.Errorf("arena %d: %w", a.id, ErrAllocationFailed)
	}
	if !IsPowerOfTwo(alignment) {
		a.logger().Log("arena.allocate", fmt.Sprintf("arena %d: alignment %d is not a power of two", a.id, alignment), logging.Warning)
		return 0, fmt.Errorf("%w: %d", ErrInvalidAlignment, alignment)
	}
	if size < 0 {
		size = 0
	}

	alignedOffset := (a.offset + alignment - 1) &^ (alignment - 1)
	if alignedOffset+size > a.capacity {
		a.logger().Log("arena.allocate", fmt.Sprintf("arena %d: out of memory: need %d at offset %d, capacity %d", a.id, size, alignedOffset, a.capacity), logging.Error)
		return 0, fmt.Errorf("%w: arena %d", ErrOutOfMemory, a.id)
	}

	padding := alignedOffset - a.offset
	a.offset = alignedOffset + size

	cfg := config.Load()
	if cfg.TrackAlignmentLoss {
		a.waste += padding
	}
	if cfg.TrackAllocations {
		a.registry.Record(monitor.Record{
			ArenaID:   a.id,
			Offset:    alignedOffset,
			Size:      size,
			Alignment: alignment,
			Padding:   padding,
			Tag:       tag,
		})
	}
	a.logger().Log("arena.allocate", fmt.Sprintf("arena %d: %d bytes @%d align=%d tag=%q", a.id, size, alignedOffset, alignment, tag), logging.Info)

	return uintptr(a.base) + uintptr(alignedOffset), nil
}

// Reset rewinds offset and waste to zero and clears this arena's monitor
// records, without releasing or zeroing the backing block. Every outstanding
// view/sequence rooted in this arena is logically invalidated.
func (a *Arena) Reset() {
	a.offset = 0
	a.waste = 0
	a.registry.Clear(a.id)
	a.bump()
	a.logger().Log("arena.reset", fmt.Sprintf("arena %d reset", a.id), logging.Success)
}

// Dispose releases the backing block to the system allocator and marks the
// arena no longer live. Idempotent: a second call is a no-op.
func (a *Arena) Dispose() error {
	if !a.live {
		return nil
	}
	a.live = false
	a.bump()
	a.registry.Clear(a.id)
	if err := a.alloc.Free(a.base, a.tag, a.kind); err != nil {
		a.logger().Log("arena.dispose", fmt.Sprintf("arena %d: free failed: %v", a.id, err), logging.Error)
		return err
	}
	a.logger().Log("arena.dispose", fmt.Sprintf("arena %d disposed", a.id), logging.Success)
	return nil
}

// logger returns a.log, or logging.Nop() if logging has been disabled since
// the arena was constructed: config.Snapshot.EnableLogging is re-read on
// every operation, not cached, so toggling it at runtime takes effect
// promptly.
func (a *Arena) logger() logging.Sink {
	if !config.Load().EnableLogging {
		return logging.Nop()
	}
	return a.log
}

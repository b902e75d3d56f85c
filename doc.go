// Package arena implements a bump-pointer memory arena for Go.
//
// # Overview
//
// An arena allocator hands out aligned sub-ranges of one fixed-capacity
// block by advancing a single offset. There is no per-allocation free: the
// whole arena is either Reset (rewound to empty, ready for reuse) or
// Dispose'd (its block returned to the system allocator) once its
// allocation cycle ends. This trades the flexibility of a general-purpose
// allocator for O(1), GC-pressure-free allocation well suited to
// short-lifetime, high-throughput cycles — procedural generation, per-frame
// scratch buffers, simulation ticks, pathfinding working sets.
//
// # Basic usage
//
//	a, err := arena.New(0, 1<<16, system.Transient, 0, nil, nil, nil)
//	if err != nil {
//		// handle fatal construction error
//	}
//	defer a.Dispose()
//
//	type Particle struct{ X, Y, VX, VY float32 }
//
//	p, err := arena.SmartAllocate[Particle](a, "particle")
//	particles, err := arena.SmartAllocateSlice[Particle](a, 1024, "particles")
//
//	view, err := arena.NewView[Particle](a, 1024, "particle-view")
//	seq, err := arena.NewSequence[Particle](a, 1024, "particle-seq")
//
//	a.Reset() // O(number of live monitor records); block is not zeroed
//
// # Thread safety
//
// A single Arena is not safe for concurrent mutation: two goroutines calling
// Allocate on the same arena race on offset and waste. Distinct arenas are
// fully independent and may be mutated from different goroutines freely.
// The one sanctioned form of concurrent access to a single arena is
// (*ArenaView[T]).Parallel: fan a read-modify-write over disjoint indices of
// one view across a worker pool, with no Allocate/Reset/Dispose call on the
// backing arena in flight at the same time.
//
// # Metrics and monitoring
//
// Every successful allocation is recorded by a monitor.Registry (by default
// the process-wide monitor.Shared()) when config.Snapshot.TrackAllocations
// is enabled. Arena.Metrics and Arena.Summary surface per-arena waste,
// utilization and the allocation listing for debug/test paths.
//
// # Important notes
//
//   - An arena's backing block is fixed at construction; it never grows.
//   - No individual deallocation — use Reset or Dispose for bulk cleanup.
//   - Reset does not zero memory.
//   - A view or sequence is a borrow: its validity ends at the next Reset of
//     its backing arena, or at Dispose. Built with the arenadebug build tag,
//     this is checked on every access via a generation counter; release
//     builds pay nothing for the check and the behavior is undefined.
package arena

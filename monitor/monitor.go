// Package monitor implements the process-wide allocation-tracking registry:
// a write-rare, read-during-debug map of per-arena allocation records, plus
// a summary report over a caller-supplied set of live arenas.
//
// The registry holds only plain-data rows keyed by arena id; it never
// retains a reference to an Arena and cannot affect allocator state or fail
// on the caller's behalf — it is purely observational. Whether tracking is
// enabled at all is the caller's decision (the arena package consults
// config.Snapshot.TrackAllocations before ever calling Record), so the
// registry itself has no configuration dependency.
package monitor

import (
	"fmt"
	"strings"
	"sync"
)

// Record is one allocation event: the arena it belongs to, the aligned
// offset it was placed at, its size and alignment, the padding spent to
// reach that offset, and its caller-supplied tag.
type Record struct {
	ArenaID   int64
	Offset    int
	Size      int
	Alignment int
	Padding   int
	Tag       string
}

// LiveArena is the minimal view Summary needs of a live arena: enough to
// compute waste ratio without the monitor package importing arena (which
// imports monitor), which would be a cycle.
type LiveArena struct {
	ID       int64
	Capacity int
	Waste    int
}

// ArenaReport is one arena's entry in a Summary Report.
type ArenaReport struct {
	ArenaID     int64
	Waste       int
	WasteRatio  float64
	Allocations []Record
}

// Report is the result of Summary: one ArenaReport per requested live arena.
type Report struct {
	Arenas []ArenaReport
}

// String renders a human-readable multi-line summary, used by debug/test
// paths that want to print a report rather than inspect it programmatically.
func (r Report) String() string {
	var b strings.Builder
	for _, a := range r.Arenas {
		fmt.Fprintf(&b, "arena %d: waste=%d (%.2f%%) allocations=%d\n",
			a.ArenaID, a.Waste, a.WasteRatio*100, len(a.Allocations))
	}
	return b.String()
}

// Registry is the process-wide allocation-tracking registry. The zero value
// is ready to use.
type Registry struct {
	mu      sync.Mutex
	records map[int64][]Record
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[int64][]Record)}
}

var (
	sharedOnce sync.Once
	shared     *Registry
)

// Shared returns the process-wide default Registry.
func Shared() *Registry {
	sharedOnce.Do(func() { shared = NewRegistry() })
	return shared
}

// Record appends a row for rec.ArenaID. Order of records for one arena is
// preserved.
func (r *Registry) Record(rec Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.records == nil {
		r.records = make(map[int64][]Record)
	}
	r.records[rec.ArenaID] = append(r.records[rec.ArenaID], rec)
}

// Clear removes all rows for arenaID.
func (r *Registry) Clear(arenaID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, arenaID)
}

// Records returns a snapshot of the rows currently held for arenaID.
func (r *Registry) Records(arenaID int64) []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := r.records[arenaID]
	out := make([]Record, len(rows))
	copy(out, rows)
	return out
}

// Summary builds a Report for the given live arenas: total waste, waste
// ratio, and the per-allocation listing for each.
func (r *Registry) Summary(live map[int64]LiveArena) Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	rep := Report{Arenas: make([]ArenaReport, 0, len(live))}
	for id, la := range live {
		ratio := 0.0
		if la.Capacity > 0 {
			ratio = float64(la.Waste) / float64(la.Capacity)
		}
		rows := r.records[id]
		allocs := make([]Record, len(rows))
		copy(allocs, rows)
		rep.Arenas = append(rep.Arenas, ArenaReport{
			ArenaID:     id,
			Waste:       la.Waste,
			WasteRatio:  ratio,
			Allocations: allocs,
		})
	}
	return rep
}

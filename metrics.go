package arena

import "github.com/quillmere/arena/monitor"

// Metrics is a point-in-time snapshot of one arena's allocation statistics.
type Metrics struct {
	ID          int64
	SizeInUse   int     // Bytes currently allocated (Offset).
	Capacity    int     // Total byte capacity, fixed for the arena's lifetime.
	Waste       int     // Cumulative alignment-padding bytes since creation or the last Reset.
	Utilization float64 // Ratio of bytes in use to total capacity (0.0-1.0).
	WasteRatio  float64 // Ratio of waste to total capacity (0.0-1.0).
}

// Metrics returns a snapshot of this arena's statistics. Capacity 0 yields
// Utilization and WasteRatio of 0 rather than dividing by zero.
func (a *Arena) Metrics() Metrics {
	m := Metrics{
		ID:        a.id,
		SizeInUse: a.offset,
		Capacity:  a.capacity,
		Waste:     a.waste,
	}
	if a.capacity > 0 {
		m.Utilization = float64(a.offset) / float64(a.capacity)
		m.WasteRatio = float64(a.waste) / float64(a.capacity)
	}
	return m
}

// Summary asks registry for a debug report covering this arena alone. This
// is a convenience over monitor.Registry.Summary for the common
// single-arena case; it is used by debug/test paths only, same as the
// monitor's Summary itself.
func (a *Arena) Summary() monitor.Report {
	return a.registry.Summary(map[int64]monitor.LiveArena{
		a.id: {ID: a.id, Capacity: a.capacity, Waste: a.waste},
	})
}

package monitor_test

import (
	"testing"

	"github.com/quillmere/arena/monitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordClearAndRecords(t *testing.T) {
	r := monitor.NewRegistry()

	r.Record(monitor.Record{ArenaID: 1, Offset: 0, Size: 8, Alignment: 8, Tag: "a"})
	r.Record(monitor.Record{ArenaID: 1, Offset: 8, Size: 16, Alignment: 16, Padding: 0, Tag: "b"})
	r.Record(monitor.Record{ArenaID: 2, Offset: 0, Size: 4, Alignment: 4, Tag: "other"})

	rows := r.Records(1)
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].Tag)
	assert.Equal(t, "b", rows[1].Tag)

	require.Len(t, r.Records(2), 1)

	r.Clear(1)
	assert.Empty(t, r.Records(1))
	require.Len(t, r.Records(2), 1, "clearing one arena must not affect another")
}

func TestRecordsSnapshotIsIndependentOfFutureWrites(t *testing.T) {
	r := monitor.NewRegistry()
	r.Record(monitor.Record{ArenaID: 1, Tag: "first"})

	snap := r.Records(1)
	r.Record(monitor.Record{ArenaID: 1, Tag: "second"})

	require.Len(t, snap, 1, "a returned snapshot must not grow when new records are appended")
}

func TestSummary(t *testing.T) {
	r := monitor.NewRegistry()
	r.Record(monitor.Record{ArenaID: 1, Offset: 0, Size: 8, Alignment: 8, Padding: 0, Tag: "x"})
	r.Record(monitor.Record{ArenaID: 1, Offset: 32, Size: 8, Alignment: 32, Padding: 24, Tag: "y"})

	report := r.Summary(map[int64]monitor.LiveArena{
		1: {ID: 1, Capacity: 256, Waste: 24},
	})

	require.Len(t, report.Arenas, 1)
	assert.Equal(t, int64(1), report.Arenas[0].ArenaID)
	assert.Equal(t, 24, report.Arenas[0].Waste)
	assert.InDelta(t, 24.0/256.0, report.Arenas[0].WasteRatio, 1e-9)
	assert.Len(t, report.Arenas[0].Allocations, 2)
	assert.Contains(t, report.String(), "arena 1")
}

func TestSharedIsASingleton(t *testing.T) {
	assert.Same(t, monitor.Shared(), monitor.Shared())
}

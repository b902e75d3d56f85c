package arena_test

import (
	"bytes"
	"testing"

	"github.com/quillmere/arena"
	"github.com/quillmere/arena/logging"
	"github.com/quillmere/arena/monitor"
	"github.com/quillmere/arena/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEndToEndProceduralGenerationCycle exercises the shape the package
// doc's example describes: one arena per tick, a typed view filled in
// parallel, a sequence built up incrementally, then a Reset for the next
// tick — with a real logging sink and a dedicated monitor.Registry wired in.
func TestEndToEndProceduralGenerationCycle(t *testing.T) {
	var logs bytes.Buffer
	sink := logging.NewZerolog(&logs)
	reg := monitor.NewRegistry()

	a, err := arena.New(42, 1<<16, system.Transient, 64, nil, reg, sink)
	require.NoError(t, err)
	defer a.Dispose()

	type cell struct{ Height float32 }

	field, err := arena.NewView[cell](a, 256, "heightfield")
	require.NoError(t, err)

	err = field.Parallel(4, func(i int, cur cell) cell {
		return cell{Height: float32(i) * 0.5}
	})
	require.NoError(t, err)

	got, err := field.At(10)
	require.NoError(t, err)
	assert.Equal(t, float32(5.0), got.Height)

	queue, err := arena.NewSequence[int32](a, 16, "spawn-queue")
	require.NoError(t, err)
	for i := int32(0); i < 5; i++ {
		require.NoError(t, queue.Add(i))
	}
	assert.Equal(t, []int32{0, 1, 2, 3, 4}, queue.ToOwnedArray())

	assert.NotEmpty(t, reg.Records(42))
	assert.Contains(t, logs.String(), "arena.new")

	a.Reset()
	assert.Zero(t, a.Offset())
	assert.Empty(t, reg.Records(42))

	// Every outstanding view/sequence rooted in the arena is now logically
	// invalid; building a new one against the fresh arena still works.
	next, err := arena.NewView[cell](a, 8, "next-tick")
	require.NoError(t, err)
	assert.Equal(t, 8, next.Len())
}

func TestPersistentKindSurvivesAcrossAllocations(t *testing.T) {
	reg := monitor.NewRegistry()
	a, err := arena.New(7, 4096, system.Persistent, 64, nil, reg, logging.Nop())
	require.NoError(t, err)
	defer a.Dispose()

	seq, err := arena.NewSequence[int64](a, 32, "persistent-ids")
	require.NoError(t, err)
	require.NoError(t, seq.AddMany([]int64{1, 2, 3}))
	assert.Equal(t, []int64{1, 2, 3}, seq.ToOwnedArray())
}

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

func TestSequenceLifecycle(t *testing.T) {
	a, _ := newTestArena(t, 30, 4096)
	seq, err := arena.NewSequence[int32](a, 8, "ints")
	require.NoError(t, err)

	for _, v := range []int32{1, 2, 4, 5, 6} {
		require.NoError(t, seq.Add(v))
	}
	require.NoError(t, seq.InsertAt(2, 3))
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, seq.ToOwnedArray())
	assert.Equal(t, 6, seq.Count())

	require.NoError(t, seq.RemoveAt(2))
	assert.Equal(t, []int32{1, 2, 4, 5, 6}, seq.ToOwnedArray())

	require.NoError(t, seq.RemoveAt(-1))
	assert.Equal(t, []int32{1, 2, 4, 5}, seq.ToOwnedArray())

	seq.Clear()
	assert.Zero(t, seq.Count())
	assert.Equal(t, []int32{}, seq.ToOwnedArray())
}

func TestSequenceCapacityGuard(t *testing.T) {
	a, _ := newTestArena(t, 31, 256)
	seq, err := arena.NewSequence[int32](a, 1, "ints")
	require.NoError(t, err)

	require.NoError(t, seq.Add(25))
	err = seq.Add(26)
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrCapacityExceeded)
	assert.Equal(t, 1, seq.Count())
}

func TestSequenceAddManyRejectsPartialOverflow(t *testing.T) {
	a, _ := newTestArena(t, 32, 256)
	seq, err := arena.NewSequence[int32](a, 3, "ints")
	require.NoError(t, err)

	err = seq.AddMany([]int32{1, 2, 3, 4})
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrCapacityExceeded)
	assert.Zero(t, seq.Count(), "a rejected AddMany must leave the sequence untouched")

	require.NoError(t, seq.AddMany([]int32{1, 2, 3}))
	assert.Equal(t, 3, seq.Count())
}

func TestSequenceRemoveFromEmptyFails(t *testing.T) {
	a, _ := newTestArena(t, 33, 256)
	seq, err := arena.NewSequence[int32](a, 4, "ints")
	require.NoError(t, err)

	err = seq.RemoveAt(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrEmptyRemove)
}

func TestSequenceInsertRemoveIsIdentityOnPrefix(t *testing.T) {
	a, _ := newTestArena(t, 34, 256)
	seq, err := arena.NewSequence[int32](a, 8, "ints")
	require.NoError(t, err)
	require.NoError(t, seq.AddMany([]int32{1, 2, 3, 4}))

	before := seq.ToOwnedArray()
	require.NoError(t, seq.InsertAt(2, 99))
	require.NoError(t, seq.RemoveAt(2))
	assert.Equal(t, before, seq.ToOwnedArray())
}

func TestSequenceToOwnedArrayOnEmptyLogsAndReturnsEmpty(t *testing.T) {
	var logs bytes.Buffer
	a, err := arena.New(35, 256, system.Transient, 64, nil, monitor.NewRegistry(), logging.NewZerolog(&logs))
	require.NoError(t, err)
	seq, err := arena.NewSequence[int32](a, 4, "ints")
	require.NoError(t, err)

	out := seq.ToOwnedArray()
	assert.Empty(t, out)
	assert.NotNil(t, out)
	assert.Contains(t, logs.String(), "sequence is empty")
}

func TestSequenceToView(t *testing.T) {
	a, _ := newTestArena(t, 36, 4096)
	seq, err := arena.NewSequence[int32](a, 4, "ints")
	require.NoError(t, err)
	require.NoError(t, seq.AddMany([]int32{10, 20, 30}))

	v, err := seq.ToView(a, "snapshot")
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())

	var out []int32
	for _, val := range v.All() {
		out = append(out, val)
	}
	assert.Equal(t, []int32{10, 20, 30}, out)
}

func TestSequenceIndexedBounds(t *testing.T) {
	a, _ := newTestArena(t, 37, 256)
	seq, err := arena.NewSequence[int32](a, 4, "ints")
	require.NoError(t, err)
	require.NoError(t, seq.Add(1))

	_, err = seq.At(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrIndexOutOfRange)

	err = seq.Set(5, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrIndexOutOfRange)
}

package lazylist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/lazyseq/lazylist"
	"github.com/charmingruby/lazyseq/seq"
)

func TestAppend(t *testing.T) {
	strict := lazylist.Of(1).Append(2, 3)
	assert.Zero(t, strict.Pending())
	assert.Equal(t, "[1 2 3]", strict.String())

	pulls := 0
	l := lazylist.FromSource(counted(seq.Range(0, 2), &pulls)).Append(7).Append(8)
	assert.Zero(t, pulls)
	assert.Equal(t, 2, l.Pending(), "consecutive appends share one trailing snapshot")

	got, err := l.Materialize()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 7, 8}, got)
}

func TestAppendAfterCloneDoesNotLeak(t *testing.T) {
	l := lazylist.FromSource(seq.Range(0, 1)).ExtendSlice([]int{1})
	c := l.Clone()
	c.Append(2)

	got, err := l.Materialize()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, got)

	got, err = c.Materialize()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestInsert(t *testing.T) {
	pulls := 0
	l := lazylist.FromSource(naturals(&pulls))
	require.NoError(t, l.Insert(2, 100))
	assert.Equal(t, 2, pulls)
	assert.Equal(t, 3, l.Materialized())

	got, err := l.Slice(0, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 100, 2}, got)

	tests := []struct {
		name   string
		index  int
		values []int
		want   string
	}{
		{"past the end", 10, []int{3}, "[1 2 3]"},
		{"front", 0, []int{0}, "[0 1 2]"},
		{"from the end", -1, []int{9}, "[1 9 2]"},
		{"clamped to start", -10, []int{-1, 0}, "[-1 0 1 2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lazylist.FromSource(seq.Range(1, 3))
			require.NoError(t, l.Insert(tt.index, tt.values...))
			assert.Equal(t, tt.want, l.String())
		})
	}
}

func TestSetDeletePop(t *testing.T) {
	l := lazylist.FromSource(seq.Range(0, 5))

	require.NoError(t, l.Set(1, 10))
	assert.Equal(t, 2, l.Materialized())
	require.NoError(t, l.Delete(0))

	v, err := l.Pop(-1)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t, "[10 2 3]", l.String())

	_, err = l.Pop(3)
	require.ErrorIs(t, err, lazylist.ErrIndexOutOfRange)
	require.ErrorIs(t, l.Set(-4, 0), lazylist.ErrIndexOutOfRange)
	require.ErrorIs(t, l.Delete(5), lazylist.ErrIndexOutOfRange)
}

func TestReplaceAndDeleteRange(t *testing.T) {
	pulls := 0
	l := lazylist.FromSource(naturals(&pulls))

	require.NoError(t, l.Replace(1, 3, 10, 11, 12))
	assert.Equal(t, 3, pulls, "only the replaced prefix is pulled")
	got, err := l.Slice(0, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 10, 11, 12, 3}, got)

	require.NoError(t, l.DeleteRange(0, 2))
	got, err = l.Slice(0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 12, 3}, got)

	require.NoError(t, l.Replace(5, 2, 99))
	got, err = l.Slice(0, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 12, 3, 4, 5, 99, 6}, got, "an empty range inserts at start")

	tests := []struct {
		name        string
		start, stop int
		values      []int
		want        string
	}{
		{"negative bounds", -2, lazylist.End, []int{7}, "[0 1 2 7]"},
		{"whole list", lazylist.Begin, lazylist.End, nil, "[]"},
		{"clamped stop", 3, 100, []int{8, 9}, "[0 1 2 8 9]"},
		{"past the end", 10, 20, []int{6}, "[0 1 2 3 4 6]"},
		{"from the end backwards", -1, -3, nil, "[0 1 2 3 4]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lazylist.FromSource(seq.Range(0, 5))
			require.NoError(t, l.Replace(tt.start, tt.stop, tt.values...))
			assert.Equal(t, tt.want, l.String())
		})
	}
}

func TestRemove(t *testing.T) {
	pulls := 0
	l := lazylist.FromSource(naturals(&pulls))

	removed, err := lazylist.Remove(l, 3)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 4, pulls)
	assert.Equal(t, 3, l.Materialized())

	got, err := l.Slice(0, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 4}, got)

	removed, err = lazylist.Remove(lazylist.Of(1), 5)
	require.NoError(t, err)
	assert.False(t, removed)
}

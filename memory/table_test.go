package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSingleInterval(t *testing.T) {
	tbl := New(100)
	assert.Equal(t, 100, tbl.Free())
	assert.Equal(t, []Interval{{Size: 100, Addr: 0}}, tbl.Intervals())
}

func TestFindSpaceEmptyTable(t *testing.T) {
	tbl := &Table{}
	_, ok := tbl.FindSpace(1)
	assert.False(t, ok, "find_space on an empty table must report no candidate, not panic")
}

func TestFindSpaceExactFit(t *testing.T) {
	tbl := New(100)
	iv, ok := tbl.FindSpace(100)
	require.True(t, ok)
	assert.Equal(t, Interval{Size: 100, Addr: 0}, iv)
	assert.Equal(t, 0, tbl.Free())
}

func TestFindSpaceAscendingSizeTieBreak(t *testing.T) {
	tbl := &Table{}
	tbl.Insert(30, 0)
	tbl.Insert(30, 100)
	tbl.Insert(50, 200)

	iv, ok := tbl.FindSpace(20)
	require.True(t, ok)
	assert.Equal(t, Interval{Size: 30, Addr: 0}, iv, "smallest sufficient interval wins, earliest insertion breaks ties")
}

func TestFindSpaceNoCandidate(t *testing.T) {
	tbl := &Table{}
	tbl.Insert(10, 0)
	_, ok := tbl.FindSpace(20)
	assert.False(t, ok)
}

func TestInsertZeroSizeRejected(t *testing.T) {
	tbl := &Table{}
	tbl.Insert(0, 5)
	assert.Empty(t, tbl.Intervals())
}

func TestDefragmentAdjacency(t *testing.T) {
	tbl := &Table{}
	tbl.Insert(10, 0)
	tbl.Insert(20, 10)
	tbl.Insert(30, 40)
	tbl.Defragment()
	assert.Equal(t, []Interval{{Size: 30, Addr: 0}, {Size: 30, Addr: 40}}, tbl.Intervals())

	tbl.Insert(10, 30)
	tbl.Defragment()
	assert.Equal(t, []Interval{{Size: 70, Addr: 0}}, tbl.Intervals())
}

func TestDefragmentNoAdjacency(t *testing.T) {
	tbl := &Table{}
	tbl.Insert(10, 0)
	tbl.Insert(10, 50)
	tbl.Defragment()
	assert.Equal(t, []Interval{{Size: 10, Addr: 0}, {Size: 10, Addr: 50}}, tbl.Intervals())
}

func TestRoundTripInsertDefragment(t *testing.T) {
	tbl := &Table{}
	tbl.Insert(40, 0)
	tbl.Insert(60, 40)
	tbl.Defragment()
	assert.Equal(t, []Interval{{Size: 100, Addr: 0}}, tbl.Intervals())
}

func TestExactFitRemainderSkipped(t *testing.T) {
	tbl := New(100)
	iv, ok := tbl.FindSpace(100)
	require.True(t, ok)
	remainder := iv.Size - 100
	tbl.Insert(remainder, iv.Addr+100)
	assert.Empty(t, tbl.Intervals(), "zero-size remainder must not appear as a hole")
}

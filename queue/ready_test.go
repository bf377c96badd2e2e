package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mookial/SOS-Op-Sys-Simulation/pcb"
)

func TestReadyAppendInitializesCursor(t *testing.T) {
	rq := NewReady()
	assert.Nil(t, rq.Current())

	j1 := pcb.New(1, 0, 0, 0, 0)
	rq.Append(j1)
	assert.Same(t, j1, rq.Current())
	assert.Equal(t, 1, rq.Len())
}

func TestReadyAdvanceCyclesInInsertionOrder(t *testing.T) {
	rq := NewReady()
	j1, j2, j3 := pcb.New(1, 0, 0, 0, 0), pcb.New(2, 0, 0, 0, 0), pcb.New(3, 0, 0, 0, 0)
	rq.Append(j1)
	rq.Append(j2)
	rq.Append(j3)

	require.Same(t, j1, rq.Current())
	rq.Advance()
	assert.Same(t, j2, rq.Current())
	rq.Advance()
	assert.Same(t, j3, rq.Current())
	rq.Advance()
	assert.Same(t, j1, rq.Current(), "cursor wraps back to the head")
}

func TestReadyAdvanceSingleMemberIsNoOp(t *testing.T) {
	rq := NewReady()
	j1 := pcb.New(1, 0, 0, 0, 0)
	rq.Append(j1)
	rq.Advance()
	assert.Same(t, j1, rq.Current())
}

func TestReadyRemoveCursorTargetRepositionsToSuccessor(t *testing.T) {
	rq := NewReady()
	j1, j2, j3 := pcb.New(1, 0, 0, 0, 0), pcb.New(2, 0, 0, 0, 0), pcb.New(3, 0, 0, 0, 0)
	rq.Append(j1)
	rq.Append(j2)
	rq.Append(j3)

	rq.Remove(j1)
	assert.Same(t, j2, rq.Current(), "removing the cursor's target repositions to the successor")
	assert.Equal(t, 2, rq.Len())
}

func TestReadyRemoveLastMemberClearsCursor(t *testing.T) {
	rq := NewReady()
	j1 := pcb.New(1, 0, 0, 0, 0)
	rq.Append(j1)
	rq.Remove(j1)
	assert.Nil(t, rq.Current())
	assert.Equal(t, 0, rq.Len())
}

func TestReadyRemoveNonCursorMemberLeavesCursor(t *testing.T) {
	rq := NewReady()
	j1, j2 := pcb.New(1, 0, 0, 0, 0), pcb.New(2, 0, 0, 0, 0)
	rq.Append(j1)
	rq.Append(j2)
	rq.Remove(j2)
	assert.Same(t, j1, rq.Current())
}

func TestReadySlotsReusedAfterRemoval(t *testing.T) {
	rq := NewReady()
	j1, j2 := pcb.New(1, 0, 0, 0, 0), pcb.New(2, 0, 0, 0, 0)
	rq.Append(j1)
	rq.Remove(j1)

	rq.Append(j2)
	assert.Equal(t, 1, rq.Len())
	got := []*pcb.Job{}
	rq.Each(func(j *pcb.Job) { got = append(got, j) })
	assert.Equal(t, []*pcb.Job{j2}, got)
}

func TestReadyEachWalksInQueueOrder(t *testing.T) {
	rq := NewReady()
	j1, j2, j3 := pcb.New(1, 0, 0, 0, 0), pcb.New(2, 0, 0, 0, 0), pcb.New(3, 0, 0, 0, 0)
	rq.Append(j1)
	rq.Append(j2)
	rq.Append(j3)

	var got []*pcb.Job
	rq.Each(func(j *pcb.Job) { got = append(got, j) })
	assert.Equal(t, []*pcb.Job{j1, j2, j3}, got)
}

func TestReadyManyAppendsCrossWordBoundary(t *testing.T) {
	rq := NewReady()
	jobs := make([]*pcb.Job, 70)
	for i := range jobs {
		jobs[i] = pcb.New(i+1, 0, 0, 0, 0)
		rq.Append(jobs[i])
	}
	assert.Equal(t, 70, rq.Len())

	rq.Remove(jobs[10])
	jobs[10] = pcb.New(1000, 0, 0, 0, 0)
	rq.Append(jobs[10])
	assert.Equal(t, 70, rq.Len())
}

func TestReadyFind(t *testing.T) {
	rq := NewReady()
	j1, j2 := pcb.New(1, 0, 0, 0, 0), pcb.New(2, 0, 0, 0, 0)
	rq.Append(j1)
	rq.Append(j2)

	assert.Same(t, j2, rq.Find(2))
	assert.Nil(t, rq.Find(99))
}

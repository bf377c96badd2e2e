package queue

import (
	"math/bits"

	"github.com/Mookial/SOS-Op-Sys-Simulation/pcb"
)

// Ready is the CPU ready queue (RQ): resident jobs traversed round-robin
// by a single running cursor, with insertion at the tail.
//
// Slot allocation reuses the bitmap+CTZ scanning idiom of a reservation
// station free-list: occupied is a bitset over arena slots, and the next
// free slot is found with bits.TrailingZeros64 on the first non-full word,
// rather than a linear scan. Traversal order (the FIFO/round-robin
// semantics) is tracked separately in order, since slot reuse after a
// deletion does not preserve arrival order.
type Ready struct {
	slots    []*pcb.Job
	occupied []uint64
	order    []int
	cursor   *pcb.Job
}

// NewReady returns an empty ready queue.
func NewReady() *Ready {
	return &Ready{}
}

// Len reports the number of resident jobs.
func (r *Ready) Len() int { return len(r.order) }

func (r *Ready) positionOf(j *pcb.Job) int {
	for i, idx := range r.order {
		if r.slots[idx] == j {
			return i
		}
	}
	return -1
}

func (r *Ready) allocSlot() int {
	for w := range r.occupied {
		if r.occupied[w] != ^uint64(0) {
			return w*64 + bits.TrailingZeros64(^r.occupied[w])
		}
	}
	return len(r.occupied) * 64
}

func (r *Ready) markOccupied(i int, occupied bool) {
	w, b := i/64, uint(i%64)
	for len(r.occupied) <= w {
		r.occupied = append(r.occupied, 0)
	}
	if occupied {
		r.occupied[w] |= 1 << b
	} else {
		r.occupied[w] &^= 1 << b
	}
}

// Append inserts j at the tail. If the queue was empty, the running
// cursor is initialized to j.
func (r *Ready) Append(j *pcb.Job) {
	idx := r.allocSlot()
	if idx >= len(r.slots) {
		grown := make([]*pcb.Job, idx+1)
		copy(grown, r.slots)
		r.slots = grown
	}
	r.slots[idx] = j
	r.markOccupied(idx, true)
	r.order = append(r.order, idx)
	if r.cursor == nil {
		r.cursor = j
	}
}

// Current returns the job the running cursor points at, or nil if the
// queue is empty.
func (r *Ready) Current() *pcb.Job { return r.cursor }

// Advance moves the cursor to its cyclic successor. A queue of zero or one
// members does not move.
func (r *Ready) Advance() {
	if len(r.order) <= 1 {
		return
	}
	pos := r.positionOf(r.cursor)
	if pos == -1 {
		r.cursor = r.slots[r.order[0]]
		return
	}
	next := (pos + 1) % len(r.order)
	r.cursor = r.slots[r.order[next]]
}

// Remove deletes j from the ready queue. If j was the cursor's target, the
// cursor is repositioned to the successor (or cleared, if j was the only
// member) before j is erased.
func (r *Ready) Remove(j *pcb.Job) {
	pos := r.positionOf(j)
	if pos == -1 {
		return
	}

	if r.cursor == j {
		if len(r.order) == 1 {
			r.cursor = nil
		} else {
			next := (pos + 1) % len(r.order)
			r.cursor = r.slots[r.order[next]]
		}
	}

	idx := r.order[pos]
	r.markOccupied(idx, false)
	r.slots[idx] = nil
	r.order = append(r.order[:pos], r.order[pos+1:]...)
}

// Find returns the resident job with the given job number, or nil if no
// such job is in the queue.
func (r *Ready) Find(jobNumber int) *pcb.Job {
	for _, idx := range r.order {
		if r.slots[idx].Number == jobNumber {
			return r.slots[idx]
		}
	}
	return nil
}

// Each calls fn once per resident job, front to back in queue order. fn
// must not mutate the queue; use Remove after the walk completes (the
// accounting pass in package sched batches its deletions this way).
func (r *Ready) Each(fn func(*pcb.Job)) {
	for _, idx := range r.order {
		fn(r.slots[idx])
	}
}

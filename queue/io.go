package queue

// IO is the disk I/O queue (IOQ): a FIFO of outstanding disk requests,
// referenced by job number rather than by *pcb.Job pointer, since a job
// can have more than one request outstanding at a time (J3) and the
// queue only needs to know which job to wake, not hold the record itself.
type IO struct {
	numbers []int
}

// NewIO returns an empty disk I/O queue.
func NewIO() *IO { return &IO{} }

// Push enqueues one outstanding request for jobNumber.
func (q *IO) Push(jobNumber int) { q.numbers = append(q.numbers, jobNumber) }

// Front returns the job number at the head of the queue and true, or
// (0, false) if the queue is empty.
func (q *IO) Front() (int, bool) {
	if len(q.numbers) == 0 {
		return 0, false
	}
	return q.numbers[0], true
}

// Pop discards the head of the queue. It is a no-op on an empty queue.
func (q *IO) Pop() {
	if len(q.numbers) > 0 {
		q.numbers = q.numbers[1:]
	}
}

// Empty reports whether there are no outstanding requests.
func (q *IO) Empty() bool { return len(q.numbers) == 0 }

// Len reports how many requests are outstanding.
func (q *IO) Len() int { return len(q.numbers) }

// Numbers returns a snapshot of the outstanding job numbers, front to
// back. Mutating the returned slice has no effect on the queue.
func (q *IO) Numbers() []int {
	out := make([]int, len(q.numbers))
	copy(out, q.numbers)
	return out
}

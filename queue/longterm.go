package queue

import "github.com/Mookial/SOS-Op-Sys-Simulation/pcb"

// LongTerm is the long-term scheduler's admission queue (LTS): jobs
// waiting for enough contiguous core memory to be admitted. Ordering is
// FIFO by admission order.
type LongTerm struct {
	jobs []*pcb.Job
}

// NewLongTerm returns an empty long-term queue.
func NewLongTerm() *LongTerm { return &LongTerm{} }

// Push admits j to the back of the queue.
func (l *LongTerm) Push(j *pcb.Job) { l.jobs = append(l.jobs, j) }

// Len reports how many jobs are waiting.
func (l *LongTerm) Len() int { return len(l.jobs) }

// Each walks the queue front to back in admission order. fn must not
// mutate the queue; use RemoveMatching for that.
func (l *LongTerm) Each(fn func(*pcb.Job)) {
	for _, j := range l.jobs {
		fn(j)
	}
}

// RemoveMatching deletes every job for which match reports true,
// preserving the relative order of the survivors. It is the long-term
// scheduler's promotion step: one pass decides which jobs now fit, then
// one pass removes exactly those.
func (l *LongTerm) RemoveMatching(match func(*pcb.Job) bool) {
	kept := l.jobs[:0]
	for _, j := range l.jobs {
		if !match(j) {
			kept = append(kept, j)
		}
	}
	l.jobs = kept
}

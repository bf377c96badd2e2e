package queue

import "github.com/Mookial/SOS-Op-Sys-Simulation/pcb"

// ShortTerm is the short-term swap queue (STS): jobs that have been
// admitted (core memory reserved) and are waiting for the drum to swap
// them in before they can join the ready queue.
type ShortTerm struct {
	jobs []*pcb.Job
}

// NewShortTerm returns an empty short-term queue.
func NewShortTerm() *ShortTerm { return &ShortTerm{} }

// Push enqueues j at the back.
func (s *ShortTerm) Push(j *pcb.Job) { s.jobs = append(s.jobs, j) }

// Front returns the head of the queue without removing it, or nil if
// empty.
func (s *ShortTerm) Front() *pcb.Job {
	if len(s.jobs) == 0 {
		return nil
	}
	return s.jobs[0]
}

// Pop removes and returns the head of the queue, or nil if empty.
func (s *ShortTerm) Pop() *pcb.Job {
	if len(s.jobs) == 0 {
		return nil
	}
	j := s.jobs[0]
	s.jobs = s.jobs[1:]
	return j
}

// Empty reports whether the queue has no waiting jobs.
func (s *ShortTerm) Empty() bool { return len(s.jobs) == 0 }

// Len reports how many jobs are waiting.
func (s *ShortTerm) Len() int { return len(s.jobs) }

// Package pcb holds the job control block: the per-job record the
// scheduler carries through admission, residency, and termination.
package pcb

// Job is the process/job control block (PCB). Equality between two Jobs is
// by Number alone; every queue in this system that holds a Job holds a
// pointer to the single arena-resident copy, so there is never a need to
// compare by value.
type Job struct {
	// Immutable once admitted.
	Number   int
	Priority int
	Size     int
	Arrival  int64

	// Mutable while resident.
	TimeRemaining int64
	CoreAddr      int
	IOCount       int
	StartedAt     int64

	Blocked    bool
	PendingIO  bool
	Terminated bool
	Running    bool
}

// New constructs a Job from the admission fields. TimeRemaining starts
// equal to the CPU time owed; all flags start clear.
func New(number, priority, size int, timeRemaining, arrival int64) *Job {
	return &Job{
		Number:        number,
		Priority:      priority,
		Size:          size,
		Arrival:       arrival,
		TimeRemaining: timeRemaining,
	}
}

// Equal reports whether two jobs share the same job number (J-record
// identity is by job number, not by pointer or by value).
func (j *Job) Equal(other *Job) bool {
	if j == nil || other == nil {
		return j == other
	}
	return j.Number == other.Number
}

// Charge decrements TimeRemaining by delta, floored at zero, and reports
// whether the job is now out of CPU time (J5).
func (j *Job) Charge(delta int64) (exhausted bool) {
	j.TimeRemaining -= delta
	if j.TimeRemaining <= 0 {
		j.TimeRemaining = 0
		exhausted = true
	}
	return exhausted
}

// RefreshPendingIO recomputes PendingIO from IOCount (J2): pending I/O is
// true if and only if at least one disk request is outstanding.
func (j *Job) RefreshPendingIO() {
	j.PendingIO = j.IOCount > 0
}

// RequestIO records one more outstanding disk request for the job.
func (j *Job) RequestIO() {
	j.IOCount++
	j.RefreshPendingIO()
}

// CompleteIO records completion of one outstanding disk request.
func (j *Job) CompleteIO() {
	if j.IOCount > 0 {
		j.IOCount--
	}
	j.RefreshPendingIO()
}

// Runnable reports whether the dispatcher may hand the CPU to this job:
// neither blocked nor terminated.
func (j *Job) Runnable() bool {
	return !j.Blocked && !j.Terminated
}

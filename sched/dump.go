package sched

import "github.com/Mookial/SOS-Op-Sys-Simulation/pcb"

// JobSnapshot is a read-only copy of one job's observable state, used
// only for diagnostics — mutating it has no effect on the scheduler.
type JobSnapshot struct {
	Number        int
	Blocked       bool
	Terminated    bool
	PendingIO     bool
	Running       bool
	TimeRemaining int64
	StartedAt     int64
}

// Snapshot is a full diagnostic dump of scheduler state: RQ and LTS
// membership, IOQ contents, and device-busy flags.
type Snapshot struct {
	Ready    []JobSnapshot
	LongTerm []JobSnapshot
	IO       []int
	DrumBusy bool
	DiskBusy bool
}

func snapshotOf(j *pcb.Job) JobSnapshot {
	return JobSnapshot{
		Number:        j.Number,
		Blocked:       j.Blocked,
		Terminated:    j.Terminated,
		PendingIO:     j.PendingIO,
		Running:       j.Running,
		TimeRemaining: j.TimeRemaining,
		StartedAt:     j.StartedAt,
	}
}

// DumpState returns a structured snapshot of the scheduler's queues and
// device-busy flags, for diagnostics and tests. Mutating the result has
// no effect on the scheduler.
func (s *Scheduler) DumpState() Snapshot {
	snap := Snapshot{
		IO:       s.ioq.Numbers(),
		DrumBusy: s.drumBusy,
		DiskBusy: s.diskBusy,
	}
	s.rq.Each(func(j *pcb.Job) { snap.Ready = append(snap.Ready, snapshotOf(j)) })
	s.lts.Each(func(j *pcb.Job) { snap.LongTerm = append(snap.LongTerm, snapshotOf(j)) })
	return snap
}

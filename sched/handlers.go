package sched

import "github.com/Mookial/SOS-Op-Sys-Simulation/pcb"

// CrInt admits a new job. The host delivers the job's fields in p[1..5];
// whether free space exists decides if the job goes straight to the STS
// or waits in the LTS for memory to free up.
func (s *Scheduler) CrInt(a *int, p *Registers) {
	number, priority, size, timeRemaining, arrival := p[P1], p[P2], p[P3], p[P4], p[P5]
	j := pcb.New(number, priority, size, int64(timeRemaining), int64(arrival))

	if iv, ok := s.table.FindSpace(size); ok {
		j.CoreAddr = iv.Addr
		s.table.Insert(iv.Size-size, iv.Addr+size)
		s.table.Defragment()
		s.sts.Push(j)
	} else {
		s.lts.Push(j)
	}

	s.epilogue(a, p)
	if s.metrics != nil {
		s.metrics.JobsAdmitted.Inc()
	}
	s.logHandler("crint", j.Number, *a)
}

// DrmInt handles a completed drum swap-in. The STS head moves to the
// ready queue; drum_busy is cleared only after the epilogue's "kick idle
// devices" step has run, so a second swap-in cannot start until this
// completion is fully committed.
func (s *Scheduler) DrmInt(a *int, p *Registers) {
	j := s.sts.Pop()
	jobNumber := 0
	if j != nil {
		s.rq.Append(j)
		jobNumber = j.Number
	}

	s.epilogue(a, p)
	s.drumBusy = false

	s.logHandler("drmint", jobNumber, *a)
}

// DskInt handles a completed disk transfer. The IOQ head identifies
// which job's outstanding request just finished; if the job is no
// longer in RQ the event is silently dropped. disk_busy is cleared
// after the epilogue, then immediately re-armed if another request is
// already queued.
func (s *Scheduler) DskInt(a *int, p *Registers) {
	jobNumber, _ := s.ioq.Front()
	if j := s.rq.Find(jobNumber); j != nil {
		j.CompleteIO()
	}
	s.ioq.Pop()

	s.epilogue(a, p)
	s.diskBusy = false

	if next, ok := s.ioq.Front(); ok {
		s.host.StartDiskIO(next)
		s.diskBusy = true
	}

	s.logHandler("dskint", jobNumber, *a)
}

// Tro handles a timer interrupt: the running job's quantum has elapsed.
// Its slice is charged, it terminates if that exhausts its remaining
// time, and the cursor advances regardless.
func (s *Scheduler) Tro(a *int, p *Registers) {
	j := s.rq.Current()
	jobNumber := 0
	if j != nil {
		jobNumber = j.Number
		j.Running = false
		if j.Charge(int64(p[P5]) - j.StartedAt) {
			j.Terminated = true
		}
		s.rq.Advance()
	}

	s.epilogue(a, p)
	s.logHandler("tro", jobNumber, *a)
}

// Svc handles a supervisor call, dispatched on the sub-opcode already
// present in a. The calling job is always the running cursor's target:
// only a running job issues a supervisor call.
func (s *Scheduler) Svc(a *int, p *Registers) {
	j := s.rq.Current()
	jobNumber := 0
	if j != nil {
		jobNumber = j.Number
		switch *a {
		case SvcTerminate:
			j.Terminated = true
			j.Running = false
			j.Charge(int64(p[P5]) - j.StartedAt)
			s.rq.Advance()
		case SvcRequestIO:
			j.RequestIO()
			s.ioq.Push(j.Number)
		case SvcBlockUntilIODrained:
			if j.IOCount > 0 {
				j.Blocked = true
				j.Running = false
				j.Charge(int64(p[P5]) - j.StartedAt)
				s.rq.Advance()
			}
		}
	}

	s.epilogue(a, p)
	s.logHandler("svc", jobNumber, *a)
}

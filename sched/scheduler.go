// Package sched implements the long-term scheduler, the round-robin CPU
// dispatcher, the accounting pass, and the five interrupt handlers that
// together keep a single physical core, one drum, and one disk busy on
// behalf of a population of jobs.
package sched

import (
	"github.com/rs/zerolog"

	"github.com/Mookial/SOS-Op-Sys-Simulation/memory"
	"github.com/Mookial/SOS-Op-Sys-Simulation/metrics"
	"github.com/Mookial/SOS-Op-Sys-Simulation/pcb"
	"github.com/Mookial/SOS-Op-Sys-Simulation/queue"
)

// CoreSize is the fixed physical core, addressed [0, CoreSize).
const CoreSize = 100

// DefaultTimeSlice is the quantum granted to a dispatched job, in
// simulated time units, absent an override.
const DefaultTimeSlice int64 = 400

// Host is the external collaborator this core depends on: the two
// asynchronous device triggers that make a swap-in or a disk transfer
// happen. Completion arrives later as a DskInt/DrmInt call; Host itself
// is fire-and-forget.
type Host interface {
	StartDiskIO(jobNumber int)
	StartDrumIO(jobNumber, jobSize, coreAddr, direction int)
}

// Scheduler owns the free-space table, the four queues, the device-busy
// semaphores, and the quantum policy. It is not safe for concurrent use:
// the host guarantees one handler runs to completion before the next
// begins, so nothing here takes a lock.
type Scheduler struct {
	table *memory.Table
	lts   *queue.LongTerm
	sts   *queue.ShortTerm
	rq    *queue.Ready
	ioq   *queue.IO

	drumBusy bool
	diskBusy bool

	timeSlice int64

	host    Host
	log     zerolog.Logger
	tracing bool
	metrics *metrics.Collector
}

// Option configures a Scheduler at construction time.
type Option func(*Scheduler)

// WithLogger overrides the default no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Scheduler) { s.log = log }
}

// WithTimeSlice overrides DefaultTimeSlice.
func WithTimeSlice(quantum int64) Option {
	return func(s *Scheduler) { s.timeSlice = quantum }
}

// WithMetrics attaches a metrics.Collector; every handler invocation and
// accounting pass updates it. Omit for tests that don't care.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *Scheduler) { s.metrics = c }
}

// New constructs a freshly booted Scheduler: the default time slice,
// both device semaphores false, trace off, a single free interval
// covering the whole core, and all queues empty.
func New(host Host, opts ...Option) *Scheduler {
	s := &Scheduler{
		table:     memory.New(CoreSize),
		lts:       queue.NewLongTerm(),
		sts:       queue.NewShortTerm(),
		rq:        queue.NewReady(),
		ioq:       queue.NewIO(),
		timeSlice: DefaultTimeSlice,
		host:      host,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TraceOn switches the per-handler structured log line from Debug to
// Info level.
func (s *Scheduler) TraceOn() { s.tracing = true }

// TraceOff reverts TraceOn.
func (s *Scheduler) TraceOff() { s.tracing = false }

func (s *Scheduler) logHandler(handler string, jobNumber, a int) {
	var ev *zerolog.Event
	if s.tracing {
		ev = s.log.Info()
	} else {
		ev = s.log.Debug()
	}
	ev.Str("handler", handler).Int("job", jobNumber).Int("a", a).Msg("interrupt handled")

	if s.metrics != nil {
		s.metrics.RecordHandler(handler)
		s.metrics.ObserveState(s.table.Free(), s.rq.Len(), s.lts.Len(), s.drumBusy, s.diskBusy)
	}
}

// epilogue is the sequence shared by all five handlers: kick idle
// devices if work exists, then, if RQ is non-empty, run accounting and
// dispatch; otherwise report the CPU idle.
func (s *Scheduler) epilogue(a *int, p *Registers) {
	if !s.drumBusy {
		if j := s.sts.Front(); j != nil {
			s.host.StartDrumIO(j.Number, j.Size, j.CoreAddr, DrumDirectionSwapIn)
			s.drumBusy = true
		}
	}
	if !s.diskBusy {
		if jobNumber, ok := s.ioq.Front(); ok {
			s.host.StartDiskIO(jobNumber)
			s.diskBusy = true
		}
	}

	if s.rq.Len() > 0 {
		s.runAccounting(p)
		s.runDispatch(a, p)
	} else {
		*a = DirectiveIdle
	}
}

// runAccounting is the bookkeeping pass: one walk over RQ that
// recomputes pending_io, reclaims terminated jobs (returning their
// memory and, if the LTS has waiters, promoting them), clears blocked
// jobs whose I/O has drained, and charges running time. Deletions are
// collected during the walk and applied afterward, since Ready.Each
// does not support mutation mid-walk.
func (s *Scheduler) runAccounting(p *Registers) {
	if s.rq.Len() == 0 {
		return
	}

	var toRemove []*pcb.Job
	s.rq.Each(func(j *pcb.Job) {
		j.RefreshPendingIO()

		if j.Terminated && !j.PendingIO {
			toRemove = append(toRemove, j)
			s.table.Insert(j.Size, j.CoreAddr)
			s.table.Defragment()
			if s.lts.Len() > 0 {
				s.promote()
			}
		}

		if j.Blocked && !j.PendingIO {
			j.Blocked = false
		}

		if j.Running {
			j.Charge(int64(p[P5]) - j.StartedAt)
		}
	})

	for _, j := range toRemove {
		s.rq.Remove(j)
		if s.metrics != nil {
			s.metrics.JobsTerminated.Inc()
		}
	}
}

// promote is the long-term scheduler, invoked whenever memory is
// returned to the free-space table. It walks the LTS in its
// stored (admission) order, promotes every job that now fits to the
// STS, and removes exactly the promoted entries afterward.
func (s *Scheduler) promote() {
	var promoted []int
	s.lts.Each(func(j *pcb.Job) {
		iv, ok := s.table.FindSpace(j.Size)
		if !ok {
			return
		}
		j.CoreAddr = iv.Addr
		s.table.Insert(iv.Size-j.Size, iv.Addr+j.Size)
		s.table.Defragment()
		s.sts.Push(j)
		promoted = append(promoted, j.Number)
	})
	if len(promoted) == 0 {
		return
	}

	promotedSet := make(map[int]bool, len(promoted))
	for _, number := range promoted {
		promotedSet[number] = true
	}
	s.lts.RemoveMatching(func(j *pcb.Job) bool { return promotedSet[j.Number] })
}

// runDispatch is the round-robin dispatcher: starting from the running
// cursor, advance at most |RQ| steps looking for a runnable job. If
// none is found the CPU goes idle; otherwise the register file is
// populated and the job's slice begins.
func (s *Scheduler) runDispatch(a *int, p *Registers) {
	n := s.rq.Len()
	if n == 0 {
		*a = DirectiveIdle
		return
	}

	var candidate *pcb.Job
	for i := 0; i < n; i++ {
		c := s.rq.Current()
		if c != nil && c.Runnable() {
			candidate = c
			break
		}
		s.rq.Advance()
	}

	if candidate == nil {
		*a = DirectiveIdle
		return
	}

	*a = DirectiveRun
	quantum := s.timeSlice
	if candidate.TimeRemaining < quantum {
		quantum = candidate.TimeRemaining
	}
	p[P2] = candidate.CoreAddr
	p[P3] = candidate.Size
	p[P4] = int(quantum)
	candidate.StartedAt = int64(p[P5])
	candidate.Running = true
}

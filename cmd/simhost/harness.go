package main

import (
	"container/heap"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Mookial/SOS-Op-Sys-Simulation/sched"
)

// Fixed device latencies for the synthetic harness. The core treats
// start_disk_io/start_drum_io as fire-and-forget; these constants stand
// in for "however long the host's real drum/disk take".
const (
	drumLatency int64 = 25
	diskLatency int64 = 15
)

// jobSpec is one line of a scenario: the crint payload for a single job.
type jobSpec struct {
	Number        int
	Priority      int
	Size          int
	TimeRemaining int64
	Arrival       int64
}

// eventKind distinguishes the host-originated event types the harness
// drives the core with; svc is deliberately absent; supervisor calls
// are job-internal and are only exercised directly by the scenario
// subcommand, not by this event-driven runner.
type eventKind int

const (
	eventCrInt eventKind = iota
	eventDrmInt
	eventDskInt
	eventTro
)

type hostEvent struct {
	at   int64
	kind eventKind
	job  *jobSpec
}

// eventQueue is a time-ordered priority queue of hostEvent, satisfying
// container/heap.Interface.
type eventQueue []hostEvent

func (q eventQueue) Len() int            { return len(q) }
func (q eventQueue) Less(i, j int) bool  { return q[i].at < q[j].at }
func (q eventQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *eventQueue) Push(x interface{}) { *q = append(*q, x.(hostEvent)) }
func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	ev := old[n-1]
	*q = old[:n-1]
	return ev
}

// Harness is the host simulation harness: it delivers interrupts to the
// scheduler core and implements the two device primitives it relies on,
// start_disk_io and start_drum_io, by scheduling a completion event a
// fixed latency later.
type Harness struct {
	scheduler *sched.Scheduler
	log       zerolog.Logger
	events    eventQueue
	now       int64

	// nextTimerAt is the time of the most recently armed quantum-end
	// event. A dispatch can re-arm the timer before an earlier one
	// fires (e.g. a drmint dispatches a different job than the one a
	// stale tro was scheduled for); timerArmed is the guard that lets a
	// fired tro event recognize it is stale and no-op instead of
	// charging the wrong job's slice.
	nextTimerAt int64
	timerArmed  bool
}

// NewHarness seeds a Harness with the given job arrivals. The scheduler
// is supplied afterward via Attach, since the scheduler's own
// constructor needs this Harness as its Host first.
func NewHarness(log zerolog.Logger, jobs []jobSpec) *Harness {
	h := &Harness{log: log}
	heap.Init(&h.events)
	for i := range jobs {
		heap.Push(&h.events, hostEvent{at: jobs[i].Arrival, kind: eventCrInt, job: &jobs[i]})
	}
	return h
}

// Attach binds the scheduler this harness drives.
func (h *Harness) Attach(s *sched.Scheduler) { h.scheduler = s }

// StartDiskIO implements sched.Host.
func (h *Harness) StartDiskIO(jobNumber int) {
	heap.Push(&h.events, hostEvent{at: h.now + diskLatency, kind: eventDskInt})
}

// StartDrumIO implements sched.Host.
func (h *Harness) StartDrumIO(jobNumber, jobSize, coreAddr, direction int) {
	heap.Push(&h.events, hostEvent{at: h.now + drumLatency, kind: eventDrmInt})
}

// Run drains the event queue, delivering each event to the scheduler in
// time order, and returns the number of interrupts delivered.
func (h *Harness) Run() int {
	delivered := 0
	for h.events.Len() > 0 {
		ev := heap.Pop(&h.events).(hostEvent)
		h.now = ev.at

		var a int
		p := sched.Registers{}
		p[sched.P5] = int(h.now)

		if ev.kind == eventTro {
			if !h.timerArmed || ev.at != h.nextTimerAt {
				continue // a later dispatch already re-armed or cleared the timer
			}
			h.timerArmed = false
		}

		switch ev.kind {
		case eventCrInt:
			p[sched.P1] = ev.job.Number
			p[sched.P2] = ev.job.Priority
			p[sched.P3] = ev.job.Size
			p[sched.P4] = int(ev.job.TimeRemaining)
			h.scheduler.CrInt(&a, &p)
		case eventDrmInt:
			h.scheduler.DrmInt(&a, &p)
		case eventDskInt:
			h.scheduler.DskInt(&a, &p)
		case eventTro:
			h.scheduler.Tro(&a, &p)
		}
		delivered++

		if a == sched.DirectiveRun {
			next := h.now + int64(p[sched.P4])
			heap.Push(&h.events, hostEvent{at: next, kind: eventTro})
			h.nextTimerAt = next
			h.timerArmed = true
		}

		h.log.Debug().
			Int64("at", h.now).
			Int("kind", int(ev.kind)).
			Int("a", a).
			Msg(fmt.Sprintf("delivered %s", kindName(ev.kind)))
	}
	return delivered
}

func kindName(k eventKind) string {
	switch k {
	case eventCrInt:
		return "crint"
	case eventDrmInt:
		return "drmint"
	case eventDskInt:
		return "dskint"
	case eventTro:
		return "tro"
	default:
		return "unknown"
	}
}

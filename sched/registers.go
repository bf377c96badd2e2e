package sched

// Registers is the host/core register file, a fixed six-slot array the
// host and the handlers both read and write across a call.
//
// The host reuses the same slots for both handler input and, on
// dispatch, the outbound description of the job to run: P2/P3/P4 carry
// core_addr/job_size/quantum out of a dispatching handler even though on
// a crint call the same slots carried priority/job_size/time_remaining
// in. P5 is the one slot with a single meaning throughout: the host's
// current wall-clock time, supplied on every call. The sixth slot is
// part of the register file's fixed width but carries nothing this core
// writes or reads; one register of the six goes unused here.
type Registers [6]int

const (
	P1 = 0 // job_number (crint input)
	P2 = 1 // priority (crint input); core_addr (dispatch output)
	P3 = 2 // job_size (crint input, dispatch output — same meaning both ways)
	P4 = 3 // time_remaining (crint input); quantum (dispatch output)
	P5 = 4 // current_time; always input
)

// Outbound directives for a.
const (
	DirectiveIdle = 1
	DirectiveRun  = 2
)

// Supervisor call sub-opcodes, dispatched on the inbound value of a.
const (
	SvcTerminate           = 5
	SvcRequestIO           = 6
	SvcBlockUntilIODrained = 7
)

// DrumDirectionSwapIn is the only drum transfer direction this core
// requests; swap-out is not modeled.
const DrumDirectionSwapIn = 0

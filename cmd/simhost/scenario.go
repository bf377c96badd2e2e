package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Mookial/SOS-Op-Sys-Simulation/sched"
)

// step is one register-file call against the scheduler, used to replay
// the canonical scenarios by hand rather than through the Harness's
// event-driven Run loop (supervisor calls are job-internal and never
// arrive through that loop).
type step struct {
	name string
	a    int
	p    sched.Registers
}

func newScenarioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario [1|3|4|6]",
		Short: "Replay one of the canonical scheduler scenarios and dump state after each step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, ok := scenarios[args[0]]
			if !ok {
				return fmt.Errorf("unknown scenario %q (want 1, 3, 4 or 6)", args[0])
			}

			runID := uuid.New()
			log := newLogger(runID)
			host := NewHarness(log, nil)
			scheduler, _ := newScheduler(host, log)
			host.Attach(scheduler)

			for _, st := range steps {
				a := st.a
				p := st.p
				dispatch(scheduler, st.name, &a, &p)
				snap := scheduler.DumpState()
				log.Info().
					Str("step", st.name).
					Int("a", a).
					Int("ready_jobs", len(snap.Ready)).
					Int("long_term_jobs", len(snap.LongTerm)).
					Int("io_outstanding", len(snap.IO)).
					Bool("drum_busy", snap.DrumBusy).
					Bool("disk_busy", snap.DiskBusy).
					Msg("scenario step complete")
			}
			return nil
		},
	}
	return cmd
}

func dispatch(s *sched.Scheduler, name string, a *int, p *sched.Registers) {
	switch name {
	case "crint":
		s.CrInt(a, p)
	case "drmint":
		s.DrmInt(a, p)
	case "dskint":
		s.DskInt(a, p)
	case "tro":
		s.Tro(a, p)
	case "svc":
		s.Svc(a, p)
	}
}

// scenarios holds a handful of canonical walkthroughs — exact-fit
// admission, deferred admission via the LTS, block/unblock on I/O, and
// a time-slice boundary — keyed by scenario number as a string so one
// can be selected from the CLI.
var scenarios = map[string][]step{
	"1": {
		{name: "crint", p: sched.Registers{sched.P1: 1, sched.P2: 0, sched.P3: 100, sched.P4: 100, sched.P5: 0}},
		{name: "drmint", p: sched.Registers{sched.P5: 0}},
		{name: "tro", p: sched.Registers{sched.P5: 100}},
	},
	"3": {
		{name: "crint", p: sched.Registers{sched.P1: 1, sched.P2: 0, sched.P3: 100, sched.P4: 1000, sched.P5: 0}},
		{name: "drmint", p: sched.Registers{sched.P5: 0}},
		{name: "crint", p: sched.Registers{sched.P1: 2, sched.P2: 0, sched.P3: 50, sched.P4: 500, sched.P5: 1}},
		{name: "svc", a: sched.SvcTerminate, p: sched.Registers{sched.P5: 500}},
	},
	"4": {
		{name: "crint", p: sched.Registers{sched.P1: 1, sched.P2: 0, sched.P3: 100, sched.P4: 1000, sched.P5: 0}},
		{name: "drmint", p: sched.Registers{sched.P5: 0}},
		{name: "svc", a: sched.SvcRequestIO, p: sched.Registers{sched.P5: 0}},
		{name: "svc", a: sched.SvcBlockUntilIODrained, p: sched.Registers{sched.P5: 0}},
		{name: "dskint", p: sched.Registers{sched.P5: 0}},
	},
	"6": {
		{name: "crint", p: sched.Registers{sched.P1: 1, sched.P2: 0, sched.P3: 40, sched.P4: 350, sched.P5: 0}},
		{name: "drmint", p: sched.Registers{sched.P5: 0}},
		{name: "tro", p: sched.Registers{sched.P5: 350}},
	},
}

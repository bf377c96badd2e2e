// Package metrics exposes the scheduler's internal state as Prometheus
// gauges and counters, so a host harness can scrape the same quantities
// the diagnostic trace (sched.Scheduler.DumpState) reports, without
// having to poll it.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector owns one family of gauges/counters, registered against a
// caller-supplied registerer. The scheduler updates the gauges and the
// handler counter at the end of every handler invocation, and counts
// terminated jobs in its accounting pass.
type Collector struct {
	FreeMemory    prometheus.Gauge
	ResidentJobs  prometheus.Gauge
	LongTermDepth prometheus.Gauge
	DrumBusy      prometheus.Gauge
	DiskBusy      prometheus.Gauge

	JobsAdmitted   prometheus.Counter
	JobsTerminated prometheus.Counter
	Handlers       *prometheus.CounterVec
}

// NewCollector builds and registers a Collector against reg. Passing a
// fresh prometheus.NewRegistry() keeps metrics scoped to one scheduler
// instance, which matters for tests that construct more than one.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		FreeMemory: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sos",
			Subsystem: "memory",
			Name:      "free_units",
			Help:      "Free core memory units currently untracked by any resident job.",
		}),
		ResidentJobs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sos",
			Subsystem: "scheduler",
			Name:      "resident_jobs",
			Help:      "Number of jobs currently in the CPU ready queue.",
		}),
		LongTermDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sos",
			Subsystem: "scheduler",
			Name:      "long_term_backlog",
			Help:      "Number of jobs waiting in the long-term admission queue.",
		}),
		DrumBusy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sos",
			Subsystem: "device",
			Name:      "drum_busy",
			Help:      "1 if a drum swap-in is in flight, 0 otherwise.",
		}),
		DiskBusy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sos",
			Subsystem: "device",
			Name:      "disk_busy",
			Help:      "1 if a disk transfer is in flight, 0 otherwise.",
		}),
		JobsAdmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sos",
			Subsystem: "scheduler",
			Name:      "jobs_admitted_total",
			Help:      "Jobs that found memory (or were queued to the LTS) via crint.",
		}),
		JobsTerminated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sos",
			Subsystem: "scheduler",
			Name:      "jobs_terminated_total",
			Help:      "Jobs removed from the ready queue after termination.",
		}),
		Handlers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sos",
			Subsystem: "scheduler",
			Name:      "handler_invocations_total",
			Help:      "Interrupt handler invocations by handler name.",
		}, []string{"handler"}),
	}

	reg.MustRegister(
		c.FreeMemory, c.ResidentJobs, c.LongTermDepth, c.DrumBusy, c.DiskBusy,
		c.JobsAdmitted, c.JobsTerminated, c.Handlers,
	)
	return c
}

// ObserveState records a point-in-time snapshot of the gauges.
func (c *Collector) ObserveState(freeMemory, residentJobs, longTermDepth int, drumBusy, diskBusy bool) {
	c.FreeMemory.Set(float64(freeMemory))
	c.ResidentJobs.Set(float64(residentJobs))
	c.LongTermDepth.Set(float64(longTermDepth))
	c.DrumBusy.Set(boolToFloat(drumBusy))
	c.DiskBusy.Set(boolToFloat(diskBusy))
}

// RecordHandler increments the per-handler invocation counter.
func (c *Collector) RecordHandler(name string) {
	c.Handlers.WithLabelValues(name).Inc()
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

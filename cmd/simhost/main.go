// Command simhost is the host simulation harness: the external
// collaborator that delivers interrupts to the scheduler core and
// supplies the two device primitives it relies on. The core itself
// never imports this package; simhost is a consumer of sched, pcb,
// memory, and queue, wired up for a runnable demonstration.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Mookial/SOS-Op-Sys-Simulation/metrics"
	"github.com/Mookial/SOS-Op-Sys-Simulation/sched"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "simhost",
		Short: "Host simulation harness for the job scheduler and memory arbiter core",
	}

	root.PersistentFlags().Int("core-size", sched.CoreSize, "physical core memory size (not applied: the core is always sched.CoreSize units)")
	root.PersistentFlags().Int64("time-slice", sched.DefaultTimeSlice, "TIME_SLICE, in simulated time units")
	root.PersistentFlags().Bool("trace", false, "start with tracing on (Info-level handler logs)")
	root.PersistentFlags().Int("metrics-port", 0, "if nonzero, serve Prometheus metrics on this port")

	viper.BindPFlag("core-size", root.PersistentFlags().Lookup("core-size"))
	viper.BindPFlag("time-slice", root.PersistentFlags().Lookup("time-slice"))
	viper.BindPFlag("trace", root.PersistentFlags().Lookup("trace"))
	viper.BindPFlag("metrics-port", root.PersistentFlags().Lookup("metrics-port"))
	viper.SetEnvPrefix("SIMHOST")
	viper.AutomaticEnv()

	root.AddCommand(newRunCmd(), newScenarioCmd())
	return root
}

func newLogger(runID uuid.UUID) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Str("run_id", runID.String()).
		Logger()
}

func newScheduler(host sched.Host, log zerolog.Logger) (*sched.Scheduler, *metrics.Collector) {
	var collector *metrics.Collector
	opts := []sched.Option{
		sched.WithLogger(log),
		sched.WithTimeSlice(viper.GetInt64("time-slice")),
	}

	if port := viper.GetInt("metrics-port"); port != 0 {
		reg := prometheus.NewRegistry()
		collector = metrics.NewCollector(reg)
		opts = append(opts, sched.WithMetrics(collector))
		go serveMetrics(port, reg, log)
	}

	s := sched.New(host, opts...)
	if viper.GetBool("trace") {
		s.TraceOn()
	}
	return s, collector
}

func serveMetrics(port int, reg *prometheus.Registry, log zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	addr := fmt.Sprintf(":%d", port)
	log.Info().Str("addr", addr).Msg("serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error().Err(err).Msg("metrics server stopped")
	}
}

func newRunCmd() *cobra.Command {
	var arrivals []string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive the core with a set of job arrivals and run to completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := parseArrivals(arrivals)
			if err != nil {
				return err
			}

			runID := uuid.New()
			log := newLogger(runID)
			host := NewHarness(log, jobs)
			scheduler, _ := newScheduler(host, log)
			host.Attach(scheduler)

			delivered := host.Run()
			log.Info().Int("events_delivered", delivered).Msg("run complete")
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&arrivals, "job", nil,
		`one job arrival as "number,priority,size,time_remaining,arrival" (repeatable)`)
	return cmd
}

func parseArrivals(specs []string) ([]jobSpec, error) {
	jobs := make([]jobSpec, 0, len(specs))
	for _, spec := range specs {
		var j jobSpec
		var timeRemaining, arrival int64
		_, err := fmt.Sscanf(spec, "%d,%d,%d,%d,%d", &j.Number, &j.Priority, &j.Size, &timeRemaining, &arrival)
		if err != nil {
			return nil, fmt.Errorf("parsing job arrival %q: %w", spec, err)
		}
		j.TimeRemaining = timeRemaining
		j.Arrival = arrival
		jobs = append(jobs, j)
	}
	return jobs, nil
}

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"elevdispatch/src/dispatcher"
	"elevdispatch/src/timer"
	"elevdispatch/src/types"
	"elevdispatch/src/utils"
)

const idlePollInterval = 10 * time.Millisecond

type simulateOptions struct {
	instant bool
	speed   float64
	timeout time.Duration
}

// SimulationResult is the JSON payload printed once the fleet settles.
type SimulationResult struct {
	Scenario string            `json:"scenario"`
	Cars     []types.CarStatus `json:"cars"`
	Rejected int               `json:"rejected"`
	Dropped  uint64            `json:"dropped_events"`
}

// NewSimulateCommand creates the simulate command.
func NewSimulateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate <scenario.yaml>",
		Short: "Run a scripted scenario against a fresh fleet",
		Long: `Run the steps of a scenario file against a new dispatcher, streaming car
events as they happen. When every step has been applied the command waits
for the fleet to settle and prints the final status of each car.

Rejected requests are reported and skipped. Waits in the scenario use the
same clock as the cars, so --instant also skips them.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.instant, "instant", false, "skip all travel and door delays")
	cmd.Flags().Float64Var(&opts.speed, "speed", 1, "time compression factor (2 runs twice as fast)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 5*time.Minute, "give up if the fleet has not settled by then")

	return cmd
}

func (o *simulateOptions) waiter() (timer.Waiter, error) {
	switch {
	case o.instant:
		return timer.Instant{}, nil
	case o.speed <= 0:
		return nil, fmt.Errorf("--speed must be positive, got %g", o.speed)
	case o.speed == 1:
		return timer.Real{}, nil
	}
	return timer.Scaled{Inner: timer.Real{}, Factor: 1 / o.speed}, nil
}

func runSimulate(rootOpts *RootOptions, opts *simulateOptions, path string, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)
	logger := rootOpts.logger()

	sc, err := LoadScenario(path)
	if err != nil {
		return formatter.Fail(ExitCommandError, "load scenario", err)
	}
	waiter, err := opts.waiter()
	if err != nil {
		return formatter.Fail(ExitCommandError, "simulate", err)
	}

	cfg := rootOpts.config()
	if sc.Cars > 0 {
		cfg.Cars = sc.Cars
	}
	if sc.MaxFloors > 0 {
		cfg.MaxFloors = sc.MaxFloors
	}
	d, err := dispatcher.New(cfg, dispatcher.WithWaiter(waiter), dispatcher.WithLogger(logger))
	if err != nil {
		return formatter.Fail(ExitCommandError, "scenario configuration", err)
	}

	events, _ := d.Subscribe(0)
	printed := make(chan struct{})
	go func() {
		defer close(printed)
		for e := range events {
			writeEvent(formatter, e)
		}
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	formatter.VerboseLog("Running %q: %d step(s), %d car(s), %d floors", sc.Name, len(sc.Steps), cfg.Cars, cfg.MaxFloors)
	rejected, runErr := playSteps(ctx, d, sc.Steps, waiter, logger)
	if runErr == nil {
		runErr = waitIdle(ctx, d)
	}
	statuses := d.GetSystemStatus()
	d.Close()
	<-printed

	if runErr != nil {
		return formatter.Fail(ExitFailure, "simulate "+sc.Name, runErr)
	}
	if formatter.Format == "json" {
		return formatter.Success(SimulationResult{
			Scenario: sc.Name,
			Cars:     statuses,
			Rejected: rejected,
			Dropped:  d.Dropped(),
		})
	}
	utils.FormatStatus(formatter.Writer, statuses)
	if rejected > 0 {
		fmt.Fprintf(formatter.Writer, "%d request(s) rejected\n", rejected)
	}
	return nil
}

// playSteps applies the steps in order. Invalid requests are counted and
// skipped; a step naming a car that does not exist aborts the run.
func playSteps(ctx context.Context, d *dispatcher.Dispatcher, steps []Step, waiter timer.Waiter, logger *slog.Logger) (int, error) {
	rejected := 0
	for i, step := range steps {
		err := applyStep(ctx, d, step, waiter)
		switch {
		case err == nil:
		case errors.Is(err, types.ErrNoAssignableCar):
			logger.Warn("Hall call left pending", "step", i+1, "request", step)
		case errors.Is(err, types.ErrInvalidFloor),
			errors.Is(err, types.ErrInvalidDirection),
			errors.Is(err, types.ErrInvalidOccupancy):
			rejected++
			logger.Warn("Request rejected", "step", i+1, "request", step, "error", err)
		default:
			return rejected, fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
	}
	return rejected, nil
}

func applyStep(ctx context.Context, d *dispatcher.Dispatcher, step Step, waiter timer.Waiter) error {
	switch {
	case step.Hall != nil:
		return d.HandleExternalRequest(step.Hall.Floor, step.Hall.Direction)
	case step.Cab != nil:
		car := d.Car(step.Cab.Car)
		if car == nil {
			return fmt.Errorf("no car %d", step.Cab.Car)
		}
		return car.AddDestination(step.Cab.Floor)
	case step.Occupancy != nil:
		car := d.Car(step.Occupancy.Car)
		if car == nil {
			return fmt.Errorf("no car %d", step.Occupancy.Car)
		}
		return car.SetOccupancy(step.Occupancy.Count)
	}
	return waiter.Wait(ctx, step.Wait)
}

func waitIdle(ctx context.Context, d *dispatcher.Dispatcher) error {
	ticker := time.NewTicker(idlePollInterval)
	defer ticker.Stop()
	for {
		if d.Idle() {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("fleet did not settle: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// writeEvent prints one event per line: NDJSON in json mode.
func writeEvent(f *OutputFormatter, e types.Event) {
	if f.Format == "json" {
		_ = json.NewEncoder(f.Writer).Encode(e)
		return
	}
	fmt.Fprintln(f.Writer, utils.FormatEvent(e))
}

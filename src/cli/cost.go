package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"elevdispatch/src/dispatcher"
	"elevdispatch/src/types"
)

type costOptions struct {
	floor   int
	dir     string
	target  int
	request string
}

// CostResult is the JSON payload of the cost command.
type CostResult struct {
	Floor     int             `json:"floor"`
	Direction types.Direction `json:"direction"`
	Target    int             `json:"target"`
	Requested types.Direction `json:"requested"`
	Cost      float64         `json:"cost"`
}

func (r CostResult) String() string {
	return fmt.Sprintf("car at %d heading %s, hall call %s: cost %g",
		r.Floor, r.Direction, types.HallCall{Floor: r.Target, Direction: r.Requested}, r.Cost)
}

// NewCostCommand creates the cost command.
func NewCostCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &costOptions{}

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Print the dispatch cost of a hall call for one car",
		Long: `Evaluate the dispatcher's cost heuristic for a car at --floor heading
--dir answering a hall call at --target going --request. Lower is better.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCost(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.floor, "floor", 1, "car's current floor")
	cmd.Flags().StringVar(&opts.dir, "dir", "none", "car's direction (up|down|none)")
	cmd.Flags().IntVar(&opts.target, "target", 1, "hall call floor")
	cmd.Flags().StringVar(&opts.request, "request", "up", "hall call direction (up|down)")

	return cmd
}

func runCost(rootOpts *RootOptions, opts *costOptions, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)
	cfg := rootOpts.config()

	dir, err := types.ParseDirection(opts.dir)
	if err != nil {
		return formatter.Fail(ExitCommandError, "--dir", err)
	}
	requested, err := types.ParseDirection(opts.request)
	if err != nil {
		return formatter.Fail(ExitCommandError, "--request", err)
	}
	if !requested.IsHall() {
		return formatter.Fail(ExitCommandError, "--request",
			fmt.Errorf("%w: hall call must be up or down", types.ErrInvalidDirection))
	}
	for _, f := range []struct {
		flag  string
		floor int
	}{{"--floor", opts.floor}, {"--target", opts.target}} {
		if !cfg.ValidFloor(f.floor) {
			return formatter.Fail(ExitCommandError, f.flag,
				fmt.Errorf("%w: %d not in [1, %d]", types.ErrInvalidFloor, f.floor, cfg.MaxFloors))
		}
	}

	car := types.CarStatus{Floor: opts.floor, Direction: dir}
	return formatter.Success(CostResult{
		Floor:     opts.floor,
		Direction: dir,
		Target:    opts.target,
		Requested: requested,
		Cost:      dispatcher.CalculateCost(car, opts.target, requested, cfg.MaxFloors),
	})
}

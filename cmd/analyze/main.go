// Command analyze evaluates Connect Four positions from the command line
// using the external solver binary. Positions are move strings of 1-based
// column digits; each one is scored per column and printed as a small table.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/cfour-labs/connect4-server/solver"
)

func main() {
	cmd := &cli.Command{
		Name:      "analyze",
		Usage:     "score Connect Four positions with the external solver",
		ArgsUsage: "[position ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "solver",
				Value: solver.DefaultPath(),
				Usage: "path to the solver binary",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: solver.DefaultTimeout,
				Usage: "per-position solver timeout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			positions := cmd.Args().Slice()
			if len(positions) == 0 {
				// No arguments means the starting position.
				positions = []string{""}
			}

			sv := solver.New(cmd.String("solver"))
			sv.Timeout = cmd.Duration("timeout")

			return analyzePositions(ctx, sv, positions, os.Stdout)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func analyzePositions(ctx context.Context, sv *solver.Solver, positions []string, out io.Writer) error {
	for _, position := range positions {
		if !solver.ValidPosition(position) {
			return fmt.Errorf("invalid position %q: positions use digits 1-7 only", position)
		}

		analysis, err := sv.Analyse(ctx, position)
		if err != nil {
			return fmt.Errorf("analysing %q: %w", position, err)
		}

		printAnalysis(out, analysis)
	}
	return nil
}

func printAnalysis(out io.Writer, analysis *solver.Analysis) {
	position := analysis.Position
	if position == "" {
		position = "(start)"
	}
	fmt.Fprintf(out, "Position %s\n", position)

	columns := make([]string, 0, len(analysis.Analysis.Columns))
	for column := range analysis.Analysis.Columns {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	for _, column := range columns {
		eval := analysis.Analysis.Columns[column]
		switch {
		case !eval.Valid:
			fmt.Fprintf(out, "  %s: full\n", column)
		case eval.Score == nil:
			fmt.Fprintf(out, "  %s: -\n", column)
		default:
			fmt.Fprintf(out, "  %s: %d\n", column, *eval.Score)
		}
	}
}

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/crucible/runpath"
)

const flagUpTo = "up-to"

func (a *app) sweepCommand() *cli.Command {
	return &cli.Command{
		Name:      "sweep",
		Usage:     "solve the query for every maximum run from the policy's up to --up-to",
		ArgsUsage: "[grid-file]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    flagUpTo,
				Value:   10,
				Usage:   "largest maximum run to try",
				Sources: cli.EnvVars("CRUCIBLE_UP_TO"),
			},
		},
		Action: a.sweep,
	}
}

func (a *app) sweep(ctx context.Context, cmd *cli.Command) error {
	q, err := a.loadQuery(cmd)
	if err != nil {
		return err
	}
	upTo := cmd.Int(flagUpTo)
	if upTo < q.policy.MaxRun {
		return fmt.Errorf("%w: --%s %d is below the policy's maximum run %d",
			errUsage, flagUpTo, upTo, q.policy.MaxRun)
	}

	// Runs longer than the grid's longest line cannot occur, so larger
	// limits would only repeat the last answer.
	if limit := max(q.policy.MaxRun, max(q.grid.Width(), q.grid.Height())-1); upTo > limit {
		a.log.WithFields(logrus.Fields{"up_to": upTo, "limit": limit}).Debug("sweep range clamped to grid size")
		upTo = limit
	}

	var queries []runpath.Query
	for m := q.policy.MaxRun; m <= upTo; m++ {
		queries = append(queries, runpath.Query{
			Start:  q.start,
			Target: q.target,
			Policy: runpath.Policy{MinRun: q.policy.MinRun, MaxRun: m},
		})
	}

	ctx, cancel := withTimeout(ctx, cmd)
	defer cancel()

	t0 := time.Now()
	results, err := runpath.SolveAll(ctx, q.grid, queries, q.opts...)
	if err != nil {
		return err
	}
	a.log.WithFields(elapsedField(t0)).WithField("queries", len(queries)).Info("sweep finished")

	for i, res := range results {
		if res.Found() {
			fmt.Fprintf(a.out, "%v\t%d\n", queries[i].Policy, res.Cost)
			continue
		}
		fmt.Fprintf(a.out, "%v\t%v\n", queries[i].Policy, res.Outcome)
	}
	if best := runpath.Best(results, runpath.Minimize); best >= 0 {
		fmt.Fprintf(a.out, "best: %v\t%d\n", queries[best].Policy, results[best].Cost)
	}

	return nil
}

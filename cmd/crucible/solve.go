package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/crucible/runpath"
)

const flagPath = "path"

func (a *app) solveCommand() *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "print the minimal cost of one query",
		ArgsUsage: "[grid-file]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagPath,
				Usage:   "also draw the route over the grid",
				Sources: cli.EnvVars("CRUCIBLE_PATH"),
			},
		},
		Action: a.solve,
	}
}

func (a *app) solve(ctx context.Context, cmd *cli.Command) error {
	q, err := a.loadQuery(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, cmd)
	defer cancel()

	opts := append(q.opts, runpath.WithContext(ctx))
	draw := cmd.Bool(flagPath)
	if draw {
		opts = append(opts, runpath.WithReturnPath())
	}

	t0 := time.Now()
	res, err := runpath.ShortestPath(q.grid, q.policy, q.start, q.target, opts...)
	if err != nil {
		return err
	}
	a.log.WithFields(elapsedField(t0)).WithFields(logrus.Fields{
		"outcome": res.Outcome,
		"settled": res.Settled,
	}).Info("search finished")

	if !res.Found() {
		fmt.Fprintf(a.out, "no path: %v\n", res.Outcome)
		return nil
	}
	fmt.Fprintf(a.out, "cost: %d\n", res.Cost)
	if !draw {
		return nil
	}

	states, err := res.States()
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, renderRoute(q.grid, states))

	return nil
}

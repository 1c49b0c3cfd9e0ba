package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/crucible/costgrid"
	"github.com/katalvlaran/crucible/runpath"
)

// Flag names shared by the commands.
const (
	flagPreset   = "preset"
	flagMinRun   = "min-run"
	flagMaxRun   = "max-run"
	flagStart    = "start"
	flagTarget   = "target"
	flagMaxCost  = "max-cost"
	flagTimeout  = "timeout"
	flagLogLevel = "log-level"
)

// errUsage marks invalid flag or argument values.
var errUsage = errors.New("crucible: invalid usage")

// app carries the I/O endpoints so commands can be driven from tests.
type app struct {
	in  io.Reader
	out io.Writer
	log *logrus.Logger
}

// command builds the root command with its subcommands.
func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "run-constrained shortest paths over digit cost grids",
		Version: Version,
		Writer:  a.out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagPreset,
				Value:   "crucible",
				Usage:   `movement preset: "crucible" {1..3} or "ultra" {4..10}`,
				Sources: cli.EnvVars("CRUCIBLE_PRESET"),
			},
			&cli.IntFlag{
				Name:    flagMinRun,
				Usage:   "minimum straight run before turning or stopping (overrides the preset)",
				Sources: cli.EnvVars("CRUCIBLE_MIN_RUN"),
			},
			&cli.IntFlag{
				Name:    flagMaxRun,
				Usage:   "maximum straight run (overrides the preset)",
				Sources: cli.EnvVars("CRUCIBLE_MAX_RUN"),
			},
			&cli.StringFlag{
				Name:    flagStart,
				Usage:   `start cell as "x,y" (default top-left)`,
				Sources: cli.EnvVars("CRUCIBLE_START"),
			},
			&cli.StringFlag{
				Name:    flagTarget,
				Usage:   `target cell as "x,y" (default bottom-right)`,
				Sources: cli.EnvVars("CRUCIBLE_TARGET"),
			},
			&cli.IntFlag{
				Name:    flagMaxCost,
				Value:   -1,
				Usage:   "give up on routes dearer than this (negative: no cap)",
				Sources: cli.EnvVars("CRUCIBLE_MAX_COST"),
			},
			&cli.DurationFlag{
				Name:    flagTimeout,
				Usage:   "abort the search after this long (0: no limit)",
				Sources: cli.EnvVars("CRUCIBLE_TIMEOUT"),
			},
			&cli.StringFlag{
				Name:    flagLogLevel,
				Value:   "info",
				Usage:   "log level (trace logs every settled state)",
				Sources: cli.EnvVars("CRUCIBLE_LOG_LEVEL"),
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.solveCommand(),
			a.sweepCommand(),
		},
	}
}

// before applies the log level ahead of any command.
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	lvl, err := logrus.ParseLevel(cmd.String(flagLogLevel))
	if err != nil {
		return ctx, fmt.Errorf("%w: %w", errUsage, err)
	}
	a.log.SetLevel(lvl)

	return ctx, nil
}

// query holds the resolved inputs shared by solve and sweep.
type query struct {
	grid   *costgrid.Grid
	policy runpath.Policy
	start  costgrid.Position
	target costgrid.Position
	opts   []runpath.Option
}

// loadQuery reads the grid and resolves every shared flag.
func (a *app) loadQuery(cmd *cli.Command) (*query, error) {
	g, err := a.readGrid(cmd.Args().First())
	if err != nil {
		return nil, err
	}

	p, err := resolvePolicy(cmd.String(flagPreset),
		cmd.Int(flagMinRun), cmd.IsSet(flagMinRun),
		cmd.Int(flagMaxRun), cmd.IsSet(flagMaxRun))
	if err != nil {
		return nil, err
	}

	start, err := parsePosition(cmd.String(flagStart), g.TopLeft())
	if err != nil {
		return nil, err
	}
	target, err := parsePosition(cmd.String(flagTarget), g.BottomRight())
	if err != nil {
		return nil, err
	}

	q := &query{grid: g, policy: p, start: start, target: target}
	if c := cmd.Int(flagMaxCost); c >= 0 {
		q.opts = append(q.opts, runpath.WithMaxCost(int64(c)))
	}
	if a.log.IsLevelEnabled(logrus.TraceLevel) {
		q.opts = append(q.opts, runpath.WithOnSettle(func(s runpath.State, cost int64) {
			a.log.WithFields(logrus.Fields{"state": s, "cost": cost}).Trace("settled")
		}))
	}

	a.log.WithFields(logrus.Fields{
		"width":  g.Width(),
		"height": g.Height(),
		"policy": p,
		"start":  start,
		"target": target,
	}).Debug("query loaded")

	return q, nil
}

// readGrid parses the grid from path, or from the app's input when path is
// empty or "-".
func (a *app) readGrid(path string) (*costgrid.Grid, error) {
	if path == "" || path == "-" {
		return costgrid.Parse(a.in)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := costgrid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// withTimeout derives the search context from the --timeout flag.
func withTimeout(ctx context.Context, cmd *cli.Command) (context.Context, context.CancelFunc) {
	if d := cmd.Duration(flagTimeout); d > 0 {
		return context.WithTimeout(ctx, d)
	}

	return context.WithCancel(ctx)
}

// resolvePolicy starts from the named preset and applies explicit run
// overrides on top of it.
func resolvePolicy(preset string, minRun int, minSet bool, maxRun int, maxSet bool) (runpath.Policy, error) {
	var p runpath.Policy
	switch strings.ToLower(preset) {
	case "", "crucible":
		p = runpath.Crucible()
	case "ultra", "ultra-crucible":
		p = runpath.UltraCrucible()
	default:
		return runpath.Policy{}, fmt.Errorf("%w: unknown preset %q", errUsage, preset)
	}
	if minSet {
		p.MinRun = minRun
	}
	if maxSet {
		p.MaxRun = maxRun
	}

	return runpath.NewPolicy(p.MinRun, p.MaxRun)
}

// parsePosition reads "x,y"; an empty string yields def.
func parsePosition(s string, def costgrid.Position) (costgrid.Position, error) {
	if s == "" {
		return def, nil
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return costgrid.Position{}, fmt.Errorf("%w: position %q is not x,y", errUsage, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return costgrid.Position{}, fmt.Errorf("%w: position %q: %w", errUsage, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return costgrid.Position{}, fmt.Errorf("%w: position %q: %w", errUsage, s, err)
	}

	return costgrid.Position{X: x, Y: y}, nil
}

// elapsedField is a logrus field for a duration since t0.
func elapsedField(t0 time.Time) logrus.Fields {
	return logrus.Fields{"elapsed": time.Since(t0).Round(time.Microsecond)}
}

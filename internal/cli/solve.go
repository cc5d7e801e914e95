package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tevino/abool"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/runpath/costgrid"
	"github.com/katalvlaran/runpath/direction"
	"github.com/katalvlaran/runpath/render"
	"github.com/katalvlaran/runpath/runpath"
)

// solveFlags holds the raw flag values of the solve command.
type solveFlags struct {
	configPath string
	cfg        Config
	showPath   bool
	dotPath    string
	split      bool
}

func newSolveCommand() *cobra.Command {
	var flags solveFlags
	def := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "solve GRID_FILE",
		Short: "Print the minimum route cost for a grid file (\"-\" reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], &flags)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&flags.configPath, "config", "c", "", "YAML config file; explicit flags override it")
	fs.IntVar(&flags.cfg.MinRun, "min-run", def.MinRun, "minimum cells per straight run")
	fs.IntVar(&flags.cfg.MaxRun, "max-run", def.MaxRun, "maximum cells per straight run")
	fs.StringSliceVar(&flags.cfg.Headings, "headings", def.Headings, "allowed headings of the first run")
	fs.StringVar(&flags.cfg.Start, "start", def.Start, "start cell as row,col")
	fs.StringVar(&flags.cfg.Goal, "goal", def.Goal, "goal cell as row,col (default bottom-right)")
	fs.StringVar(&flags.cfg.LogLevel, "log-level", def.LogLevel, "debug, info, warn or error")
	fs.StringVar(&flags.cfg.LogFormat, "log-format", def.LogFormat, "text or json")
	fs.BoolVar(&flags.showPath, "path", false, "draw the optimal route over the grid")
	fs.StringVar(&flags.dotPath, "dot", "", "write the optimal route as a Graphviz DOT file")
	fs.BoolVar(&flags.split, "split", false, "search each heading concurrently and keep the cheapest")

	return cmd
}

// resolveConfig layers defaults, the config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, flags *solveFlags) (Config, error) {
	cfg := DefaultConfig()
	if flags.configPath != "" {
		var err error
		if cfg, err = LoadConfig(flags.configPath, cfg); err != nil {
			return cfg, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("min-run") {
		cfg.MinRun = flags.cfg.MinRun
	}
	if fs.Changed("max-run") {
		cfg.MaxRun = flags.cfg.MaxRun
	}
	if fs.Changed("headings") {
		cfg.Headings = flags.cfg.Headings
	}
	if fs.Changed("start") {
		cfg.Start = flags.cfg.Start
	}
	if fs.Changed("goal") {
		cfg.Goal = flags.cfg.Goal
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.cfg.LogLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = flags.cfg.LogFormat
	}

	return cfg, cfg.Validate()
}

func runSolve(cmd *cobra.Command, gridPath string, flags *solveFlags) error {
	out := cmd.OutOrStdout()

	// 1) Configuration.
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return usageError("invalid configuration", err)
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

	// 2) Grid and endpoints.
	g, err := loadGrid(cmd.InOrStdin(), gridPath)
	if err != nil {
		return err
	}
	start, goal, err := cfg.Endpoints(g)
	if err != nil {
		return usageError("invalid endpoints", err)
	}
	dirs, _ := cfg.Directions()
	logger.Debug("grid loaded", "file", gridPath, "height", g.Height, "width", g.Width,
		"start", start.String(), "goal", goal.String())

	// 3) Search.
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	opts := []runpath.Option{
		runpath.WithRunLength(cfg.MinRun, cfg.MaxRun),
		runpath.WithLogger(logger),
	}
	if flags.showPath || flags.dotPath != "" {
		opts = append(opts, runpath.WithReturnPath())
	}

	var (
		cost int64
		path []costgrid.Point
	)
	if flags.split {
		cost, path, err = solveSplit(ctx, g, start, goal, dirs, opts, logger)
	} else {
		opts = append(opts, runpath.WithContext(ctx), runpath.WithInitialDirections(dirs...))
		cost, path, err = runpath.Solve(g, start, goal, opts...)
	}
	switch {
	case errors.Is(err, runpath.ErrUnreachable):
		return &ExitError{Code: ExitUnreachable, Message: fmt.Sprintf("no route from %v to %v with runs of %d..%d cells",
			start, goal, cfg.MinRun, cfg.MaxRun)}
	case errors.Is(err, runpath.ErrOutOfBounds):
		return usageError("invalid endpoints", err)
	case err != nil:
		return err
	}

	// 4) Output.
	fmt.Fprintf(out, "minimum cost: %d\n", cost)
	if flags.showPath {
		overlay, err := render.Overlay(g, path)
		if err != nil {
			return err
		}
		fmt.Fprint(out, overlay)
	}
	if flags.dotPath != "" {
		dot, err := render.DOT(g, path)
		if err != nil {
			return err
		}
		if err = os.WriteFile(flags.dotPath, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write dot: %w", err)
		}
		logger.Info("dot graph written", "file", flags.dotPath)
	}
	return nil
}

// solveSplit runs one search per heading concurrently and keeps the cheapest.
// It fails with runpath.ErrUnreachable only when every heading does.
func solveSplit(
	ctx context.Context,
	g *costgrid.Grid,
	start, goal costgrid.Point,
	dirs []direction.Direction,
	opts []runpath.Option,
	logger *slog.Logger,
) (int64, []costgrid.Point, error) {
	type result struct {
		cost int64
		path []costgrid.Point
	}
	results := make([]*result, len(dirs))
	reached := abool.New()

	eg, egCtx := errgroup.WithContext(ctx)
	for i, d := range dirs {
		i, d := i, d
		eg.Go(func() error {
			headingOpts := append(append([]runpath.Option{}, opts...),
				runpath.WithContext(egCtx),
				runpath.WithInitialDirections(d),
			)
			cost, path, err := runpath.Solve(g, start, goal, headingOpts...)
			if errors.Is(err, runpath.ErrUnreachable) {
				logger.Debug("heading unreachable", "heading", d.String())
				return nil
			}
			if err != nil {
				return fmt.Errorf("heading %v: %w", d, err)
			}
			logger.Debug("heading solved", "heading", d.String(), "cost", cost)
			results[i] = &result{cost: cost, path: path}
			reached.Set()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, nil, err
	}
	if !reached.IsSet() {
		return 0, nil, runpath.ErrUnreachable
	}

	var best *result
	for _, r := range results {
		if r != nil && (best == nil || r.cost < best.cost) {
			best = r
		}
	}
	return best.cost, best.path, nil
}

// loadGrid parses the grid file, or stdin when path is "-".
func loadGrid(stdin io.Reader, path string) (*costgrid.Grid, error) {
	if path == "-" {
		g, err := costgrid.Parse(stdin)
		if err != nil {
			return nil, fmt.Errorf("load grid from stdin: %w", err)
		}
		return g, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load grid: %w", err)
	}
	defer f.Close()

	g, err := costgrid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load grid %s: %w", path, err)
	}
	return g, nil
}

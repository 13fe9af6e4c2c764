package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/internal/ctxlog"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/raster"
	"github.com/katalvlaran/lvsearch/render"
	"github.com/katalvlaran/lvsearch/search"
)

// App holds the configuration and logger of one mazesolve run.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *config.Config
}

// NewApp returns an App that logs and reports to outW. cfg must already
// be validated.
func NewApp(outW io.Writer, cfg *config.Config) *App {
	logger := newLogger(cfg.Log.Level, cfg.Log.Format, outW)
	logger.Debug("Logger configured successfully.")
	return &App{outW: outW, logger: logger, config: cfg}
}

// Summary is the outcome of one strategy.
type Summary struct {
	Strategy search.Strategy
	Result   search.Result[maze.Coord, maze.Move]
	// Limited is set when the run stopped at search.max_expansions.
	Limited bool
}

// Run loads the maze, solves it with every configured strategy and writes
// the results. A strategy that finds no path is reported, not failed.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	cfg := a.config

	strategies, err := cfg.Strategies()
	if err != nil {
		return err
	}
	opts, err := cfg.MazeOptions()
	if err != nil {
		return err
	}

	m, err := loadMaze(ctx, cfg.Maze)
	if err != nil {
		return err
	}
	problem, err := maze.FromGrid(m.grid, opts...)
	if err != nil {
		return fmt.Errorf("build problem: %w", err)
	}
	a.logger.Info("Maze ready.",
		"rows", m.grid.Rows(), "cols", m.grid.Cols(),
		"start", problem.InitialState(), "goals", len(problem.GoalCells()))

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	summaries := make([]Summary, 0, len(strategies))
	for _, s := range strategies {
		sum, err := a.solve(ctx, problem, s)
		if err != nil {
			return err
		}
		summaries = append(summaries, sum)
		if sum.Result.Found() {
			if err := a.write(m, s, sum.Result.Path); err != nil {
				return err
			}
		}
		if cfg.Output.Console {
			fmt.Fprintf(a.outW, "\n%s:\n%s", s, render.ConsoleColor(m.grid, sum.Result.Path))
		}
	}

	return writeReport(a.outW, summaries)
}

func (a *App) solve(ctx context.Context, p *maze.Problem, s search.Strategy) (Summary, error) {
	logger := a.logger.With("algorithm", s.String())
	res, err := search.Run[maze.Coord, maze.Move](p, s,
		search.WithLogger(logger),
		search.WithMaxExpansions(a.config.Search.MaxExpansions),
		search.WithOnExpand(func(search.Event) error { return ctx.Err() }),
	)
	switch {
	case errors.Is(err, search.ErrExpansionLimit):
		logger.Warn("Expansion limit reached.", "expanded", res.Expanded)
		return Summary{Strategy: s, Result: res, Limited: true}, nil
	case err != nil:
		return Summary{}, fmt.Errorf("%s: %w", s, err)
	}

	if res.Found() {
		logger.Info("Solution found.", "expanded", res.Expanded, "path_len", len(res.Path), "cost", res.PathCost)
	} else {
		logger.Warn("No solution.", "expanded", res.Expanded)
	}
	return Summary{Strategy: s, Result: res}, nil
}

// write saves grid_<alg>.png and, for picture mazes, solution_<alg>.png.
func (a *App) write(m *loaded, s search.Strategy, path []maze.Coord) error {
	dir := a.config.Output.Dir
	gridPath := filepath.Join(dir, "grid_"+s.String()+".png")
	if err := raster.Save(gridPath, render.GridImage(m.grid, path, m.scale)); err != nil {
		return err
	}
	a.logger.Debug("Grid image written.", "path", gridPath)

	if m.picture == nil {
		return nil
	}
	solPath := filepath.Join(dir, "solution_"+s.String()+".png")
	if err := raster.Save(solPath, render.Overlay(m.picture, path, m.scale)); err != nil {
		return err
	}
	a.logger.Debug("Solution image written.", "path", solPath)
	return nil
}

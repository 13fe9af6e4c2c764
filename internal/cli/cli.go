package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvsearch/config"
)

// ExitError is an error with a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error()}
}

// Parse processes command-line arguments. It returns the configuration,
// whether the program should exit cleanly (help or nothing to do), or an
// *ExitError.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("mazesolve", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
mazesolve - solve picture and text mazes with BFS, DFS and A*.

Usage:
  mazesolve [options] [CONFIG]

Arguments:
  CONFIG
    Optional HCL run configuration. Flags override its values.

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.Default()
	configFlag := flagSet.String("config", "", "Path to an HCL run configuration.")
	imageFlag := flagSet.String("image", "", "Maze picture (PNG or BMP).")
	textFlag := flagSet.String("text", "", "ASCII maze file ('#' wall, '.' free, 'S' start, 'G' goal).")
	tileFlag := flagSet.Int("tile", def.Maze.TileSize, "Tile edge in pixels when discretizing a picture.")
	algFlag := flagSet.String("algorithm", strings.Join(def.Search.Algorithms, ","), "Comma-separated algorithms: bfs, dfs, astar or all.")
	connFlag := flagSet.String("connectivity", def.Maze.Connectivity, "Neighbourhood: 4 or 8.")
	heurFlag := flagSet.String("heuristic", def.Maze.Heuristic, "A* heuristic: euclidean, manhattan, octile or zero.")
	maxFlag := flagSet.Int("max-expansions", def.Search.MaxExpansions, "Abort a search after this many expansions. 0 is unlimited.")
	outFlag := flagSet.String("out", def.Output.Dir, "Directory for result images.")
	consoleFlag := flagSet.Bool("console", def.Output.Console, "Print the solved maze to the terminal.")
	logLevelFlag := flagSet.String("log-level", def.Log.Level, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", def.Log.Format, "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError(err)
	}
	slog.Debug("Arguments parsed successfully.")

	path := *configFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	cfg := def
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, false, usageError(err)
		}
		cfg = loaded
		slog.Debug("Configuration file loaded.", "path", path)
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "image":
			cfg.Maze.Image, cfg.Maze.Text = *imageFlag, ""
		case "text":
			cfg.Maze.Text, cfg.Maze.Image = *textFlag, ""
		case "tile":
			cfg.Maze.TileSize = *tileFlag
		case "algorithm":
			cfg.Search.Algorithms = splitList(*algFlag)
		case "connectivity":
			cfg.Maze.Connectivity = *connFlag
		case "heuristic":
			cfg.Maze.Heuristic = *heurFlag
		case "max-expansions":
			cfg.Search.MaxExpansions = *maxFlag
		case "out":
			cfg.Output.Dir = *outFlag
		case "console":
			cfg.Output.Console = *consoleFlag
		case "log-level":
			cfg.Log.Level = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.Log.Format = strings.ToLower(*logFormatFlag)
		}
	})

	if path == "" && cfg.Maze.Image == "" && cfg.Maze.Text == "" {
		slog.Debug("No maze provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, usageError(err)
	}
	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

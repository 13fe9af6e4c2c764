package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/raster"
	"github.com/katalvlaran/lvsearch/search"
)

var (
	// ErrParse indicates malformed HCL.
	ErrParse = errors.New("config: parse error")
	// ErrDecode indicates well-formed HCL that does not fit the schema.
	ErrDecode = errors.New("config: decode error")
	// ErrNoMaze indicates neither maze.image nor maze.text is set.
	ErrNoMaze = errors.New("config: one of maze.image or maze.text is required")
	// ErrAmbiguousMaze indicates both maze.image and maze.text are set.
	ErrAmbiguousMaze = errors.New("config: maze.image and maze.text are mutually exclusive")
	// ErrInvalidValue indicates an attribute outside its allowed range.
	ErrInvalidValue = errors.New("config: invalid value")
)

// AllAlgorithms expands to every search strategy.
const AllAlgorithms = "all"

// Config is a complete, validated-on-demand run configuration.
type Config struct {
	Maze   Maze
	Search Search
	Output Output
	Log    Log
}

// Maze selects the input and movement model.
type Maze struct {
	Image        string
	Text         string
	TileSize     int
	Connectivity string
	Heuristic    string
	AxisCost     float64
	DiagonalCost float64
}

// Search selects the strategies to run.
type Search struct {
	Algorithms    []string
	MaxExpansions int
}

// Output controls result files and console rendering.
type Output struct {
	Dir     string
	Console bool
}

// Log controls the application logger.
type Log struct {
	Level  string
	Format string
}

// Default returns the built-in configuration: every algorithm, 10 px
// tiles, 8-connected moves with the Euclidean heuristic, output/ as the
// result directory and info-level text logs.
func Default() *Config {
	return &Config{
		Maze: Maze{
			TileSize:     raster.DefaultTileSize,
			Connectivity: "8",
			Heuristic:    "euclidean",
			AxisCost:     maze.DefaultAxisCost,
			DiagonalCost: maze.DefaultDiagonalCost,
		},
		Search: Search{Algorithms: []string{AllAlgorithms}},
		Output: Output{Dir: "output"},
		Log:    Log{Level: "info", Format: "text"},
	}
}

// Validate checks every field and returns the first violation.
func (c *Config) Validate() error {
	switch {
	case c.Maze.Image == "" && c.Maze.Text == "":
		return ErrNoMaze
	case c.Maze.Image != "" && c.Maze.Text != "":
		return ErrAmbiguousMaze
	}
	if c.Maze.TileSize < 1 {
		return fmt.Errorf("%w: maze.tile_size %d", ErrInvalidValue, c.Maze.TileSize)
	}
	if _, err := c.MazeOptions(); err != nil {
		return err
	}
	if _, err := c.Strategies(); err != nil {
		return err
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: search.max_expansions %d", ErrInvalidValue, c.Search.MaxExpansions)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidValue, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidValue, c.Log.Format)
	}
	return nil
}

// MazeOptions converts the maze block into maze.Options.
func (c *Config) MazeOptions() ([]maze.Option, error) {
	conn, err := maze.ParseConnectivity(c.Maze.Connectivity)
	if err != nil {
		return nil, fmt.Errorf("%w: maze.connectivity: %w", ErrInvalidValue, err)
	}
	h, err := maze.ParseHeuristic(strings.ToLower(c.Maze.Heuristic))
	if err != nil {
		return nil, fmt.Errorf("%w: maze.heuristic: %w", ErrInvalidValue, err)
	}
	if c.Maze.AxisCost < 0 || c.Maze.DiagonalCost < 0 {
		return nil, fmt.Errorf("%w: maze costs must be non-negative", ErrInvalidValue)
	}
	return []maze.Option{
		maze.WithConnectivity(conn),
		maze.WithCosts(c.Maze.AxisCost, c.Maze.DiagonalCost),
		maze.WithHeuristic(h),
	}, nil
}

// Strategies resolves search.algorithms, expanding "all" and dropping
// duplicates while keeping first-seen order.
func (c *Config) Strategies() ([]search.Strategy, error) {
	if len(c.Search.Algorithms) == 0 {
		return nil, fmt.Errorf("%w: search.algorithms is empty", ErrInvalidValue)
	}
	var out []search.Strategy
	seen := make(map[search.Strategy]bool)
	add := func(s search.Strategy) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, name := range c.Search.Algorithms {
		if strings.EqualFold(strings.TrimSpace(name), AllAlgorithms) {
			for _, s := range search.Strategies() {
				add(s)
			}
			continue
		}
		s, err := search.ParseStrategy(name)
		if err != nil {
			return nil, fmt.Errorf("%w: search.algorithms: %w", ErrInvalidValue, err)
		}
		add(s)
	}
	return out, nil
}

// resolve makes relative input paths relative to dir.
func (c *Config) resolve(dir string) {
	if c.Maze.Image != "" && !filepath.IsAbs(c.Maze.Image) {
		c.Maze.Image = filepath.Join(dir, c.Maze.Image)
	}
	if c.Maze.Text != "" && !filepath.IsAbs(c.Maze.Text) {
		c.Maze.Text = filepath.Join(dir, c.Maze.Text)
	}
}

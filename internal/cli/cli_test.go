package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/internal/cli"
)

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	_, exit, err := cli.Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
}

func TestParse_Flags(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{
		"-text", "maze.txt",
		"-algorithm", "astar, bfs",
		"-connectivity", "4",
		"-heuristic", "manhattan",
		"-max-expansions", "99",
		"-out", "results",
		"-console",
		"-log-level", "DEBUG",
		"-log-format", "json",
	}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "maze.txt", cfg.Maze.Text)
	assert.Equal(t, []string{"astar", "bfs"}, cfg.Search.Algorithms)
	assert.Equal(t, "4", cfg.Maze.Connectivity)
	assert.Equal(t, "manhattan", cfg.Maze.Heuristic)
	assert.Equal(t, 99, cfg.Search.MaxExpansions)
	assert.Equal(t, "results", cfg.Output.Dir)
	assert.True(t, cfg.Output.Console)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestParse_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.hcl")
	src := `
maze {
  image     = "maze.png"
  tile_size = 12
}
search { algorithms = ["dfs"] }
log    { level = "warn" }
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{"-algorithm", "bfs", path}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, filepath.Join(dir, "maze.png"), cfg.Maze.Image)
	assert.Equal(t, 12, cfg.Maze.TileSize, "file value kept")
	assert.Equal(t, []string{"bfs"}, cfg.Search.Algorithms, "flag wins")
	assert.Equal(t, "warn", cfg.Log.Level, "unset flag does not clobber file")

	cfg, _, err = cli.Parse([]string{"-config", path, "-text", "other.txt"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "other.txt", cfg.Maze.Text)
	assert.Empty(t, cfg.Maze.Image, "-text replaces the file's image")
}

func TestParse_Errors(t *testing.T) {
	cases := map[string][]string{
		"unknown flag":  {"-bogus"},
		"bad algorithm": {"-text", "m.txt", "-algorithm", "ida"},
		"bad level":     {"-text", "m.txt", "-log-level", "trace"},
		"bad format":    {"-text", "m.txt", "-log-format", "xml"},
		"bad tile":      {"-image", "m.png", "-tile", "0"},
		"missing file":  {filepath.Join(t.TempDir(), "none.hcl")},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			_, exit, err := cli.Parse(args, &out)
			assert.False(t, exit)
			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

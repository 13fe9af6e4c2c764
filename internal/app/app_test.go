package app_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/internal/app"
	"github.com/katalvlaran/lvsearch/raster"
)

func textConfig(t *testing.T, maze string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(maze), 0o600))

	cfg := config.Default()
	cfg.Maze.Text = path
	cfg.Output.Dir = filepath.Join(dir, "out")
	cfg.Log.Level = "error"
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestRun_TextMaze(t *testing.T) {
	cfg := textConfig(t, "S...\n.##.\n...G\n")
	cfg.Output.Console = true

	var out bytes.Buffer
	require.NoError(t, app.NewApp(&out, cfg).Run(context.Background()))

	report := out.String()
	assert.Contains(t, report, "ALGORITHM")
	for _, alg := range []string{"bfs", "dfs", "astar"} {
		assert.Contains(t, report, alg)
		assert.FileExists(t, filepath.Join(cfg.Output.Dir, "grid_"+alg+".png"))
		assert.NoFileExists(t, filepath.Join(cfg.Output.Dir, "solution_"+alg+".png"))
	}
	assert.Contains(t, report, "solved")
}

func TestRun_Unsolvable(t *testing.T) {
	cfg := textConfig(t, "S.#\n###\n..G\n")
	cfg.Search.Algorithms = []string{"astar"}

	var out bytes.Buffer
	require.NoError(t, app.NewApp(&out, cfg).Run(context.Background()))
	assert.Contains(t, out.String(), "exhausted")
	assert.NoFileExists(t, filepath.Join(cfg.Output.Dir, "grid_astar.png"))
}

func TestRun_ExpansionLimit(t *testing.T) {
	cfg := textConfig(t, "S.........\n..........\n..........\n.........G\n")
	cfg.Search.Algorithms = []string{"bfs"}
	cfg.Search.MaxExpansions = 2

	var out bytes.Buffer
	require.NoError(t, app.NewApp(&out, cfg).Run(context.Background()))
	assert.Contains(t, out.String(), "limit")
}

func TestRun_Canceled(t *testing.T) {
	cfg := textConfig(t, "S..\n...\n..G\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.NewApp(&bytes.Buffer{}, cfg).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_PictureMaze(t *testing.T) {
	const tile = 6
	colours := [][]color.RGBA{
		{{255, 0, 0, 255}, {255, 255, 255, 255}, {255, 255, 255, 255}},
		{{0, 0, 0, 255}, {0, 0, 0, 255}, {255, 255, 255, 255}},
		{{0, 255, 0, 255}, {255, 255, 255, 255}, {255, 255, 255, 255}},
	}
	img := image.NewRGBA(image.Rect(0, 0, 3*tile, 3*tile))
	for r, row := range colours {
		for c, col := range row {
			draw.Draw(img, image.Rect(c*tile, r*tile, (c+1)*tile, (r+1)*tile),
				image.NewUniform(col), image.Point{}, draw.Src)
		}
	}

	dir := t.TempDir()
	picture := filepath.Join(dir, "maze.png")
	require.NoError(t, raster.Save(picture, img))

	cfg := config.Default()
	cfg.Maze.Image = picture
	cfg.Maze.TileSize = tile
	cfg.Search.Algorithms = []string{"astar"}
	cfg.Output.Dir = filepath.Join(dir, "out")
	cfg.Log.Level = "error"
	require.NoError(t, cfg.Validate())

	var out bytes.Buffer
	require.NoError(t, app.NewApp(&out, cfg).Run(context.Background()))

	solution, err := raster.Load(filepath.Join(cfg.Output.Dir, "solution_astar.png"))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), solution.Bounds())
	assert.FileExists(t, filepath.Join(cfg.Output.Dir, "grid_astar.png"))
	assert.Contains(t, out.String(), "solved")
}

func TestRun_MissingInput(t *testing.T) {
	cfg := config.Default()
	cfg.Maze.Text = filepath.Join(t.TempDir(), "nope.txt")
	cfg.Output.Dir = t.TempDir()
	assert.Error(t, app.NewApp(&bytes.Buffer{}, cfg).Run(context.Background()))
}

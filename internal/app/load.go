package app

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/internal/ctxlog"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/raster"
)

// loaded is a maze ready to solve. picture is nil for text mazes.
type loaded struct {
	grid    *maze.Grid
	picture image.Image
	scale   int
}

// textScale is the pixels per tile used for grid images of text mazes.
const textScale = 10

func loadMaze(ctx context.Context, cfg config.Maze) (*loaded, error) {
	logger := ctxlog.FromContext(ctx)

	if cfg.Text != "" {
		src, err := os.ReadFile(cfg.Text)
		if err != nil {
			return nil, fmt.Errorf("read maze: %w", err)
		}
		g, err := maze.ParseText(string(src))
		if err != nil {
			return nil, fmt.Errorf("parse maze %s: %w", cfg.Text, err)
		}
		logger.Debug("Text maze parsed.", "path", cfg.Text)
		return &loaded{grid: g, scale: textScale}, nil
	}

	img, err := raster.Load(cfg.Image)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	logger.Debug("Image loaded.", "path", cfg.Image, "width", b.Dx(), "height", b.Dy())

	d, err := raster.NewDiscretizer(cfg.TileSize)
	if err != nil {
		return nil, err
	}
	g, err := d.Discretize(img)
	if err != nil {
		return nil, fmt.Errorf("discretize %s: %w", cfg.Image, err)
	}
	return &loaded{grid: g, picture: img, scale: cfg.TileSize}, nil
}

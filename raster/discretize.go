package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/katalvlaran/lvsearch/maze"
)

// Discretizer maps square pixel blocks to maze tiles.
type Discretizer struct {
	tileSize int
}

// NewDiscretizer returns a Discretizer for tileSize×tileSize blocks.
func NewDiscretizer(tileSize int) (*Discretizer, error) {
	if tileSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadTileSize, tileSize)
	}
	return &Discretizer{tileSize: tileSize}, nil
}

// TileSize returns the block edge in pixels.
func (d *Discretizer) TileSize() int { return d.tileSize }

// Dims returns the grid size Discretize would produce for img.
func (d *Discretizer) Dims(img image.Image) (rows, cols int) {
	b := img.Bounds()
	return b.Dy() / d.tileSize, b.Dx() / d.tileSize
}

// Discretize classifies every complete block of img and returns the grid.
func (d *Discretizer) Discretize(img image.Image) (*maze.Grid, error) {
	rows, cols := d.Dims(img)
	if rows == 0 || cols == 0 {
		b := img.Bounds()
		return nil, fmt.Errorf("%w: %dx%d px, tile %d", ErrImageTooSmall, b.Dx(), b.Dy(), d.tileSize)
	}

	tiles := make([][]maze.TileType, rows)
	for r := range tiles {
		tiles[r] = make([]maze.TileType, cols)
		for c := range tiles[r] {
			tiles[r][c] = Classify(d.Average(img, r, c))
		}
	}
	return maze.NewGrid(tiles)
}

// Average returns the truncated mean colour of block (row, col). Alpha is
// ignored, so translucent pixels count with their straight colour.
func (d *Discretizer) Average(img image.Image, row, col int) RGB {
	b := img.Bounds()
	x0 := b.Min.X + col*d.tileSize
	y0 := b.Min.Y + row*d.tileSize

	var sr, sg, sb uint64
	for y := y0; y < y0+d.tileSize; y++ {
		for x := x0; x < x0+d.tileSize; x++ {
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			sr += uint64(px.R)
			sg += uint64(px.G)
			sb += uint64(px.B)
		}
	}
	n := uint64(d.tileSize * d.tileSize)
	return RGB{R: uint8(sr / n), G: uint8(sg / n), B: uint8(sb / n)}
}

// Classify maps an average colour to a tile type.
func Classify(c RGB) maze.TileType {
	r, g, b := int(c.R), int(c.G), int(c.B)
	switch {
	case r < wallMax && g < wallMax && b < wallMax:
		return maze.Wall
	case r > dominantMin && g < recessiveLt && b < recessiveLt && r > g && r > b:
		return maze.Start
	case g > dominantMin && r < recessiveLt && b < recessiveLt && g > r && g > b:
		return maze.Goal
	}
	return maze.Free
}

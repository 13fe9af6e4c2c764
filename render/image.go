package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/katalvlaran/lvsearch/maze"
)

// Palette used by Overlay and GridImage.
var (
	PathColor  = color.RGBA{R: 255, G: 255, A: 255}
	PointColor = color.RGBA{R: 255, B: 255, A: 255}
	FreeColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	WallColor  = color.RGBA{A: 255}
	StartColor = color.RGBA{R: 255, A: 255}
	GoalColor  = color.RGBA{G: 255, A: 255}
)

const (
	lineWidth   = 3
	pointRadius = 2
	circleSides = 24
)

// Overlay returns a copy of src with path drawn through the centres of
// its tileSize×tileSize cells. A path shorter than two cells leaves the
// copy untouched.
func Overlay(src image.Image, path []maze.Coord, tileSize int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	if len(path) < 2 || tileSize < 1 {
		return dst
	}

	pts := make([]point, len(path))
	for i, c := range path {
		pts[i] = centre(c, tileSize)
	}

	z := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	for i := 1; i < len(pts); i++ {
		segment(z, pts[i-1], pts[i], lineWidth/2.0)
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(PathColor), image.Point{})

	z.Reset(dst.Bounds().Dx(), dst.Bounds().Dy())
	for _, p := range pts {
		disc(z, p, pointRadius)
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(PointColor), image.Point{})

	return dst
}

// GridImage paints g at scale pixels per tile and marks the inner cells
// of path, excluding its first and last, in PathColor.
func GridImage(g *maze.Grid, path []maze.Coord, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, g.Cols()*scale, g.Rows()*scale))
	fill := func(c maze.Coord, col color.Color) {
		rect := image.Rect(c.Col*scale, c.Row*scale, (c.Col+1)*scale, (c.Row+1)*scale)
		draw.Draw(dst, rect, image.NewUniform(col), image.Point{}, draw.Src)
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			at := maze.Coord{Row: r, Col: c}
			tile, _ := g.At(at)
			fill(at, tileColor(tile))
		}
	}
	if len(path) > 2 {
		for _, c := range path[1 : len(path)-1] {
			if g.InBounds(c) {
				fill(c, PathColor)
			}
		}
	}
	return dst
}

func tileColor(t maze.TileType) color.Color {
	switch t {
	case maze.Wall:
		return WallColor
	case maze.Start:
		return StartColor
	case maze.Goal:
		return GoalColor
	}
	return FreeColor
}

type point struct{ x, y float32 }

// centre returns the middle of the pixel at the tile centre.
func centre(c maze.Coord, tileSize int) point {
	half := tileSize / 2
	return point{
		x: float32(c.Col*tileSize+half) + 0.5,
		y: float32(c.Row*tileSize+half) + 0.5,
	}
}

// segment adds a rectangle of half-width hw around p→q. All rectangles
// share one winding so overlaps never cancel.
func segment(z *vector.Rasterizer, p, q point, hw float32) {
	dx, dy := q.x-p.x, q.y-p.y
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	// extend by hw so joints at corners stay filled
	ex, ey := dx/l*hw, dy/l*hw

	z.MoveTo(p.x-ex+nx, p.y-ey+ny)
	z.LineTo(q.x+ex+nx, q.y+ey+ny)
	z.LineTo(q.x+ex-nx, q.y+ey-ny)
	z.LineTo(p.x-ex-nx, p.y-ey-ny)
	z.ClosePath()
}

// disc adds a filled polygonal circle.
func disc(z *vector.Rasterizer, c point, r float32) {
	z.MoveTo(c.x+r, c.y)
	for i := 1; i < circleSides; i++ {
		a := 2 * math.Pi * float64(i) / circleSides
		z.LineTo(c.x+r*float32(math.Cos(a)), c.y+r*float32(math.Sin(a)))
	}
	z.ClosePath()
}

package render

import (
	"strings"

	"github.com/gookit/color"

	"github.com/katalvlaran/lvsearch/maze"
)

// Console glyphs.
const (
	glyphFree  = '.'
	glyphWall  = '#'
	glyphStart = 'S'
	glyphGoal  = 'G'
	glyphPath  = '*'
)

// Console returns g as text, one line per row, with every path cell that
// is neither Start nor Goal drawn as '*'. Out-of-bounds path cells are
// ignored.
func Console(g *maze.Grid, path []maze.Coord) string {
	onPath := make(map[maze.Coord]struct{}, len(path))
	for _, c := range path {
		onPath[c] = struct{}{}
	}

	var sb strings.Builder
	sb.Grow(g.Rows() * (g.Cols() + 1))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			at := maze.Coord{Row: r, Col: c}
			tile, _ := g.At(at)
			glyph := glyphOf(tile)
			if _, ok := onPath[at]; ok && tile == maze.Free {
				glyph = glyphPath
			}
			sb.WriteByte(glyph)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func glyphOf(t maze.TileType) byte {
	switch t {
	case maze.Wall:
		return glyphWall
	case maze.Start:
		return glyphStart
	case maze.Goal:
		return glyphGoal
	}
	return glyphFree
}

// glyphStyles colours Console glyphs. Free cells stay plain.
var glyphStyles = map[byte]color.Color{
	glyphWall:  color.Gray,
	glyphStart: color.Red,
	glyphGoal:  color.Green,
	glyphPath:  color.Yellow,
}

// ConsoleColor is Console with ANSI colours. Colours are dropped
// automatically when the terminal does not support them.
func ConsoleColor(g *maze.Grid, path []maze.Coord) string {
	plain := Console(g, path)
	var sb strings.Builder
	sb.Grow(len(plain) * 4)
	for i := 0; i < len(plain); i++ {
		ch := plain[i]
		if style, ok := glyphStyles[ch]; ok {
			sb.WriteString(style.Sprint(string(ch)))
			continue
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}

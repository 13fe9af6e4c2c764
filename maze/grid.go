package maze

import (
	"fmt"
	"strings"
)

// Walkability answers whether a cell can be entered. Out-of-bounds cells
// are never walkable.
type Walkability interface {
	Walkable(c Coord) bool
}

// Grid is an immutable rectangular matrix of tiles.
type Grid struct {
	rows, cols int
	tiles      [][]TileType
}

// NewGrid builds a Grid from a non-empty rectangular matrix, deep-copying
// it. Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
func NewGrid(tiles [][]TileType) (*Grid, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(tiles), len(tiles[0])
	cells := make([][]TileType, h)
	for r, row := range tiles {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		cells[r] = make([]TileType, w)
		copy(cells[r], row)
	}
	return &Grid{rows: h, cols: w, tiles: cells}, nil
}

// tileRunes maps ASCII maze characters to tiles.
var tileRunes = map[rune]TileType{
	'#': Wall,
	'.': Free,
	' ': Free,
	'S': Start,
	'G': Goal,
	'E': Goal,
}

// ParseText reads an ASCII maze, one row per line:
//
//	#  wall     . or space  free
//	S  start    G or E      goal
//
// Blank leading and trailing lines and carriage returns are ignored.
func ParseText(text string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	tiles := make([][]TileType, 0, len(lines))
	for r, line := range lines {
		row := make([]TileType, 0, len(line))
		for c, ch := range line {
			t, ok := tileRunes[ch]
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownTile, ch, r, c)
			}
			row = append(row, t)
		}
		tiles = append(tiles, row)
	}
	return NewGrid(tiles)
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the tile at c, or ErrOutOfBounds.
func (g *Grid) At(c Coord) (TileType, error) {
	if !g.InBounds(c) {
		return Wall, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return g.tiles[c.Row][c.Col], nil
}

// Walkable reports whether c is in bounds and not a wall.
func (g *Grid) Walkable(c Coord) bool {
	return g.InBounds(c) && g.tiles[c.Row][c.Col].Walkable()
}

// Start returns the start position. When several Start tiles exist, the
// last one in row-major order wins.
func (g *Grid) Start() (Coord, error) {
	start, found := Coord{}, false
	g.each(func(c Coord, t TileType) {
		if t == Start {
			start, found = c, true
		}
	})
	if !found {
		return Coord{}, ErrNoStart
	}
	return start, nil
}

// Goals returns every Goal tile in row-major order.
func (g *Grid) Goals() []Coord {
	var goals []Coord
	g.each(func(c Coord, t TileType) {
		if t == Goal {
			goals = append(goals, c)
		}
	})
	return goals
}

// Count returns the number of tiles of type t.
func (g *Grid) Count(t TileType) int {
	n := 0
	g.each(func(_ Coord, tt TileType) {
		if tt == t {
			n++
		}
	})
	return n
}

func (g *Grid) each(fn func(c Coord, t TileType)) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			fn(Coord{Row: r, Col: c}, g.tiles[r][c])
		}
	}
}

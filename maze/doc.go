// Package maze treats a rectangular grid of tiles as a navigation problem
// for the search engine.
//
// What:
//
//   - Grid wraps a [][]TileType (Free, Wall, Start, Goal); ParseText reads
//     ASCII mazes ('#', '.', 'S', 'G').
//   - Problem implements search.Problem[Coord, Move] over any Walkability
//     oracle: 8-connected moves by default (Conn4 optional), unit axis
//     cost, 1.414 diagonal cost, heuristic = min distance to any goal.
//
// Heuristics:
//
//   - Euclidean (default): consistent for Conn4, and for Conn8 when the
//     diagonal cost is at least √2 (the 1.414 default is a hair below).
//   - Octile: exact on an open Conn8 grid with default costs.
//   - Manhattan: consistent only for Conn4 with unit cost.
//   - Zero: turns A* into uniform-cost search.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownTile: malformed input.
//   - ErrOutOfBounds: Grid.At outside the grid.
//   - ErrNoStart, ErrNoGoal: missing endpoints.
//   - ErrOptionViolation: invalid Option.
//   - search.ErrInvalidAction: Problem.Result with an illegal move.
package maze

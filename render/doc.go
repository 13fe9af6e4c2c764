// Package render draws maze solutions as text and as images.
//
//   - Console prints a Grid with the path marked '*'; ConsoleColor adds
//     ANSI colours via github.com/gookit/color.
//   - Overlay copies the source picture and strokes the path through tile
//     centres: a yellow line 3 px wide, a magenta dot of radius 2 per cell.
//   - GridImage paints one scale×scale block per tile: free white, wall
//     black, start red, goal green, inner path cells yellow.
//
// Overlay rasterizes with golang.org/x/image/vector, so strokes are
// anti-aliased at their edges.
package render

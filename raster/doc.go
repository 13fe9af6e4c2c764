// Package raster turns maze pictures into tile grids.
//
// What:
//
//   - Load/Decode read PNG or BMP images; Save/Encode write PNG.
//   - Discretizer cuts an image into TileSize×TileSize blocks, averages the
//     RGB of each block and classifies the average as a maze.TileType.
//
// Classification of an average colour (r, g, b), first match wins:
//
//	wall   r < 30 && g < 30 && b < 30
//	start  r > 120 && g < 100 && b < 100 && r > g && r > b
//	goal   g > 120 && r < 100 && b < 100 && g > r && g > b
//	free   anything else
//
// Blocks that would run past the right or bottom edge are dropped, so the
// grid is (H / TileSize) rows by (W / TileSize) columns.
//
// Complexity:
//
//   - Discretize: O(W·H) time, O(W·H / TileSize²) memory.
//
// Errors:
//
//   - ErrBadTileSize        tile size < 1.
//   - ErrImageTooSmall      image smaller than one tile in either dimension.
//   - ErrUnsupportedFormat  input is neither PNG nor BMP.
package raster

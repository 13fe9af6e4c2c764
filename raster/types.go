package raster

import "errors"

var (
	// ErrBadTileSize indicates a tile size below one pixel.
	ErrBadTileSize = errors.New("raster: tile size must be positive")
	// ErrImageTooSmall indicates an image that holds no complete tile.
	ErrImageTooSmall = errors.New("raster: image smaller than one tile")
	// ErrUnsupportedFormat indicates an image that is neither PNG nor BMP.
	ErrUnsupportedFormat = errors.New("raster: unsupported image format")
)

// DefaultTileSize is the block edge, in pixels, used when none is given.
const DefaultTileSize = 10

// Colour thresholds for tile classification.
const (
	wallMax     = 30
	dominantMin = 120
	recessiveLt = 100
)

// RGB is an 8-bit colour triple.
type RGB struct {
	R, G, B uint8
}

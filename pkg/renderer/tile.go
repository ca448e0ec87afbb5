package renderer

import "image"

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Row-major tile index
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// TileGrid splits an image into square tiles in row-major order.
// Tiles are computed on demand, so walking the grid allocates nothing.
type TileGrid struct {
	width, height int
	size          int
	cols, rows    int
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) TileGrid {
	return TileGrid{
		width:  width,
		height: height,
		size:   tileSize,
		cols:   (width + tileSize - 1) / tileSize, // Ceiling division
		rows:   (height + tileSize - 1) / tileSize,
	}
}

// Len returns the number of tiles
func (g TileGrid) Len() int {
	return g.cols * g.rows
}

// Tile returns tile i
func (g TileGrid) Tile(i int) Tile {
	return Tile{ID: i, Bounds: g.TileBounds(i)}
}

// TileBounds returns the pixel bounds of tile i; edge tiles are clipped to the image
func (g TileGrid) TileBounds(i int) image.Rectangle {
	tileX, tileY := i%g.cols, i/g.cols
	x0 := tileX * g.size
	y0 := tileY * g.size
	x1 := min(x0+g.size, g.width) // Don't exceed image bounds
	y1 := min(y0+g.size, g.height)
	return image.Rect(x0, y0, x1, y1)
}

// TileSeed derives the generator seed for tile i from the render's base seed
func TileSeed(base uint64, i int) uint64 {
	return base + uint64(i)
}

package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// Cell accumulates the samples of one pixel
type Cell struct {
	Sum     core.Vec3 // Sum of all samples
	Samples uint32    // Number of samples taken
}

// Frame is a width x height grid of accumulation cells in row-major order.
// Row 0 is the top of the image. Concurrent writers must touch disjoint cells.
type Frame struct {
	width, height int
	cells         []Cell
}

// NewFrame allocates a zeroed frame
func NewFrame(width, height int) *Frame {
	return &Frame{width: width, height: height, cells: make([]Cell, width*height)}
}

// NewFrameFromCells wraps a caller-owned cell buffer, so a frame can live in
// statically allocated memory. The buffer must hold at least width*height cells.
func NewFrameFromCells(width, height int, cells []Cell) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: frame size %dx%d", ErrInvalidConfig, width, height)
	}
	if len(cells) < width*height {
		return nil, fmt.Errorf("%w: %d cells cannot hold a %dx%d frame", ErrInvalidConfig, len(cells), width, height)
	}
	return &Frame{width: width, height: height, cells: cells[:width*height]}, nil
}

// Width returns the frame width in pixels
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in pixels
func (f *Frame) Height() int { return f.height }

// Bounds returns the pixel rectangle covered by the frame
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// AddSample adds one radiance sample to pixel (x, y). NaN and infinite components
// count as zero so a single bad path cannot poison the pixel.
func (f *Frame) AddSample(x, y int, c core.Vec3) {
	cell := &f.cells[y*f.width+x]
	cell.Sum = cell.Sum.Add(c.Sanitize())
	cell.Samples++
}

// Color returns the average color of pixel (x, y); black when it has no samples
func (f *Frame) Color(x, y int) core.Vec3 {
	cell := &f.cells[y*f.width+x]
	if cell.Samples == 0 {
		return core.Vec3{}
	}
	return cell.Sum.Multiply(1 / numeric.Real(cell.Samples))
}

// Samples returns the number of samples accumulated at pixel (x, y)
func (f *Frame) Samples(x, y int) int {
	return int(f.cells[y*f.width+x].Samples)
}

// Cells exposes the underlying buffer in row-major order
func (f *Frame) Cells() []Cell {
	return f.cells
}

// RGB8 returns the gamma-corrected 8-bit color of pixel (x, y)
func (f *Frame) RGB8(x, y int) (r, g, b uint8) {
	return toRGB8(f.Color(x, y))
}

// RGBA converts the frame into an image with gamma 2 and clamping applied
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(f.Bounds())
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			r, g, b := f.RGB8(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// Reset clears every cell
func (f *Frame) Reset() {
	clear(f.cells)
}

// toRGB8 converts a linear color to 8-bit sRGB-ish values (gamma 2, clamped)
func toRGB8(c core.Vec3) (r, g, b uint8) {
	c = c.GammaCorrect(2.0).Clamp(0.0, 1.0)
	return uint8(255 * c.X), uint8(255 * c.Y), uint8(255 * c.Z)
}

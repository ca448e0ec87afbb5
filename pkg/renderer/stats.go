package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of samples taken
	Tiles        int           // Number of tiles rendered
	Duration     time.Duration // Wall time of the render
}

// Add merges the counters of another stats value
func (s *RenderStats) Add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.Tiles += other.Tiles
}

// AverageSamples returns the mean number of samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%d pixels, %d samples (%.1f/pixel), %d tiles in %v",
		s.TotalPixels, s.TotalSamples, s.AverageSamples(), s.Tiles, s.Duration)
}

// CalculateAverageLuminance returns the mean luminance of the frame's averaged colors
func CalculateAverageLuminance(f *Frame) float64 {
	total := 0.0
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			total += float64(f.Color(x, y).Luminance())
		}
	}
	return total / float64(f.Width()*f.Height())
}

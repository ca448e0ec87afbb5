// Package config loads render settings from TOML or YAML files
package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
	"github.com/df07/go-portable-raytracer/pkg/renderer"
)

// ErrUnknownFormat is returned for files that are neither TOML nor YAML
var ErrUnknownFormat = errors.New("unknown config format")

// Format names a supported file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// File is the on-disk configuration. Zero values mean "keep the default".
type File struct {
	Scene  string        `toml:"scene" yaml:"scene"`
	Output string        `toml:"output" yaml:"output"`
	Render RenderSection `toml:"render" yaml:"render"`
	Camera CameraSection `toml:"camera" yaml:"camera"`
}

// RenderSection overrides renderer.Config
type RenderSection struct {
	Width                     int     `toml:"width" yaml:"width"`
	Height                    int     `toml:"height" yaml:"height"`
	SamplesPerPixel           int     `toml:"samples_per_pixel" yaml:"samples_per_pixel"`
	MaxDepth                  *int    `toml:"max_depth" yaml:"max_depth"`
	RussianRouletteMinBounces int     `toml:"russian_roulette_min_bounces" yaml:"russian_roulette_min_bounces"`
	TileSize                  int     `toml:"tile_size" yaml:"tile_size"`
	Workers                   int     `toml:"workers" yaml:"workers"`
	Seed                      *uint64 `toml:"seed" yaml:"seed"`
	BackgroundOnExhaustion    bool    `toml:"background_on_exhaustion" yaml:"background_on_exhaustion"`
}

// CameraSection overrides the scene's camera
type CameraSection struct {
	Center        []float64 `toml:"center" yaml:"center"`
	LookAt        []float64 `toml:"look_at" yaml:"look_at"`
	Up            []float64 `toml:"up" yaml:"up"`
	VFov          float64   `toml:"vfov" yaml:"vfov"`
	Aperture      float64   `toml:"aperture" yaml:"aperture"`
	FocusDistance float64   `toml:"focus_distance" yaml:"focus_distance"`
	ShutterOpen   float64   `toml:"shutter_open" yaml:"shutter_open"`
	ShutterClose  float64   `toml:"shutter_close" yaml:"shutter_close"`
}

// Decoder is implemented by the TOML and YAML decoders
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc creates a Decoder reading from r
type DecoderFunc func(r io.Reader) Decoder

// decoderFor returns a strict decoder for the format: unknown keys are errors
func decoderFor(format Format) (DecoderFunc, error) {
	switch format {
	case FormatTOML:
		return func(r io.Reader) Decoder {
			return toml.NewDecoder(r).DisallowUnknownFields()
		}, nil
	case FormatYAML:
		return func(r io.Reader) Decoder {
			d := yaml.NewDecoder(r)
			d.KnownFields(true)
			return d
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads a configuration file, choosing the format by extension
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	file, err := Read(bufio.NewReader(fp), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Parse decodes configuration bytes in the given format
func Parse(data []byte, format Format) (*File, error) {
	return Read(bytes.NewReader(data), format)
}

// Read decodes a configuration from r and validates it
func Read(r io.Reader, format Format) (*File, error) {
	newDecoder, err := decoderFor(format)
	if err != nil {
		return nil, err
	}

	var file File
	// An empty YAML document decodes to io.EOF; treat it as "no overrides"
	if err := newDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}
	if err := file.validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

func (f *File) validate() error {
	for name, v := range map[string][]float64{
		"center":  f.Camera.Center,
		"look_at": f.Camera.LookAt,
		"up":      f.Camera.Up,
	} {
		if v != nil && len(v) != 3 {
			return fmt.Errorf("%w: camera.%s needs 3 components, got %d", renderer.ErrInvalidConfig, name, len(v))
		}
	}
	return nil
}

// ApplyRender returns base with every set field of the render section applied
func (f *File) ApplyRender(base renderer.Config) renderer.Config {
	r := f.Render
	if r.Width > 0 {
		base.Width = r.Width
	}
	if r.Height > 0 {
		base.Height = r.Height
	}
	if r.SamplesPerPixel > 0 {
		base.SamplesPerPixel = r.SamplesPerPixel
	}
	if r.MaxDepth != nil {
		base.MaxDepth = *r.MaxDepth
	}
	if r.RussianRouletteMinBounces > 0 {
		base.RussianRouletteMinBounces = r.RussianRouletteMinBounces
	}
	if r.TileSize > 0 {
		base.TileSize = r.TileSize
	}
	if r.Workers > 0 {
		base.NumWorkers = r.Workers
	}
	if r.Seed != nil {
		base.Seed = *r.Seed
	}
	if r.BackgroundOnExhaustion {
		base.BackgroundOnExhaustion = true
	}
	return base
}

// CameraOverride converts the camera section into an override for
// geometry.MergeCameraConfig
func (f *File) CameraOverride() geometry.CameraConfig {
	c := f.Camera
	return geometry.CameraConfig{
		Center:        toVec3(c.Center),
		LookAt:        toVec3(c.LookAt),
		Up:            toVec3(c.Up),
		VFov:          numeric.Real(c.VFov),
		Aperture:      numeric.Real(c.Aperture),
		FocusDistance: numeric.Real(c.FocusDistance),
		ShutterOpen:   numeric.Real(c.ShutterOpen),
		ShutterClose:  numeric.Real(c.ShutterClose),
	}
}

func toVec3(v []float64) core.Vec3 {
	if len(v) != 3 {
		return core.Vec3{}
	}
	return core.NewVec3(numeric.Real(v[0]), numeric.Real(v[1]), numeric.Real(v[2]))
}

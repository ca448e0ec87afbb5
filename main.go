package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"

	"github.com/df07/go-portable-raytracer/pkg/binframe"
	"github.com/df07/go-portable-raytracer/pkg/config"
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/renderer"
	"github.com/df07/go-portable-raytracer/pkg/scene"
)

// options holds the command line flags
type options struct {
	scene      string
	configPath string
	outputDir  string
	format     string
	scheduler  string
	frameDump  bool
	verbose    bool

	width, height int
	samples       int
	maxDepth      int
	tileSize      int
	workers       int
	seed          uint64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "raytracer",
		Short:         "Portable path tracer",
		Long:          "Renders a built-in scene and saves it to output/<scene>/render_<timestamp>.<format>",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.scene, "scene", "s", "default", "Scene to render (see the scenes command)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML or YAML file with render and camera settings")
	flags.StringVarP(&opts.outputDir, "output", "o", "output", "Output directory")
	flags.StringVarP(&opts.format, "format", "f", "png", "Image format: png or bmp")
	flags.StringVar(&opts.scheduler, "scheduler", "auto", "Execution strategy: auto, parallel or sequential")
	flags.BoolVar(&opts.frameDump, "frame", false, "Also write the compact binary frame (.rtf)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging")
	flags.IntVar(&opts.width, "width", 0, "Image width (default from scene)")
	flags.IntVar(&opts.height, "height", 0, "Image height (default from scene)")
	flags.IntVar(&opts.samples, "samples", 0, "Samples per pixel (default from scene)")
	flags.IntVar(&opts.maxDepth, "max-depth", 0, "Maximum bounces (default from scene)")
	flags.IntVar(&opts.tileSize, "tile-size", 0, "Tile size in pixels")
	flags.IntVar(&opts.workers, "workers", 0, "Parallel workers (0 = number of CPUs)")
	flags.Uint64Var(&opts.seed, "seed", 0, "Base random seed")

	cmd.AddCommand(newScenesCmd())
	return cmd
}

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the built-in scenes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, info := range scene.ListScenes() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-16s %s\n", info.ID, info.Description)
			}
		},
	}
}

func run(cmd *cobra.Command, opts *options) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := core.NewSlogLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	var file *config.File
	if opts.configPath != "" {
		var err error
		if file, err = config.Load(opts.configPath); err != nil {
			return err
		}
		if file.Scene != "" && !cmd.Flags().Changed("scene") {
			opts.scene = file.Scene
		}
		if file.Output != "" && !cmd.Flags().Changed("output") {
			opts.outputDir = file.Output
		}
	}

	var cameraOverride geometry.CameraConfig
	if file != nil {
		cameraOverride = file.CameraOverride()
	}
	s, err := createScene(opts.scene, cameraOverride)
	if err != nil {
		return err
	}

	renderConfig := buildConfig(cmd, opts, s, file)
	rt, err := renderer.NewRaytracer(s, renderConfig, logger)
	if err != nil {
		return err
	}
	scheduler, err := pickScheduler(opts.scheduler)
	if err != nil {
		return err
	}
	rt.SetScheduler(scheduler)

	frame, stats, err := rt.Render()
	if err != nil {
		return err
	}
	logger.Slog().Debug("frame statistics",
		"avg_luminance", renderer.CalculateAverageLuminance(frame),
		"avg_samples", stats.AverageSamples())

	outputDir := filepath.Join(opts.outputDir, strings.ToLower(opts.scene))
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	timestamp := time.Now()

	imagePath := outputPath(outputDir, opts.format, timestamp)
	if err := writeFile(imagePath, func(w io.Writer) error {
		return encodeImage(w, frame.RGBA(), opts.format)
	}); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", imagePath)

	if opts.frameDump {
		framePath := outputPath(outputDir, "rtf", timestamp)
		buf := make([]byte, binframe.EncodedSize(frame.Width(), frame.Height()))
		if err := writeFile(framePath, func(w io.Writer) error {
			_, err := binframe.NewWriter(w, buf).WriteFrame(frame)
			return err
		}); err != nil {
			return err
		}
		logger.Printf("Binary frame saved as %s\n", framePath)
	}
	return nil
}

// createScene builds a registered scene with optional camera overrides
func createScene(name string, cameraOverride geometry.CameraConfig) (*scene.Scene, error) {
	return scene.ByName(name, cameraOverride)
}

// buildConfig layers the render settings: defaults, the scene's recommendation,
// the config file, then explicitly set flags
func buildConfig(cmd *cobra.Command, opts *options, s *scene.Scene, file *config.File) renderer.Config {
	c := renderer.ConfigFromSampling(s.SamplingConfig)
	if file != nil {
		c = file.ApplyRender(c)
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		c.Width = opts.width
	}
	if flags.Changed("height") {
		c.Height = opts.height
	}
	if flags.Changed("samples") {
		c.SamplesPerPixel = opts.samples
	}
	if flags.Changed("max-depth") {
		c.MaxDepth = opts.maxDepth
	}
	if flags.Changed("tile-size") {
		c.TileSize = opts.tileSize
	}
	if flags.Changed("workers") {
		c.NumWorkers = opts.workers
	}
	if flags.Changed("seed") {
		c.Seed = opts.seed
	}
	return c
}

func pickScheduler(name string) (renderer.Scheduler, error) {
	switch strings.ToLower(name) {
	case "auto", "":
		return renderer.DefaultScheduler(), nil
	case "parallel":
		return renderer.ParallelScheduler{}, nil
	case "sequential":
		return renderer.SequentialScheduler{}, nil
	default:
		return nil, fmt.Errorf("unknown scheduler %q (want auto, parallel or sequential)", name)
	}
}

func encodeImage(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unknown image format %q (want png or bmp)", format)
	}
}

// outputPath creates a timestamped filename
func outputPath(dir, ext string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("render_%s.%s", t.Format("20060102_150405"), strings.ToLower(ext)))
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

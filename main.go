package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'cover'")
	width := flag.Int("width", 0, "Override image width in pixels")
	samples := flag.Int("samples", 0, "Override samples per pixel")
	depth := flag.Int("depth", 0, "Override maximum ray bounce depth")
	seed := flag.Int64("seed", 42, "Random seed for sampling and scene generation")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Weekend Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Three-sphere scene with glass, metal, and depth of field")
		fmt.Println("  cover   - Randomized field of small spheres around three large ones")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.<format>")
		return
	}

	if err := run(*sceneType, *width, *samples, *depth, *seed, *format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneType string, width, samples, depth int, seed int64, format string) error {
	if format != "ppm" && format != "png" {
		return fmt.Errorf("unknown output format %q", format)
	}

	random := rand.New(rand.NewSource(seed))

	selectedScene, err := createScene(sceneType, random)
	if err != nil {
		return err
	}

	// Apply command line overrides to the scene's camera config
	config := selectedScene.CameraConfig
	if width > 0 {
		config.Width = width
	}
	if samples > 0 {
		config.SamplesPerPixel = samples
	}
	if depth > 0 {
		config.MaxDepth = depth
	}

	// Invalid configuration aborts here, before any output file exists
	camera, err := renderer.NewCamera(config, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}

	outputDir := filepath.Join("output", sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format))

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(os.Stderr, "Rendering %dx%d with %d samples per pixel...\n",
		camera.Width(), camera.Height(), config.SamplesPerPixel)

	startTime := time.Now()
	if err := renderTo(camera, selectedScene, random, format, file); err != nil {
		return err
	}
	renderTime := time.Since(startTime)

	fmt.Fprintf(os.Stderr, "Render completed in %v\n", renderTime)
	fmt.Fprintf(os.Stderr, "Render saved as %s\n", filename)
	return nil
}

func renderTo(camera *renderer.Camera, selectedScene *scene.Scene, random *rand.Rand, format string, output io.Writer) error {
	if format == "png" {
		img := camera.RenderImage(selectedScene, random)
		if err := png.Encode(output, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
		return nil
	}
	return camera.Render(selectedScene, random, output)
}

func createScene(sceneType string, random *rand.Rand) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "cover":
		return scene.NewCoverScene(random), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q", sceneType)
	}
}

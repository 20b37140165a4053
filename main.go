package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/agourlay/ray-tracer/pkg/canvas"
	"github.com/agourlay/ray-tracer/pkg/projectile"
	"github.com/agourlay/ray-tracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "demo", "Scene to render: 'demo', 'patterns' or 'projectile'")
	width := flag.Int("width", 900, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	output := flag.String("out", "", "Output file path (default output/<scene>/render_<timestamp>.<format>)")
	format := flag.String("format", "png", "Output format: 'png' or 'ppm'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Ray Tracer")
		fmt.Println("Usage: ray-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  demo       - Three spheres in a room built from flattened spheres")
		fmt.Println("  patterns   - Patterned spheres over a checkered plane floor")
		fmt.Println("  projectile - Trajectory of a projectile plotted on a canvas (best at 900x550)")
		return
	}

	if *format != "png" && *format != "ppm" {
		fmt.Printf("Unknown format: %s. Using png.\n", *format)
		*format = "png"
	}

	fmt.Printf("Rendering scene '%s' at %dx%d...\n", *sceneName, *width, *height)

	startTime := time.Now()
	img, err := renderScene(*sceneName, *width, *height)
	if err != nil {
		fmt.Printf("Error building scene: %v\n", err)
		return
	}
	renderTime := time.Since(startTime)
	fmt.Printf("Render completed in %v\n", renderTime)

	filename := *output
	if filename == "" {
		filename = defaultOutputPath(*sceneName, *format, time.Now())
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	if err := saveCanvas(img, filename, *format); err != nil {
		fmt.Printf("Error saving render: %v\n", err)
		return
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// renderScene renders the named scene to a canvas.
func renderScene(name string, width, height int) (*canvas.Canvas, error) {
	if name == "projectile" {
		return projectile.Run(width, height), nil
	}
	s, err := scene.Build(name, width, height)
	if err != nil {
		return nil, err
	}
	return s.Camera.Render(s.World), nil
}

// defaultOutputPath builds the timestamped output path for a scene render.
func defaultOutputPath(sceneName, format string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.%s", timestamp, format))
}

// saveCanvas writes the canvas to disk in the requested format.
func saveCanvas(c *canvas.Canvas, filename, format string) error {
	if format == "ppm" {
		return c.SavePPM(filename)
	}
	return c.SavePNG(filename)
}

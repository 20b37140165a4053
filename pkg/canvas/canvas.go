package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/agourlay/ray-tracer/pkg/core"
)

// maxColorValue is the largest channel value in the encoded output.
const maxColorValue = 255

// maxPPMLineLength caps the pixel data lines of a PPM file; wrapping happens
// between pixel triplets, never inside one.
const maxPPMLineLength = 69

// Canvas is a rectangular grid of colors, the sink every render writes into.
// Pixels keep their raw float channels; clamping and scaling happen only at
// encoding time.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// New creates a canvas of the given size with every pixel black.
func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// NewWithColor creates a canvas of the given size filled with one color.
func NewWithColor(width, height int, c core.Color) *Canvas {
	canvas := New(width, height)
	for i := range canvas.pixels {
		canvas.pixels[i] = c
	}
	return canvas
}

// Write stores a color at the given pixel coordinate.
func (c *Canvas) Write(x, y int, col core.Color) {
	c.pixels[x+y*c.Width] = col
}

// ColorAt returns the color stored at the given pixel coordinate.
// The boolean is false when the coordinate is outside the canvas.
func (c *Canvas) ColorAt(x, y int) (core.Color, bool) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return core.Color{}, false
	}
	return c.pixels[x+y*c.Width], true
}

// ToPPM encodes the canvas as a plain PPM (P3) string: a three line header,
// one group of wrapped lines per pixel row, and a trailing "\n ".
func (c *Canvas) ToPPM() string {
	var builder strings.Builder
	for y := 0; y < c.Height; y++ {
		lineLength := 0
		for x := 0; x < c.Width; x++ {
			triplet := encodeTriplet(c.pixels[x+y*c.Width])
			switch {
			case lineLength == 0:
				builder.WriteString(triplet)
				lineLength = len(triplet)
			case lineLength+len(triplet)+1 <= maxPPMLineLength:
				builder.WriteString(" ")
				builder.WriteString(triplet)
				lineLength += len(triplet) + 1
			default:
				builder.WriteString("\n")
				builder.WriteString(triplet)
				lineLength = len(triplet)
			}
		}
		builder.WriteString("\n")
	}
	header := fmt.Sprintf("P3\n%d %d\n%d", c.Width, c.Height, maxColorValue)
	return fmt.Sprintf("%s\n%s\n ", header, builder.String())
}

// SavePPM writes the canvas to a PPM file.
func (c *Canvas) SavePPM(filename string) error {
	if err := os.WriteFile(filename, []byte(c.ToPPM()), 0o644); err != nil {
		return fmt.Errorf("failed to save PPM file: %v", err)
	}
	return nil
}

// ToImage converts the canvas into an RGBA image using the same channel
// scaling as the PPM encoding.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			pixel := c.pixels[x+y*c.Width]
			img.Set(x, y, color.RGBA{
				R: uint8(scaleValue(pixel.R)),
				G: uint8(scaleValue(pixel.G)),
				B: uint8(scaleValue(pixel.B)),
				A: 255,
			})
		}
	}
	return img
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create PNG file: %v", err)
	}
	defer file.Close()
	if err := png.Encode(file, c.ToImage()); err != nil {
		return fmt.Errorf("failed to encode PNG file: %v", err)
	}
	return nil
}

// encodeTriplet renders a pixel as the "R G B" triplet of a PPM data line.
func encodeTriplet(c core.Color) string {
	return strconv.Itoa(scaleValue(c.R)) + " " +
		strconv.Itoa(scaleValue(c.G)) + " " +
		strconv.Itoa(scaleValue(c.B))
}

// scaleValue clamps a channel into [0, 1] and scales it to [0, 255],
// rounding to the nearest integer.
func scaleValue(value float64) int {
	if value <= 0.0 {
		return 0
	}
	if value > 1.0 {
		return maxColorValue
	}
	return int(math.Round(value * maxColorValue))
}

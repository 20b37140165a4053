package renderer

import (
	"math"

	"github.com/agourlay/ray-tracer/pkg/canvas"
	"github.com/agourlay/ray-tracer/pkg/core"
	"github.com/agourlay/ray-tracer/pkg/world"
)

// Camera maps canvas pixels to rays in the world. It is configured once and
// then only read: the view transform and its inverse are cached together.
type Camera struct {
	hsize            int
	vsize            int
	fieldOfView      float64
	transform        core.Matrix
	transformInverse core.Matrix
	pixelSize        float64
	halfWidth        float64
	halfHeight       float64
}

// NewCamera creates a camera for a canvas of hsize by vsize pixels with the
// given field of view in radians. The canvas sits one unit in front of the
// camera; the field of view spans its larger dimension, so pixels stay
// square whatever the aspect ratio.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	halfView := math.Tan(fieldOfView / 2.0)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1.0 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		hsize:            hsize,
		vsize:            vsize,
		fieldOfView:      fieldOfView,
		transform:        core.Identity(),
		transformInverse: core.Identity(),
		pixelSize:        (halfWidth * 2.0) / float64(hsize),
		halfWidth:        halfWidth,
		halfHeight:       halfHeight,
	}
}

// SetTransform replaces the camera's view transform and returns the camera
// for chaining. The cached inverse is rebuilt at the same time.
func (c *Camera) SetTransform(transform core.Matrix) *Camera {
	c.transform = transform
	c.transformInverse = transform.Inverse()
	return c
}

// RayForPixel returns the world-space ray through the center of the given
// pixel. The canvas lives at z=-1 in camera space and the camera looks down
// -z, so +x on the canvas is to the camera's left.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	// offset from the canvas edge to the pixel's center
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.transformInverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1.0))
	origin := c.transformInverse.MultiplyTuple(core.PointZero())
	direction := pixel.Subtract(origin).Normalize()
	return core.NewRay(origin, direction)
}

// Render traces one ray per pixel through the world and collects the colors
// on a fresh canvas. Pixels are computed independently in raster order.
func (c *Camera) Render(w *world.World) *canvas.Canvas {
	image := canvas.New(c.hsize, c.vsize)
	for y := 0; y < c.vsize; y++ {
		for x := 0; x < c.hsize; x++ {
			ray := c.RayForPixel(x, y)
			color := w.ColorAt(ray)
			image.Write(x, y, color)
		}
	}
	return image
}

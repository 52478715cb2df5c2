package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas is the offscreen image the particle field draws into. It is
// composited onto the screen in Draw.
type canvas struct {
	img           *ebiten.Image
	width, height int
}

func newCanvas(width, height int) *canvas {
	c := &canvas{}
	c.resize(width, height)
	return c
}

// resize reallocates the image; ebiten images cannot be empty, so the
// backing image is at least 1x1 while Size reports what was asked for.
func (c *canvas) resize(width, height int) {
	if c.img != nil && width == c.width && height == c.height {
		return
	}
	if c.img != nil {
		c.img.Deallocate()
	}
	c.width, c.height = width, height
	c.img = ebiten.NewImage(max(width, 1), max(height, 1))
}

func (c *canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *canvas) Clear() {
	c.img.Clear()
}

func (c *canvas) FillCircle(x, y, radius float64, clr color.Color) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(radius), clr, true)
}

func (c *canvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	vector.StrokeLine(c.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), clr, true)
}

// Package console shows a few lines of text on a small monochrome display.
package console

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LineHeight is the distance in pixels between the tops of two lines. A
// 128x64 OLED fits four lines.
const LineHeight = 16

// Displayer is a monochrome display with a frame buffer. It is implemented by
// board.Displayer.
type Displayer interface {
	Size() (width, height int16)
	SetPixel(x, y int16, c color.RGBA)
	ClearBuffer()
	Display() error
}

// Console draws lines of text with the 7x13 basic font.
type Console struct {
	display Displayer
	face    font.Face
	canvas  *canvas
}

// New returns a console that draws to the given display.
func New(d Displayer) *Console {
	width, height := d.Size()
	return &Console{
		display: d,
		face:    basicfont.Face7x13,
		canvas: &canvas{
			display: d,
			width:   int(width),
			height:  int(height),
			lit:     make([]bool, int(width)*int(height)),
		},
	}
}

// Print replaces the contents of the display with the given lines. Line i
// starts at y = 16*i. Text that doesn't fit is cut off.
func (c *Console) Print(lines ...string) error {
	c.display.ClearBuffer()
	c.canvas.clear()
	ascent := c.face.Metrics().Ascent
	drawer := font.Drawer{
		Dst:  c.canvas,
		Src:  image.White,
		Face: c.face,
	}
	for i, line := range lines {
		drawer.Dot = fixed.Point26_6{
			X: 0,
			Y: fixed.I(i*LineHeight) + ascent,
		}
		drawer.DrawString(line)
	}
	return c.display.Display()
}

var (
	on  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	off = color.RGBA{A: 255}
)

// Adapter from draw.Image to the display buffer. The display buffer can't be
// read back, so a copy of it is kept to let the font drawer blend glyphs.
type canvas struct {
	display Displayer
	width   int
	height  int
	lit     []bool
}

func (c *canvas) clear() {
	for i := range c.lit {
		c.lit[i] = false
	}
}

func (c *canvas) ColorModel() color.Model {
	return color.RGBAModel
}

func (c *canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

func (c *canvas) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(c.Bounds())) || !c.lit[y*c.width+x] {
		return off
	}
	return on
}

func (c *canvas) Set(x, y int, col color.Color) {
	if !(image.Point{x, y}.In(c.Bounds())) {
		return
	}
	r, g, b, _ := col.RGBA()
	lit := r+g+b > 3*0x7fff
	c.lit[y*c.width+x] = lit
	if lit {
		c.display.SetPixel(int16(x), int16(y), on)
	} else {
		c.display.SetPixel(int16(x), int16(y), color.RGBA{})
	}
}

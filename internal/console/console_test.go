package console

import (
	"errors"
	"image/color"
	"testing"
)

type fakeDisplay struct {
	width, height int
	pixels        []bool
	clears        int
	flushes       int
	err           error
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{width: 128, height: 64, pixels: make([]bool, 128*64)}
}

func (d *fakeDisplay) Size() (int16, int16) {
	return int16(d.width), int16(d.height)
}

func (d *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int(x) >= d.width || int(y) >= d.height {
		return
	}
	d.pixels[int(y)*d.width+int(x)] = c.R != 0 || c.G != 0 || c.B != 0
}

func (d *fakeDisplay) ClearBuffer() {
	d.clears++
	for i := range d.pixels {
		d.pixels[i] = false
	}
}

func (d *fakeDisplay) Display() error {
	d.flushes++
	return d.err
}

// Count lit pixels in the rows [top, bottom).
func (d *fakeDisplay) litRows(top, bottom int) int {
	n := 0
	for y := top; y < bottom; y++ {
		for x := 0; x < d.width; x++ {
			if d.pixels[y*d.width+x] {
				n++
			}
		}
	}
	return n
}

func TestPrintLines(t *testing.T) {
	d := newFakeDisplay()
	c := New(d)
	if err := c.Print("Channel 0: 1234", "", "Channel 2: 99"); err != nil {
		t.Fatal(err)
	}
	if d.clears != 1 || d.flushes != 1 {
		t.Errorf("expected one clear and one flush, got %d and %d", d.clears, d.flushes)
	}
	if d.litRows(0, 16) == 0 {
		t.Error("first line was not drawn")
	}
	if n := d.litRows(16, 32); n != 0 {
		t.Errorf("empty second line has %d lit pixels", n)
	}
	if d.litRows(32, 48) == 0 {
		t.Error("third line was not drawn")
	}
	if n := d.litRows(48, 64); n != 0 {
		t.Errorf("no fourth line was printed, but it has %d lit pixels", n)
	}
}

func TestPrintReplaces(t *testing.T) {
	d := newFakeDisplay()
	c := New(d)
	c.Print("first")
	c.Print("", "second")
	if n := d.litRows(0, 16); n != 0 {
		t.Errorf("old text was not cleared: %d lit pixels", n)
	}
	if d.litRows(16, 32) == 0 {
		t.Error("second line was not drawn")
	}
}

func TestPrintClips(t *testing.T) {
	d := newFakeDisplay()
	c := New(d)
	// Much wider and taller than the display: must not panic.
	long := "0123456789012345678901234567890123456789"
	if err := c.Print(long, long, long, long, long, long); err != nil {
		t.Fatal(err)
	}
}

func TestPrintDisplayError(t *testing.T) {
	d := newFakeDisplay()
	d.err = errors.New("i2c: nack")
	if err := New(d).Print("x"); err != d.err {
		t.Errorf("expected display error, got %v", err)
	}
}

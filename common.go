package board

import (
	"image/color"
	"sync"
	"time"

	"periph.io/x/conn/v3/physic"
)

// Settings for the simulator. These can be modified at any time, but it is
// recommended to modify them before configuring any of the board peripherals.
//
// The simulator runs the examples on a Linux host (a Raspberry Pi, for
// example) with the sensors attached to its I2C and SPI headers. Only the
// display, status LED and addressable LEDs are simulated in a window.
var Simulator = struct {
	WindowTitle string

	// Width and height of the simulated OLED in pixels (matching Size()).
	WindowWidth  int
	WindowHeight int

	// Every OLED pixel is drawn as a square of this many window pixels.
	WindowScale int

	// Time it takes to send a single pixel to the display. Zero means no
	// delay. Setting it to something like 40µs simulates a slow I2C bus.
	WindowDrawSpeed time.Duration

	// Number of simulated addressable LEDs. Zero means there are none.
	AddressableLEDs int

	// Names of the host I2C bus and SPI port, as understood by periph.io. An
	// empty string selects the first one that is available.
	I2CBus  string
	SPIPort string
}{
	WindowTitle:  "Simulator",
	WindowWidth:  128,
	WindowHeight: 64,
	WindowScale:  4,
}

// I2CConfig is the configuration for the shared I2C bus.
type I2CConfig struct {
	// Bus frequency in Hz. Zero means the board default (usually 100kHz).
	Frequency uint32
}

// SPIConfig is the configuration for the SPI bus.
type SPIConfig struct {
	// Bus frequency in Hz. Zero means the board default.
	Frequency uint32

	// SPI mode 0-3 (clock polarity and phase).
	Mode uint8
}

// The display interface shared by all supported displays. The display is a
// small monochrome OLED on all boards: any pixel with a non-zero color is lit.
type Displayer interface {
	// The display size in pixels.
	Size() (width, height int16)

	// Set a single pixel in the display buffer. Nothing changes on screen
	// until Display is called.
	SetPixel(x, y int16, c color.RGBA)

	// Clear the display buffer (but not the screen).
	ClearBuffer()

	// Send the display buffer to the screen.
	Display() error
}

// I2CBus is an I2C bus that can be shared between all the drivers of an
// example. Every transaction takes a lock, so that drivers used from different
// goroutines can't interleave their transfers.
//
// It implements both the tinygo.org/x/drivers I2C interface and the
// periph.io/x/conn/v3/i2c Bus interface, so that drivers from both projects can
// sit on the same physical bus.
type I2CBus struct {
	lock     sync.Mutex
	name     string
	tx       func(addr uint16, w, r []byte) error
	setSpeed func(f physic.Frequency) error
}

// NewI2CBus wraps the given transfer function in an I2CBus. It is normally not
// necessary to call this directly: use board.I2C.Configure instead.
func NewI2CBus(name string, tx func(addr uint16, w, r []byte) error) *I2CBus {
	return &I2CBus{name: name, tx: tx}
}

// Tx does a single I2C transaction: write w, then read into r.
func (b *I2CBus) Tx(addr uint16, w, r []byte) error {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.tx(addr, w, r)
}

// ReadRegister reads len(buf) bytes starting at register reg.
func (b *I2CBus) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	return b.Tx(uint16(addr), []byte{reg}, buf)
}

// WriteRegister writes buf starting at register reg.
func (b *I2CBus) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	w := make([]byte, len(buf)+1)
	w[0] = reg
	copy(w[1:], buf)
	return b.Tx(uint16(addr), w, nil)
}

// SetSpeed changes the bus frequency, if the underlying bus supports it.
// Buses that don't support changing the speed at runtime silently keep their
// current speed.
func (b *I2CBus) SetSpeed(f physic.Frequency) error {
	if b.setSpeed == nil {
		return nil
	}
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.setSpeed(f)
}

func (b *I2CBus) String() string {
	return b.name
}

// SPIBus is an SPI bus with a single chip select line. Every Tx call is a
// complete transaction: the chip select is asserted before the transfer and
// released afterwards.
type SPIBus struct {
	lock sync.Mutex
	tx   func(w, r []byte) error

	// Set the chip select line. Active (true) means the device is selected,
	// which is a low level on the pin. May be nil if the bus handles chip
	// select itself (like Linux spidev).
	selectChip func(active bool)
}

// NewSPIBus wraps the given transfer function in an SPIBus. The selectChip
// function may be nil. It is normally not necessary to call this directly: use
// board.SPI.Configure instead.
func NewSPIBus(tx func(w, r []byte) error, selectChip func(active bool)) *SPIBus {
	return &SPIBus{tx: tx, selectChip: selectChip}
}

// Tx writes w and reads into r in a single transaction. Either may be nil.
func (b *SPIBus) Tx(w, r []byte) error {
	b.lock.Lock()
	defer b.lock.Unlock()
	if b.selectChip != nil {
		b.selectChip(true)
		defer b.selectChip(false)
	}
	return b.tx(w, r)
}

// Transfer sends a single byte as its own transaction and returns the byte
// that was read at the same time.
func (b *SPIBus) Transfer(w byte) (byte, error) {
	var buf [1]byte
	err := b.Tx([]byte{w}, buf[:])
	return buf[0], err
}

// StatusLED is the status LED found on every supported board.
type StatusLED interface {
	On()
	Off()
}

// Blink turns the LED on for the given time, and then off for the given time.
// The off time may be zero, in which case Blink returns right after turning
// the LED off.
func Blink(led StatusLED, on, off time.Duration) {
	led.On()
	time.Sleep(on)
	led.Off()
	if off > 0 {
		time.Sleep(off)
	}
}

// Fatal prints the error and stops the program. On a real board it never
// returns: it blinks the status LED rapidly so that the failure is visible
// without a serial console.
func Fatal(what string, err error) {
	println("error: " + what + ": " + err.Error())
	halt()
}

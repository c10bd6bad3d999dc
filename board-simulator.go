//go:build !baremetal

package board

// The simulator runs the examples on a Linux host without flashing anything.
// The sensors are real: they are accessed over the I2C and SPI buses of the
// host through periph.io. The display and the LEDs are simulated in a window.
// This avoids potentially long edit-flash-test cycles.

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/aykevl/tinygl/pixel"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

const (
	// The board name, as passed to TinyGo in the "-target" flag.
	// This is the special name "simulator" for the simulator.
	Name = "simulator"
)

// List of all devices.
//
// Support varies by board, but all boards have the following peripherals
// defined.
var (
	I2C             = i2cConfig{}
	SPI             = spiConfig{}
	LED             = statusLED{}
	Display         = mainDisplay{}
	AddressableLEDs = &simulatedLEDs{}
)

var (
	hostInit    sync.Once
	hostInitErr error
)

// Load the periph.io host drivers, once.
func initHost() error {
	hostInit.Do(func() {
		_, hostInitErr = host.Init()
	})
	return hostInitErr
}

type i2cConfig struct{}

// Configure opens the host I2C bus named in Simulator.I2CBus.
func (c i2cConfig) Configure(cfg I2CConfig) (*I2CBus, error) {
	if err := initHost(); err != nil {
		return nil, err
	}
	bus, err := i2creg.Open(Simulator.I2CBus)
	if err != nil {
		return nil, err
	}
	if cfg.Frequency != 0 {
		// Most kernel I2C drivers fix the speed in the device tree, so this
		// usually fails. That's fine: the bus keeps running at its own speed.
		bus.SetSpeed(physic.Frequency(cfg.Frequency) * physic.Hertz)
	}
	return &I2CBus{
		name:     bus.String(),
		tx:       bus.Tx,
		setSpeed: bus.SetSpeed,
	}, nil
}

type spiConfig struct{}

// Configure opens the host SPI port named in Simulator.SPIPort. The kernel
// drives the chip select line.
func (c spiConfig) Configure(cfg SPIConfig) (*SPIBus, error) {
	if err := initHost(); err != nil {
		return nil, err
	}
	port, err := spireg.Open(Simulator.SPIPort)
	if err != nil {
		return nil, err
	}
	frequency := physic.Frequency(cfg.Frequency) * physic.Hertz
	if frequency == 0 {
		frequency = physic.MegaHertz
	}
	conn, err := port.Connect(frequency, spi.Mode(cfg.Mode), 8)
	if err != nil {
		port.Close()
		return nil, err
	}
	return NewSPIBus(conn.Tx, nil), nil
}

type statusLED struct{}

// Configure shows the status LED in the simulator window.
func (l statusLED) Configure() {
	startWindow()
	l.Off()
}

func (l statusLED) On() {
	windowSendCommand("status-led 1", nil)
}

func (l statusLED) Off() {
	windowSendCommand("status-led 0", nil)
}

type mainDisplay struct{}

type fyneScreen struct {
	width  int
	height int
	buffer []pixel.RGB888
}

var screen = &fyneScreen{}

// Configure returns a new display ready to draw on. The bus is not used: the
// display only exists in the simulator window.
func (d mainDisplay) Configure(bus *I2CBus) (Displayer, error) {
	startWindow()
	screen.width = Simulator.WindowWidth
	screen.height = Simulator.WindowHeight
	screen.buffer = make([]pixel.RGB888, screen.width*screen.height)
	windowSendCommand(fmt.Sprintf("display %d %d %d", screen.width, screen.height, Simulator.WindowScale), nil)
	return screen, nil
}

// Color of a lit OLED pixel. Many of the cheap modules are white, some are
// blue or yellow.
var litPixel = pixel.RGB888{R: 220, G: 240, B: 255}

func (s *fyneScreen) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int(x) >= s.width || int(y) >= s.height {
		return
	}
	var p pixel.RGB888
	if c.R != 0 || c.G != 0 || c.B != 0 {
		p = litPixel
	}
	s.buffer[int(y)*s.width+int(x)] = p
}

func (s *fyneScreen) ClearBuffer() {
	for i := range s.buffer {
		s.buffer[i] = pixel.RGB888{}
	}
}

// Display sends the buffer to the window, one line at a time.
func (s *fyneScreen) Display() error {
	if s.buffer == nil {
		return errors.New("board: display not configured")
	}
	drawStart := time.Now()
	for y := 0; y < s.height; y++ {
		// Delay drawing a bit, to simulate a slow I2C bus.
		if Simulator.WindowDrawSpeed != 0 {
			expected := drawStart.Add(Simulator.WindowDrawSpeed * time.Duration(y*s.width))
			if delay := time.Until(expected); delay > 0 {
				time.Sleep(delay)
			}
		}
		line := s.buffer[y*s.width : (y+1)*s.width]
		windowSendCommand(fmt.Sprintf("draw %d %d %d", 0, y, s.width), pixelsToBytes(line))
	}
	return nil
}

func (s *fyneScreen) Size() (width, height int16) {
	return int16(s.width), int16(s.height)
}

type simulatedLEDs struct {
	Data []pixel.RGB888
}

// Initialize the addressable LEDs. This must be called once before writing data
// to the Data slice.
//
// The way to determine whether there are addressable LEDs on a given board, is
// to configure them and then check the length of board.AddressableLEDs.Data.
func (l *simulatedLEDs) Configure() {
	if Simulator.AddressableLEDs == 0 {
		return
	}
	startWindow()
	l.Data = make([]pixel.RGB888, Simulator.AddressableLEDs)
	l.Update()
}

// Update the LEDs with the color data in the Data field.
//
// Data[0] typically refers to the last color in the array, not the first, due
// to the way these addressable LEDs are daisy-chained.
func (l *simulatedLEDs) Update() {
	if len(l.Data) == 0 {
		return
	}
	cmd := fmt.Sprintf("addressable-leds %d", len(l.Data))
	windowSendCommand(cmd, pixelsToBytes(l.Data))
}

// Convert a slice of pixels to the raw RGB bytes sent to the window process.
func pixelsToBytes(pixels []pixel.RGB888) []byte {
	buf := make([]byte, len(pixels)*3)
	for i, p := range pixels {
		buf[i*3+0] = p.R
		buf[i*3+1] = p.G
		buf[i*3+2] = p.B
	}
	return buf
}

// Exit after a fatal error.
func halt() {
	os.Exit(1)
}

var (
	windowStart  sync.Once
	windowLock   sync.Mutex
	windowStdin  io.WriteCloser
	windowStdout io.ReadCloser
)

// Ensure the window is running in a separate process, starting it if necessary.
func startWindow() {
	windowStart.Do(func() {
		windowRunning := make(chan struct{})

		// Start the separate process that manages the window.
		go func() {
			cmd := exec.Command(os.Args[0], runWindowCommand)
			cmd.Stderr = os.Stderr
			windowStdin, _ = cmd.StdinPipe()
			windowStdout, _ = cmd.StdoutPipe()
			err := cmd.Start()
			if err != nil {
				fmt.Fprintln(os.Stderr, "could not start window process:", err)
				os.Exit(1)
			}
			close(windowRunning)
			err = cmd.Wait()
			if err != nil {
				if exitErr, ok := err.(*exec.ExitError); ok {
					os.Exit(exitErr.ExitCode())
				}
				os.Exit(1)
			}
			// The window was closed, so exit.
			os.Exit(0)
		}()
		<-windowRunning

		// Forward anything the window process prints.
		go windowForwardOutput()

		// Do some initialization.
		windowSendCommand("title "+Simulator.WindowTitle, nil)
	})
}

// Send a command to the separate process that manages the window.
// The command is a single line (without newline). The data part is optional
// binary data that can be sent with the command. The size of this binary data
// must be part of the textual command.
func windowSendCommand(command string, data []byte) {
	windowLock.Lock()
	defer windowLock.Unlock()

	windowStdin.Write([]byte(command + "\n"))
	windowStdin.Write(data)
}

// Goroutine that copies diagnostic output of the window process to stderr.
// The window doesn't send any events back: the examples have no inputs.
func windowForwardOutput() {
	r := bufio.NewReader(windowStdout)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			fmt.Fprint(os.Stderr, "window: ", line)
		}
		if err != nil {
			if err != io.EOF {
				fmt.Fprintln(os.Stderr, "failed to read output of window process:", err)
			}
			return
		}
	}
}

package main

import (
	"time"

	"github.com/aykevl/tinygl/pixel"
	"github.com/driver-examples/board"
	"periph.io/x/conn/v3/i2c"
	"tinygo.org/x/drivers"
)

func main() {
	// Verify board name constant.
	var _ string = board.Name

	// Assert that the buses implement the driver interfaces of both driver
	// projects.
	bus, _ := board.I2C.Configure(board.I2CConfig{Frequency: 400e3})
	var _ drivers.I2C = bus
	var _ i2c.Bus = bus
	spi, _ := board.SPI.Configure(board.SPIConfig{Frequency: 1e6, Mode: 2})
	var _ drivers.SPI = spi

	// Assert that board.Display returns a board.Displayer.
	var display board.Displayer
	display, _ = board.Display.Configure(bus)
	_ = display

	// Assert that board.LED uses the usual interface.
	var _ interface {
		Configure()
		On()
		Off()
	} = board.LED
	board.Blink(board.LED, time.Millisecond, 0)

	// Assert that board.AddressableLEDs uses the usual interface.
	var _ interface {
		Configure()
		Update()
	} = board.AddressableLEDs
	var _ []pixel.RGB888 = board.AddressableLEDs.Data

	var _ func(string, error) = board.Fatal
}

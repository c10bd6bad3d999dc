// Package mcp4x provides a driver for the MCP41xxx and MCP42xxx digital
// potentiometers.
//
// Datasheet: https://ww1.microchip.com/downloads/en/DeviceDoc/11195c.pdf
//
// Every command is two bytes (command, data) in a single transaction. Use SPI
// mode 0.
package mcp4x

import (
	"errors"

	"tinygo.org/x/drivers"
)

var ErrInvalidChannel = errors.New("mcp4x: invalid channel")

// Channel selects one or both potentiometers.
type Channel uint8

const (
	Ch0 Channel = iota
	Ch1
	All
)

const (
	cmdWrite    = 0b01 << 4
	cmdShutdown = 0b10 << 4
)

// Device wraps an SPI connection to an MCP41x or MCP42x device.
type Device struct {
	bus      drivers.SPI
	channels int
}

// NewMCP41x creates a new connection to a single potentiometer part.
func NewMCP41x(bus drivers.SPI) Device {
	return Device{bus: bus, channels: 1}
}

// NewMCP42x creates a new connection to a dual potentiometer part.
func NewMCP42x(bus drivers.SPI) Device {
	return Device{bus: bus, channels: 2}
}

// SetPosition moves the wiper of the given channel. 0 is terminal B, 255 is
// (almost) terminal A.
func (d *Device) SetPosition(ch Channel, position uint8) error {
	return d.command(cmdWrite, ch, position)
}

// Shutdown disconnects terminal A and shorts the wiper to terminal B. The next
// SetPosition on the channel ends the shutdown.
func (d *Device) Shutdown(ch Channel) error {
	return d.command(cmdShutdown, ch, 0)
}

func (d *Device) command(cmd uint8, ch Channel, data uint8) error {
	var sel uint8
	switch {
	case ch == Ch0:
		sel = 0b01
	case ch == Ch1 && d.channels == 2:
		sel = 0b10
	case ch == All:
		sel = 0b11
	default:
		return ErrInvalidChannel
	}
	return d.bus.Tx([]byte{cmd | sel, data}, nil)
}

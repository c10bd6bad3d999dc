// Package veml6040 provides a driver for the VEML6040 RGBW color sensor.
//
// Datasheet: https://www.vishay.com/docs/84276/veml6040.pdf
package veml6040

import (
	"tinygo.org/x/drivers"
)

// IntegrationTime of a measurement. Longer times are more sensitive.
type IntegrationTime uint8

const (
	IT40ms IntegrationTime = iota
	IT80ms
	IT160ms
	IT320ms
	IT640ms
	IT1280ms
)

// Measurement holds the four channels of a measurement.
type Measurement struct {
	Red   uint16
	Green uint16
	Blue  uint16
	White uint16
}

// Device wraps an I2C connection to a VEML6040 device.
type Device struct {
	bus     drivers.I2C
	Address uint16
	config  uint8
}

// New creates a new VEML6040 connection. The I2C bus must already be
// configured. The sensor starts in shutdown mode after power on; call Enable.
func New(bus drivers.I2C) Device {
	return Device{
		bus:     bus,
		Address: Address,
		config:  confSD,
	}
}

// Enable starts measuring, continuously.
func (d *Device) Enable() error {
	d.config &^= confSD
	return d.writeConfig()
}

// Disable puts the sensor in shutdown mode.
func (d *Device) Disable() error {
	d.config |= confSD
	return d.writeConfig()
}

// SetIntegrationTime sets the integration time of the measurements.
func (d *Device) SetIntegrationTime(it IntegrationTime) error {
	d.config = d.config&^confIT | uint8(it)<<4&confIT
	return d.writeConfig()
}

// ReadAllChannels returns the last measurement of every channel.
func (d *Device) ReadAllChannels() (m Measurement, err error) {
	if m.Red, err = d.read(RegRed); err != nil {
		return
	}
	if m.Green, err = d.read(RegGreen); err != nil {
		return
	}
	if m.Blue, err = d.read(RegBlue); err != nil {
		return
	}
	m.White, err = d.read(RegWhite)
	return
}

func (d *Device) read(reg uint8) (uint16, error) {
	data := make([]byte, 2)
	err := d.bus.ReadRegister(uint8(d.Address), reg, data)
	if err != nil {
		return 0, err
	}
	return uint16(data[1])<<8 | uint16(data[0]), nil
}

func (d *Device) writeConfig() error {
	return d.bus.WriteRegister(uint8(d.Address), RegConfig, []byte{d.config, 0})
}

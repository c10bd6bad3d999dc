// Package tcs3472 provides a driver for the TCS3472 color light-to-digital
// converter.
//
// Datasheet: https://cdn-shop.adafruit.com/datasheets/TCS34725.pdf
package tcs3472

import (
	"encoding/binary"

	"tinygo.org/x/drivers"
)

// Gain of the RGBC measurement.
type Gain uint8

const (
	Gain1x Gain = iota
	Gain4x
	Gain16x
	Gain60x
)

// Measurement holds the four channels of a single RGBC measurement.
type Measurement struct {
	Clear uint16
	Red   uint16
	Green uint16
	Blue  uint16
}

// Device wraps an I2C connection to a TCS3472 device.
type Device struct {
	bus     drivers.I2C
	Address uint16
	enable  uint8
}

// New creates a new TCS3472 connection. The I2C bus must already be
// configured.
func New(bus drivers.I2C) Device {
	return Device{
		bus:     bus,
		Address: Address,
	}
}

// Enable powers on the internal oscillator. Measurements need EnableRGBC as
// well.
func (d *Device) Enable() error {
	d.enable |= enablePON
	return d.write(RegEnable, d.enable)
}

// Disable puts the device to sleep.
func (d *Device) Disable() error {
	d.enable &^= enablePON | enableAEN
	return d.write(RegEnable, d.enable)
}

// EnableRGBC starts the color measurements.
func (d *Device) EnableRGBC() error {
	d.enable |= enableAEN
	return d.write(RegEnable, d.enable)
}

// SetGain sets the gain of the RGBC measurement.
func (d *Device) SetGain(gain Gain) error {
	return d.write(RegControl, uint8(gain)&0x03)
}

// SetIntegrationCycles sets the integration time as a number of 2.4ms cycles
// (1-256).
func (d *Device) SetIntegrationCycles(cycles uint16) error {
	if cycles < 1 {
		cycles = 1
	} else if cycles > 256 {
		cycles = 256
	}
	return d.write(RegATime, uint8(256-cycles))
}

// IsRGBCStatusValid returns whether an RGBC measurement has completed since
// EnableRGBC.
func (d *Device) IsRGBCStatusValid() (bool, error) {
	data := []byte{0}
	err := d.bus.ReadRegister(uint8(d.Address), cmdBit|RegStatus, data)
	if err != nil {
		return false, err
	}
	return data[0]&statusAVID != 0, nil
}

// ReadClear returns the clear channel of the last measurement.
func (d *Device) ReadClear() (uint16, error) {
	return d.readChannel(RegCData)
}

// ReadRed returns the red channel of the last measurement.
func (d *Device) ReadRed() (uint16, error) {
	return d.readChannel(RegRData)
}

// ReadGreen returns the green channel of the last measurement.
func (d *Device) ReadGreen() (uint16, error) {
	return d.readChannel(RegGData)
}

// ReadBlue returns the blue channel of the last measurement.
func (d *Device) ReadBlue() (uint16, error) {
	return d.readChannel(RegBData)
}

// ReadAllChannels reads all four channels in a single transaction, so that
// they belong to the same measurement.
func (d *Device) ReadAllChannels() (Measurement, error) {
	data := make([]byte, 8)
	err := d.bus.ReadRegister(uint8(d.Address), cmdBit|cmdAutoIncrement|RegCData, data)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{
		Clear: binary.LittleEndian.Uint16(data[0:]),
		Red:   binary.LittleEndian.Uint16(data[2:]),
		Green: binary.LittleEndian.Uint16(data[4:]),
		Blue:  binary.LittleEndian.Uint16(data[6:]),
	}, nil
}

// ReadID returns the contents of the ID register: 0x44 for the TCS34721 and
// TCS34725, 0x4D for the TCS34723 and TCS34727.
func (d *Device) ReadID() (uint8, error) {
	data := []byte{0}
	err := d.bus.ReadRegister(uint8(d.Address), cmdBit|RegID, data)
	return data[0], err
}

func (d *Device) readChannel(reg uint8) (uint16, error) {
	data := make([]byte, 2)
	err := d.bus.ReadRegister(uint8(d.Address), cmdBit|cmdAutoIncrement|reg, data)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(data), nil
}

func (d *Device) write(reg, value uint8) error {
	return d.bus.WriteRegister(uint8(d.Address), cmdBit|reg, []byte{value})
}

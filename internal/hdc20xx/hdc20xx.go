// Package hdc20xx provides a driver for the HDC2080 and HDC2010 humidity and
// temperature sensors.
//
// Datasheet: https://www.ti.com/lit/ds/symlink/hdc2080.pdf
package hdc20xx

import (
	"encoding/binary"
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

var ErrTimeout = errors.New("hdc20xx: timeout waiting for measurement")

// Number of data-ready polls before Read gives up. A measurement at the
// default 14 bit resolution takes about 1.3ms.
const maxPolls = 50

// Measurement is a single temperature and humidity measurement.
type Measurement struct {
	Temperature float32 // °C
	Humidity    float32 // %RH
}

// Device wraps an I2C connection to an HDC20xx device.
type Device struct {
	bus     drivers.I2C
	Address uint16

	// Time between two data-ready polls.
	PollInterval time.Duration
}

// New creates a new HDC20xx connection. The I2C bus must already be
// configured.
func New(bus drivers.I2C) Device {
	return Device{
		bus:          bus,
		Address:      Address,
		PollInterval: time.Millisecond,
	}
}

// Read triggers a temperature and humidity measurement and waits for it to
// complete.
func (d *Device) Read() (Measurement, error) {
	err := d.bus.WriteRegister(uint8(d.Address), RegMeasConfig, []byte{measTrigger})
	if err != nil {
		return Measurement{}, err
	}
	status := []byte{0}
	for i := 0; ; i++ {
		if i == maxPolls {
			return Measurement{}, ErrTimeout
		}
		time.Sleep(d.PollInterval)
		err := d.bus.ReadRegister(uint8(d.Address), RegStatus, status)
		if err != nil {
			return Measurement{}, err
		}
		if status[0]&statusDRDY != 0 {
			break
		}
	}
	data := make([]byte, 4)
	err = d.bus.ReadRegister(uint8(d.Address), RegTemperature, data)
	if err != nil {
		return Measurement{}, err
	}
	rawTemp := binary.LittleEndian.Uint16(data)
	rawHumidity := binary.LittleEndian.Uint16(data[RegHumidity-RegTemperature:])
	return Measurement{
		Temperature: float32(rawTemp)*165/65536 - 40,
		Humidity:    float32(rawHumidity) * 100 / 65536,
	}, nil
}

// SoftReset resets all registers to their defaults.
func (d *Device) SoftReset() error {
	return d.bus.WriteRegister(uint8(d.Address), RegResetConfig, []byte{resetSoftRes})
}

// DeviceID returns the manufacturer and device IDs. They are ManufacturerTI and
// DeviceHDC20xx for a genuine part.
func (d *Device) DeviceID() (manufacturer, device uint16, err error) {
	data := make([]byte, 4)
	err = d.bus.ReadRegister(uint8(d.Address), RegManufacturer, data)
	if err != nil {
		return 0, 0, err
	}
	manufacturer = binary.LittleEndian.Uint16(data)
	device = binary.LittleEndian.Uint16(data[RegDeviceID-RegManufacturer:])
	return manufacturer, device, nil
}

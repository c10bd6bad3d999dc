// Package mcp794xx provides a driver for the MCP7940N real time clock.
//
// Datasheet: https://ww1.microchip.com/downloads/en/DeviceDoc/20005010H.pdf
package mcp794xx

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// ErrInvalidYear is returned for times the clock can't store.
var ErrInvalidYear = errors.New("mcp794xx: year must be between 2000 and 2099")

// Device wraps an I2C connection to an MCP7940N device.
type Device struct {
	bus     drivers.I2C
	Address uint16
}

// NewMCP7940N creates a new MCP7940N connection. The I2C bus must already be
// configured.
func NewMCP7940N(bus drivers.I2C) Device {
	return Device{
		bus:     bus,
		Address: Address,
	}
}

// Enable starts the oscillator. The clock doesn't count without it.
func (d *Device) Enable() error {
	return d.updateRegister(RegSeconds, bitST, bitST)
}

// Disable stops the oscillator.
func (d *Device) Disable() error {
	return d.updateRegister(RegSeconds, bitST, 0)
}

// IsRunning returns whether the oscillator is actually running. This may lag
// behind Enable by a few cycles.
func (d *Device) IsRunning() (bool, error) {
	data := []byte{0}
	err := d.bus.ReadRegister(uint8(d.Address), RegWeekday, data)
	if err != nil {
		return false, err
	}
	return data[0]&bitOSCRUN != 0, nil
}

// SetTime sets the date and time, in 24 hour mode. The oscillator setting and
// the battery enable bit are kept. Only the date and time fields of dt are
// used, the location is ignored.
func (d *Device) SetTime(dt time.Time) error {
	year := dt.Year()
	if year < 2000 || year > 2099 {
		return ErrInvalidYear
	}
	current := make([]byte, 4)
	err := d.bus.ReadRegister(uint8(d.Address), RegSeconds, current)
	if err != nil {
		return err
	}
	data := []byte{
		current[RegSeconds]&bitST | toBCD(dt.Second()),
		toBCD(dt.Minute()),
		toBCD(dt.Hour()),
		current[RegWeekday]&bitVBATEN | (uint8(dt.Weekday()) + 1),
		toBCD(dt.Day()),
		toBCD(int(dt.Month())),
		toBCD(year - 2000),
	}
	return d.bus.WriteRegister(uint8(d.Address), RegSeconds, data)
}

// ReadTime returns the date and time, in UTC. Both 12 and 24 hour modes are
// understood.
func (d *Device) ReadTime() (time.Time, error) {
	data := make([]byte, 7)
	err := d.bus.ReadRegister(uint8(d.Address), RegSeconds, data)
	if err != nil {
		return time.Time{}, err
	}
	second := fromBCD(data[RegSeconds] & 0x7f)
	minute := fromBCD(data[RegMinutes] & 0x7f)
	hour := decodeHour(data[RegHours])
	day := fromBCD(data[RegDate] & 0x3f)
	month := time.Month(fromBCD(data[RegMonth] & 0x1f))
	year := 2000 + fromBCD(data[RegYear])
	return time.Date(year, month, day, hour, minute, second, 0, time.UTC), nil
}

func decodeHour(value uint8) int {
	if value&bit12Hour == 0 {
		return fromBCD(value & 0x3f)
	}
	hour := fromBCD(value & 0x1f)
	if hour == 12 {
		hour = 0
	}
	if value&bitPM != 0 {
		hour += 12
	}
	return hour
}

func (d *Device) updateRegister(reg, mask, value uint8) error {
	data := []byte{0}
	err := d.bus.ReadRegister(uint8(d.Address), reg, data)
	if err != nil {
		return err
	}
	data[0] = data[0]&^mask | value
	return d.bus.WriteRegister(uint8(d.Address), reg, data)
}

func toBCD(value int) uint8 {
	return uint8(value/10<<4 | value%10)
}

func fromBCD(value uint8) int {
	return int(value>>4)*10 + int(value&0x0f)
}

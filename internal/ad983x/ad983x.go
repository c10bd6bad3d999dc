// Package ad983x provides a driver for the AD9833/AD9837 waveform generators
// (direct digital synthesizers).
//
// Datasheet: https://www.analog.com/media/en/technical-documentation/data-sheets/AD9833.pdf
//
// The chip is write-only. Every 16 bit word is sent MSB first in its own
// transaction, as the chip latches a word on the rising edge of FSYNC. Use SPI
// mode 2.
package ad983x

import (
	"errors"

	"tinygo.org/x/drivers"
)

var ErrOutOfRange = errors.New("ad983x: frequency word out of range")

// FrequencyRegister is one of the two frequency registers. The output can be
// switched between them in a single write, which allows glitch free frequency
// changes.
type FrequencyRegister uint8

const (
	F0 FrequencyRegister = iota
	F1
)

// Opposite returns the other frequency register.
func (r FrequencyRegister) Opposite() FrequencyRegister {
	if r == F0 {
		return F1
	}
	return F0
}

// Waveform is the shape of the output signal.
type Waveform uint8

const (
	Sinusoidal Waveform = iota
	Triangle
	SquareMSB     // square wave at the output frequency
	SquareMSBDiv2 // square wave at half the output frequency
)

// Device wraps an SPI connection to an AD9833 device.
type Device struct {
	bus     drivers.SPI
	control uint16
}

// NewAD9833 creates a new AD9833 connection. The SPI bus must already be
// configured, and must assert FSYNC (chip select) for every transaction.
func NewAD9833(bus drivers.SPI) Device {
	return Device{bus: bus}
}

// Reset resets the internal registers. The output stays at mid-scale until
// Enable is called.
func (d *Device) Reset() error {
	d.control |= ctrlRESET
	return d.writeControl()
}

// Enable starts the output.
func (d *Device) Enable() error {
	d.control &^= ctrlRESET
	return d.writeControl()
}

// SetFrequency writes a 28 bit frequency word to a frequency register. It
// doesn't change which register is used for the output.
func (d *Device) SetFrequency(reg FrequencyRegister, word uint32) error {
	if word > MaxFrequencyWord {
		return ErrOutOfRange
	}
	if d.control&ctrlB28 == 0 {
		// Write the full register as two consecutive 14 bit words.
		d.control |= ctrlB28
		if err := d.writeControl(); err != nil {
			return err
		}
	}
	addr := uint16(addrFREQ0)
	if reg == F1 {
		addr = addrFREQ1
	}
	if err := d.write(addr | uint16(word&frequencyLSB)); err != nil {
		return err
	}
	return d.write(addr | uint16((word>>14)&frequencyLSB))
}

// SelectFrequency selects the frequency register used for the output.
func (d *Device) SelectFrequency(reg FrequencyRegister) error {
	if reg == F1 {
		d.control |= ctrlFSELECT
	} else {
		d.control &^= ctrlFSELECT
	}
	return d.writeControl()
}

// SetOutputWaveform changes the output waveform.
func (d *Device) SetOutputWaveform(w Waveform) error {
	d.control &^= ctrlOPBITEN | ctrlMODE | ctrlDIV2
	switch w {
	case Triangle:
		d.control |= ctrlMODE
	case SquareMSB:
		d.control |= ctrlOPBITEN | ctrlDIV2
	case SquareMSBDiv2:
		d.control |= ctrlOPBITEN
	}
	return d.writeControl()
}

func (d *Device) writeControl() error {
	return d.write(d.control)
}

func (d *Device) write(word uint16) error {
	return d.bus.Tx([]byte{byte(word >> 8), byte(word)}, nil)
}

// FrequencyWord returns the frequency register value for an output frequency
// in Hz, given the master clock frequency in Hz (usually 25MHz). A frequency of
// zero gives a word of zero, which stops the output.
func FrequencyWord(hz, mclk float64) uint32 {
	return uint32(hz * (1 << 28) / mclk)
}

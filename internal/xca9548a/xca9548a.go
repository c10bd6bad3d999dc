// Package xca9548a provides a driver for the TCA9548A and PCA9548A 8 channel
// I2C multiplexers (switches).
//
// Datasheet: https://www.ti.com/lit/ds/symlink/tca9548a.pdf
//
// Devices behind the multiplexer are used through a Port, which implements
// drivers.I2C. This allows several devices with the same address, like two
// VEML6040 color sensors, to be used from a single bus.
package xca9548a

import (
	"errors"
	"sync"

	"tinygo.org/x/drivers"
)

// Address is the default I2C address, with A0-A2 tied low. Up to 0x77.
const Address = 0x70

var ErrInvalidChannel = errors.New("xca9548a: invalid channel")

// Device wraps an I2C connection to a multiplexer.
type Device struct {
	lock     sync.Mutex
	bus      drivers.I2C
	address  uint16
	selected uint8
	valid    bool // whether selected matches the chip
}

// New creates a new multiplexer connection. The I2C bus must already be
// configured.
func New(bus drivers.I2C, address uint16) *Device {
	if address == 0 {
		address = Address
	}
	return &Device{bus: bus, address: address}
}

// Select connects the channels in the given bit mask to the bus and
// disconnects all the others. A mask of 0 disconnects everything.
func (d *Device) Select(mask uint8) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.selectLocked(mask)
}

// Selected reads back the current channel mask from the chip.
func (d *Device) Selected() (uint8, error) {
	d.lock.Lock()
	defer d.lock.Unlock()
	data := []byte{0}
	err := d.bus.Tx(d.address, nil, data)
	return data[0], err
}

func (d *Device) selectLocked(mask uint8) error {
	if d.valid && d.selected == mask {
		return nil
	}
	err := d.bus.Tx(d.address, []byte{mask}, nil)
	if err != nil {
		// Not known what the chip has now.
		d.valid = false
		return err
	}
	d.selected = mask
	d.valid = true
	return nil
}

// Port returns the bus behind channel n (0-7).
func (d *Device) Port(n int) (*Port, error) {
	if n < 0 || n > 7 {
		return nil, ErrInvalidChannel
	}
	return &Port{mux: d, mask: 1 << n}, nil
}

// Port is the I2C bus behind one channel of the multiplexer. Every
// transaction first makes sure the channel is the only one selected.
type Port struct {
	mux  *Device
	mask uint8
}

func (p *Port) Tx(addr uint16, w, r []byte) error {
	p.mux.lock.Lock()
	defer p.mux.lock.Unlock()
	if err := p.mux.selectLocked(p.mask); err != nil {
		return err
	}
	return p.mux.bus.Tx(addr, w, r)
}

func (p *Port) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	return p.Tx(uint16(addr), []byte{reg}, buf)
}

func (p *Port) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	w := make([]byte, len(buf)+1)
	w[0] = reg
	copy(w[1:], buf)
	return p.Tx(uint16(addr), w, nil)
}

package xca9548a

import (
	"errors"
	"testing"

	"tinygo.org/x/drivers/tester"
)

var errNoChannel = errors.New("no channel selected")

// A bus with a multiplexer at Address, and a separate bus behind each
// channel. Transactions to other addresses go to all selected channels.
type switchedBus struct {
	mask     uint8
	channels [8]*tester.I2CBus
	selects  int
	fail     error
}

func newSwitchedBus(t *testing.T) *switchedBus {
	b := &switchedBus{}
	for i := range b.channels {
		b.channels[i] = tester.NewI2CBus(t)
	}
	return b
}

// addSensor puts a register chip at addr behind channel ch.
func (b *switchedBus) addSensor(t *testing.T, ch int, addr uint8) *tester.I2CDevice8 {
	chip := tester.NewI2CDevice8(t, addr)
	b.channels[ch].AddDevice(chip)
	return chip
}

func (b *switchedBus) Tx(addr uint16, w, r []byte) error {
	if addr == Address {
		if b.fail != nil {
			return b.fail
		}
		if len(w) != 0 {
			b.mask = w[0]
			b.selects++
		}
		for i := range r {
			r[i] = b.mask
		}
		return nil
	}
	err := errNoChannel
	for i, ch := range b.channels {
		if b.mask&(1<<i) != 0 {
			err = ch.Tx(addr, w, r)
		}
	}
	return err
}

func (b *switchedBus) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	return b.Tx(uint16(addr), []byte{reg}, buf)
}

func (b *switchedBus) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	return b.Tx(uint16(addr), append([]byte{reg}, buf...), nil)
}

func TestPortsSelectChannel(t *testing.T) {
	bus := newSwitchedBus(t)
	sensor0 := bus.addSensor(t, 0, 0x10)
	sensor1 := bus.addSensor(t, 1, 0x10)
	sensor0.Registers[0x08] = 0xaa
	sensor1.Registers[0x08] = 0xbb

	mux := New(bus, 0)
	port0, err := mux.Port(0)
	if err != nil {
		t.Fatal(err)
	}
	port1, err := mux.Port(1)
	if err != nil {
		t.Fatal(err)
	}

	buf := []byte{0}
	for i := 0; i < 3; i++ {
		if err := port0.ReadRegister(0x10, 0x08, buf); err != nil || buf[0] != 0xaa {
			t.Errorf("port 0: expected 0xaa, got %#x (%v)", buf[0], err)
		}
		if err := port1.ReadRegister(0x10, 0x08, buf); err != nil || buf[0] != 0xbb {
			t.Errorf("port 1: expected 0xbb, got %#x (%v)", buf[0], err)
		}
	}
	if bus.selects != 6 {
		t.Errorf("expected 6 channel switches, got %d", bus.selects)
	}

	// Repeated use of the same port doesn't switch again.
	port1.WriteRegister(0x10, 0x00, []byte{0x01})
	port1.WriteRegister(0x10, 0x00, []byte{0x02})
	if bus.selects != 6 {
		t.Errorf("expected no extra channel switches, got %d", bus.selects)
	}
	if got := sensor1.Registers[0x00]; got != 0x02 {
		t.Errorf("expected write to reach sensor 1, got %#x", got)
	}
	if got := sensor0.Registers[0x00]; got != 0x00 {
		t.Errorf("write leaked to sensor 0: %#x", got)
	}
}

func TestSelect(t *testing.T) {
	bus := newSwitchedBus(t)
	mux := New(bus, Address)
	if err := mux.Select(0b1010_0000); err != nil {
		t.Fatal(err)
	}
	mask, err := mux.Selected()
	if err != nil || mask != 0b1010_0000 {
		t.Errorf("expected mask 0xa0, got %#x (%v)", mask, err)
	}
	mux.Select(0b1010_0000)
	if bus.selects != 1 {
		t.Errorf("expected a single select, got %d", bus.selects)
	}
}

func TestSelectErrorForgetsState(t *testing.T) {
	bus := newSwitchedBus(t)
	sensor := bus.addSensor(t, 2, 0x29)
	mux := New(bus, Address)
	port, _ := mux.Port(2)

	bus.fail = errors.New("nack")
	if err := port.WriteRegister(0x29, 0x00, []byte{0x01}); err != bus.fail {
		t.Errorf("expected select error, got %v", err)
	}
	if sensor.Registers[0x00] != 0 {
		t.Errorf("write went through without a selected channel")
	}
	bus.fail = nil
	if err := port.WriteRegister(0x29, 0x00, []byte{0x01}); err != nil {
		t.Fatal(err)
	}
	if bus.mask != 1<<2 {
		t.Errorf("expected channel 2 selected after retry, got %#x", bus.mask)
	}
	if sensor.Registers[0x00] != 0x01 {
		t.Errorf("expected write to reach the sensor after retry")
	}
}

func TestInvalidPort(t *testing.T) {
	mux := New(newSwitchedBus(t), Address)
	for _, n := range []int{-1, 8} {
		if _, err := mux.Port(n); err != ErrInvalidChannel {
			t.Errorf("Port(%d): expected ErrInvalidChannel, got %v", n, err)
		}
	}
}

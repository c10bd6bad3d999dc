package veml6040

import (
	"bytes"
	"errors"
	"testing"

	"tinygo.org/x/drivers/tester"
)

// wordBus serves the 16 bit channel registers from words. The configuration
// register is written to the byte registers of chip, at 0 and 1.
type wordBus struct {
	*tester.I2CBus
	chip  *tester.I2CDevice8
	words map[uint8]uint16
}

func newSensor(t *testing.T) (*wordBus, Device) {
	bus := &wordBus{
		I2CBus: tester.NewI2CBus(t),
		chip:   tester.NewI2CDevice8(t, Address),
		words:  make(map[uint8]uint16),
	}
	bus.AddDevice(bus.chip)
	return bus, New(bus)
}

func (b *wordBus) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	if b.chip.Err != nil {
		return b.chip.Err
	}
	if word, ok := b.words[reg]; ok && addr == Address && len(buf) == 2 {
		buf[0] = uint8(word)
		buf[1] = uint8(word >> 8)
		return nil
	}
	return b.I2CBus.ReadRegister(addr, reg, buf)
}

func TestConfig(t *testing.T) {
	bus, sensor := newSensor(t)
	for _, tc := range []struct {
		name   string
		do     func() error
		config []byte
	}{
		{"enable", sensor.Enable, []byte{0x00, 0x00}},
		{"integration", func() error { return sensor.SetIntegrationTime(IT320ms) }, []byte{0x30, 0x00}},
		{"disable", sensor.Disable, []byte{0x31, 0x00}},
		{"integration-max", func() error { return sensor.SetIntegrationTime(IT1280ms) }, []byte{0x51, 0x00}},
	} {
		if err := tc.do(); err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got := bus.chip.Registers[RegConfig : RegConfig+2]; !bytes.Equal(got, tc.config) {
			t.Errorf("%s: expected config %x, got %x", tc.name, tc.config, got)
		}
	}
}

func TestReadAllChannels(t *testing.T) {
	bus, sensor := newSensor(t)
	bus.words[RegRed] = 0x0201
	bus.words[RegGreen] = 0x0403
	bus.words[RegBlue] = 0xffff
	bus.words[RegWhite] = 0x1000

	m, err := sensor.ReadAllChannels()
	if err != nil {
		t.Fatal(err)
	}
	expected := Measurement{Red: 0x0201, Green: 0x0403, Blue: 0xffff, White: 0x1000}
	if m != expected {
		t.Errorf("expected %+v, got %+v", expected, m)
	}
}

func TestReadError(t *testing.T) {
	bus, sensor := newSensor(t)
	bus.chip.Err = errors.New("nack")
	if _, err := sensor.ReadAllChannels(); err != bus.chip.Err {
		t.Errorf("expected bus error, got %v", err)
	}
}

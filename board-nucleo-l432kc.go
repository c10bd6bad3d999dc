//go:build nucleol432kc

package board

// Wiring for the NUCLEO-L432KC (Arduino Nano style pin names in brackets):
//
//	PB6 SCL [D5], PB7 SDA [D4] (I2C1)
//	PA5 SCK [A4], PA6 SDI [A5], PA7 SDO [A6], PA4 CS [A3] (SPI1)
//	PB3 status LED [D13]

import (
	"machine"
)

const (
	Name = "nucleo-l432kc"
)

var (
	I2C             = i2cConfig{}
	SPI             = spiConfig{}
	LED             = statusLED{}
	Display         = mainDisplay{}
	AddressableLEDs = &dummyAddressableLEDs{}
)

type i2cConfig struct{}

func (c i2cConfig) Configure(cfg I2CConfig) (*I2CBus, error) {
	i2c := machine.I2C0
	err := i2c.Configure(machine.I2CConfig{
		Frequency: cfg.Frequency,
		SCL:       machine.PB6,
		SDA:       machine.PB7,
	})
	if err != nil {
		return nil, err
	}
	return NewI2CBus("I2C1", i2c.Tx), nil
}

type spiConfig struct{}

// The default SPI pins are used because D13 (the usual SCK pin on an Arduino
// header) is shared with the status LED.
func (c spiConfig) Configure(cfg SPIConfig) (*SPIBus, error) {
	cs := machine.PA4
	cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	cs.High()

	spi := machine.SPI0
	err := spi.Configure(machine.SPIConfig{
		Frequency: cfg.Frequency,
		SCK:       machine.PA5,
		SDO:       machine.PA7,
		SDI:       machine.PA6,
		Mode:      cfg.Mode,
	})
	if err != nil {
		return nil, err
	}
	return NewSPIBus(spi.Tx, func(active bool) {
		cs.Set(!active)
	}), nil
}

type statusLED struct{}

func (l statusLED) Configure() {
	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	l.Off()
}

func (l statusLED) On() {
	machine.LED.High()
}

func (l statusLED) Off() {
	machine.LED.Low()
}

type mainDisplay struct{}

func (d mainDisplay) Configure(bus *I2CBus) (Displayer, error) {
	return configureOLED(bus)
}

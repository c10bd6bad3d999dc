//go:build bluepill

package board

// Wiring for the STM32F103 "Blue Pill":
//
//	PB6 SCL, PB7 SDA (I2C1, shared by the display and all I2C sensors)
//	PA5 SCK, PA6 SDI, PA7 SDO, PA4 CS (SPI1)
//	PC13 status LED (active low)

import (
	"machine"
)

const (
	Name = "bluepill"
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

// The LED on PC13 is connected to 3.3V, so it lights up when the pin is low.
func (l statusLED) On() {
	machine.LED.Low()
}

func (l statusLED) Off() {
	machine.LED.High()
}

type mainDisplay struct{}

func (d mainDisplay) Configure(bus *I2CBus) (Displayer, error) {
	return configureOLED(bus)
}

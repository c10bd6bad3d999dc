//go:build stm32f4disco

package board

// Wiring for the STM32F4DISCOVERY:
//
//	PB6 SCL, PB9 SDA (I2C1, shared by the display and all I2C sensors)
//	PA5 SCK, PA6 SDI, PA7 SDO, PB5 CS (SPI1)
//	PD12 status LED (the green one)

import (
	"machine"
)

const (
	Name = "stm32f4disco"
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
		SDA:       machine.PB9,
	})
	if err != nil {
		return nil, err
	}
	return NewI2CBus("I2C1", i2c.Tx), nil
}

type spiConfig struct{}

func (c spiConfig) Configure(cfg SPIConfig) (*SPIBus, error) {
	// PA4 would be the natural choice, but it is used by the audio DAC on this
	// board.
	cs := machine.PB5
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

//go:build pico

package board

// Wiring for the Raspberry Pi Pico:
//
//	GP5 SCL, GP4 SDA (I2C0)
//	GP18 SCK, GP16 SDI, GP19 SDO, GP17 CS (SPI0)
//	GP25 status LED

import (
	"machine"

	"periph.io/x/conn/v3/physic"
)

const (
	Name = "pico"
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
		SCL:       machine.GP5,
		SDA:       machine.GP4,
	})
	if err != nil {
		return nil, err
	}
	return &I2CBus{
		name: "I2C0",
		tx:   i2c.Tx,
		// The RP2040 can change the I2C speed at any time.
		setSpeed: func(f physic.Frequency) error {
			return i2c.SetBaudRate(uint32(f / physic.Hertz))
		},
	}, nil
}

type spiConfig struct{}

func (c spiConfig) Configure(cfg SPIConfig) (*SPIBus, error) {
	cs := machine.GP17
	cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	cs.High()

	spi := machine.SPI0
	err := spi.Configure(machine.SPIConfig{
		Frequency: cfg.Frequency,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		SDI:       machine.GP16,
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

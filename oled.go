//go:build baremetal

package board

import (
	"tinygo.org/x/drivers/ssd1306"
)

// All baremetal boards use the same display: a 128x64 SSD1306 OLED on the
// shared I2C bus, at the usual address 0x3C.
func configureOLED(bus *I2CBus) (Displayer, error) {
	display := ssd1306.NewI2C(bus)
	display.Configure(ssd1306.Config{
		Width:    128,
		Height:   64,
		Address:  0x3C,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	display.ClearBuffer()
	if err := display.Display(); err != nil {
		return nil, err
	}
	return &display, nil
}

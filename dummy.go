package board

// This file contains dummy devices, for boards which don't have a particular
// kind of device.

import "github.com/aykevl/tinygl/pixel"

// Dummy addressable LEDs, for boards that don't have any.
// Configuring them leaves Data empty, which is how programs can tell that
// there are no addressable LEDs on the board.
type dummyAddressableLEDs struct {
	Data []pixel.RGB888
}

func (l *dummyAddressableLEDs) Configure() {
}

func (l *dummyAddressableLEDs) Update() {
}

//go:build baremetal

package board

import "time"

// Stop the program after a fatal error. There is nothing to return to on a
// microcontroller, so keep blinking the status LED at a rate that can't be
// confused with the slow blink of a running example.
func halt() {
	LED.Configure()
	for {
		LED.On()
		time.Sleep(100 * time.Millisecond)
		LED.Off()
		time.Sleep(100 * time.Millisecond)
	}
}

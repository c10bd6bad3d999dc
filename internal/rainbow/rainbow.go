// Package rainbow generates the smooth color and motion patterns used by the
// PWM example: an RGB rainbow and a servo sweep.
package rainbow

// Max is the largest value of a color channel. It is 60*68, so that each of
// the six 60 degree segments of the hue circle is a whole number of steps of
// 68 and no floating point math is needed.
const Max = 60 * 68

// ColorAt converts a hue in degrees (0-360, fully saturated, full value) to
// RGB, with each channel in the range 0-Max. Larger hues wrap around at 361.
//
// See https://en.wikipedia.org/wiki/HSL_and_HSV for the conversion.
func ColorAt(hue uint16) (r, g, b uint16) {
	hue %= 361
	switch {
	case hue < 60:
		return Max, hue * 68, 0
	case hue < 120:
		return (120 - hue) * 68, Max, 0
	case hue < 180:
		return 0, Max, (hue - 120) * 68
	case hue < 240:
		return 0, (240 - hue) * 68, Max
	case hue < 300:
		return (hue - 240) * 68, 0, Max
	default:
		return Max, 0, (360 - hue) * 68
	}
}

// Rainbow walks around the hue circle one degree per step.
type Rainbow struct {
	hue uint16
}

// NewRainbow returns a rainbow that starts right after the given hue.
func NewRainbow(hue uint16) *Rainbow {
	return &Rainbow{hue: hue % 361}
}

// Next advances the hue by one degree and returns its color.
func (r *Rainbow) Next() (red, green, blue uint16) {
	r.hue = (r.hue + 1) % 361
	return ColorAt(r.hue)
}

// Hue returns the current hue in degrees.
func (r *Rainbow) Hue() uint16 {
	return r.hue
}

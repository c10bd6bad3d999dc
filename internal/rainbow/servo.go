package rainbow

// Pulse lengths (in PCA9685 counts at ~60Hz) that are safe for most hobby
// servos. Tweak them for your servos: driving a servo past its end stops can
// damage it.
const (
	DefaultMin = 132
	DefaultMax = 608
)

const servoStep = 2

// Servo sweeps a pulse length back and forth between two bounds.
type Servo struct {
	current uint16
	min     uint16
	max     uint16
	up      bool
}

// NewServo returns a servo sweep starting at start and moving up first. The
// start is clamped to [min, max], and min and max are swapped if needed.
func NewServo(start, min, max uint16) *Servo {
	if min > max {
		min, max = max, min
	}
	if start < min {
		start = min
	}
	if start > max {
		start = max
	}
	return &Servo{current: start, min: min, max: max, up: true}
}

// Next moves the servo one step and returns the new pulse length. It reverses
// direction at the bounds and never returns a value outside them.
func (s *Servo) Next() uint16 {
	if s.current >= s.max {
		s.up = false
	} else if s.current <= s.min {
		s.up = true
	}
	if s.up {
		if s.max-s.current < servoStep {
			s.current = s.max
		} else {
			s.current += servoStep
		}
	} else {
		if s.current-s.min < servoStep {
			s.current = s.min
		} else {
			s.current -= servoStep
		}
	}
	return s.current
}

package veml6040

// The I2C address of the VEML6040. It can't be changed.
const Address = 0x10

// Command codes. All registers are 16 bits wide, LSB first.
const (
	RegConfig = 0x00
	RegRed    = 0x08
	RegGreen  = 0x09
	RegBlue   = 0x0A
	RegWhite  = 0x0B
)

// Bits of the configuration register.
const (
	confSD = 1 << 0 // shutdown
	confIT = 0b111 << 4
)

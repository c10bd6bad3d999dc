package tcs3472

// The I2C address of the TCS34721 and TCS34725. The TCS34723 and TCS34727 use
// 0x39.
const Address = 0x29

// Every register access starts with a command byte: the command bit, the
// transaction type and the register address.
const (
	cmdBit           = 0x80
	cmdAutoIncrement = 0b01 << 5
)

// Registers
const (
	RegEnable  = 0x00
	RegATime   = 0x01
	RegControl = 0x0F
	RegID      = 0x12
	RegStatus  = 0x13
	RegCData   = 0x14
	RegRData   = 0x16
	RegGData   = 0x18
	RegBData   = 0x1A
)

// Bits
const (
	enablePON  = 1 << 0
	enableAEN  = 1 << 1
	statusAVID = 1 << 0
)

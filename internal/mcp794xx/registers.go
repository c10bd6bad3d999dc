package mcp794xx

// The I2C address of the RTC block. It can't be changed.
const Address = 0x6F

// Registers
const (
	RegSeconds = 0x00
	RegMinutes = 0x01
	RegHours   = 0x02
	RegWeekday = 0x03
	RegDate    = 0x04
	RegMonth   = 0x05
	RegYear    = 0x06
)

// Bits
const (
	bitST     = 1 << 7 // oscillator start, in RegSeconds
	bit12Hour = 1 << 6 // in RegHours
	bitPM     = 1 << 5 // in RegHours, 12 hour mode only
	bitOSCRUN = 1 << 5 // in RegWeekday
	bitVBATEN = 1 << 3 // in RegWeekday
)

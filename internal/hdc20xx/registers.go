package hdc20xx

// The I2C address with the ADDR pin low. With ADDR high it is 0x41.
const Address = 0x40

// Registers
const (
	RegTemperature  = 0x00 // 2 bytes, LSB first
	RegHumidity     = 0x02 // 2 bytes, LSB first
	RegStatus       = 0x04
	RegResetConfig  = 0x0E
	RegMeasConfig   = 0x0F
	RegManufacturer = 0xFC // 2 bytes, LSB first
	RegDeviceID     = 0xFE // 2 bytes, LSB first
)

// Bits
const (
	statusDRDY   = 1 << 7
	resetSoftRes = 1 << 7
	measTrigger  = 1 << 0
)

// Known IDs.
const (
	ManufacturerTI = 0x5449
	DeviceHDC20xx  = 0x07D0
)

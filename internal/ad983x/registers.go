package ad983x

// Bits of the control register. Control words have bits 15 and 14 cleared.
const (
	ctrlB28      = 1 << 13
	ctrlFSELECT  = 1 << 11
	ctrlRESET    = 1 << 8
	ctrlOPBITEN  = 1 << 5
	ctrlDIV2     = 1 << 3
	ctrlMODE     = 1 << 1
	addrFREQ0    = 0b01 << 14
	addrFREQ1    = 0b10 << 14
	frequencyLSB = 0x3fff
)

// MaxFrequencyWord is the largest value of the 28 bit frequency registers.
const MaxFrequencyWord = 1<<28 - 1

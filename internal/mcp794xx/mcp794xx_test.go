package mcp794xx

import (
	"bytes"
	"testing"
	"time"

	"tinygo.org/x/drivers/tester"
)

func newRTC(t *testing.T) (*tester.I2CDevice8, Device) {
	bus := tester.NewI2CBus(t)
	chip := tester.NewI2CDevice8(t, Address)
	bus.AddDevice(chip)
	return chip, NewMCP7940N(bus)
}

func TestSetTime(t *testing.T) {
	chip, rtc := newRTC(t)
	chip.Registers[RegSeconds] = bitST
	chip.Registers[RegWeekday] = bitVBATEN | bitOSCRUN

	// 2019-01-02 was a Wednesday.
	err := rtc.SetTime(time.Date(2019, 1, 2, 16, 5, 6, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{bitST | 0x06, 0x05, 0x16, bitVBATEN | 4, 0x02, 0x01, 0x19}
	if got := chip.Registers[RegSeconds : RegSeconds+7]; !bytes.Equal(got, expected) {
		t.Errorf("expected registers %x, got %x", expected, got)
	}
}

func TestSetTimeInvalidYear(t *testing.T) {
	_, rtc := newRTC(t)
	for _, year := range []int{1999, 2100} {
		err := rtc.SetTime(time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC))
		if err != ErrInvalidYear {
			t.Errorf("year %d: expected ErrInvalidYear, got %v", year, err)
		}
	}
}

func TestReadTime(t *testing.T) {
	for _, tc := range []struct {
		name     string
		regs     []byte
		expected time.Time
	}{
		// The leap year flag (bit 5 of the month) is ignored.
		{"24h", []byte{bitST | 0x59, 0x58, 0x23, 0x3f, 0x31, 1<<5 | 0x12, 0x20},
			time.Date(2020, 12, 31, 23, 58, 59, 0, time.UTC)},
		{"12h-pm", []byte{0x06, 0x05, bit12Hour | bitPM | 0x04, 0x04, 0x02, 0x01, 0x19},
			time.Date(2019, 1, 2, 16, 5, 6, 0, time.UTC)},
		{"12h-midnight", []byte{0x00, 0x00, bit12Hour | 0x12, 0x01, 0x01, 0x01, 0x00},
			time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"12h-noon", []byte{0x00, 0x00, bit12Hour | bitPM | 0x12, 0x01, 0x01, 0x01, 0x00},
			time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			chip, rtc := newRTC(t)
			copy(chip.Registers[RegSeconds:], tc.regs)
			got, err := rtc.ReadTime()
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(tc.expected) {
				t.Errorf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	_, rtc := newRTC(t)
	begin := time.Date(2019, 1, 2, 4, 5, 6, 0, time.UTC)
	if err := rtc.SetTime(begin); err != nil {
		t.Fatal(err)
	}
	got, err := rtc.ReadTime()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(begin) {
		t.Errorf("expected %s, got %s", begin, got)
	}
}

func TestEnableDisable(t *testing.T) {
	chip, rtc := newRTC(t)
	chip.Registers[RegSeconds] = 0x42
	if err := rtc.Enable(); err != nil {
		t.Fatal(err)
	}
	if got := chip.Registers[RegSeconds]; got != bitST|0x42 {
		t.Errorf("Enable: expected %#x, got %#x", bitST|0x42, got)
	}
	if err := rtc.Disable(); err != nil {
		t.Fatal(err)
	}
	if got := chip.Registers[RegSeconds]; got != 0x42 {
		t.Errorf("Disable: expected 0x42, got %#x", got)
	}

	running, err := rtc.IsRunning()
	if err != nil || running {
		t.Errorf("expected stopped oscillator, got %v, %v", running, err)
	}
	chip.Registers[RegWeekday] = bitOSCRUN
	running, err = rtc.IsRunning()
	if err != nil || !running {
		t.Errorf("expected running oscillator, got %v, %v", running, err)
	}
}

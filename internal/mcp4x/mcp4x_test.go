package mcp4x

import (
	"bytes"
	"testing"
)

type spiRecorder struct {
	frames [][]byte
}

func (s *spiRecorder) Tx(w, r []byte) error {
	s.frames = append(s.frames, append([]byte(nil), w...))
	return nil
}

func (s *spiRecorder) Transfer(b byte) (byte, error) {
	s.frames = append(s.frames, []byte{b})
	return 0, nil
}

func TestMCP42x(t *testing.T) {
	bus := &spiRecorder{}
	pot := NewMCP42x(bus)
	pot.SetPosition(Ch0, 8)
	pot.SetPosition(Ch1, 255-8)
	pot.SetPosition(All, 128)
	pot.Shutdown(Ch1)

	expected := [][]byte{
		{0x11, 8},
		{0x12, 247},
		{0x13, 128},
		{0x22, 0},
	}
	if len(bus.frames) != len(expected) {
		t.Fatalf("expected %d frames, got %d", len(expected), len(bus.frames))
	}
	for i := range expected {
		if !bytes.Equal(bus.frames[i], expected[i]) {
			t.Errorf("frame %d: expected %x, got %x", i, expected[i], bus.frames[i])
		}
	}
}

func TestMCP41x(t *testing.T) {
	bus := &spiRecorder{}
	pot := NewMCP41x(bus)
	if err := pot.SetPosition(Ch0, 1); err != nil {
		t.Error(err)
	}
	if err := pot.SetPosition(Ch1, 1); err != ErrInvalidChannel {
		t.Errorf("expected ErrInvalidChannel, got %v", err)
	}
	if err := pot.Shutdown(Channel(7)); err != ErrInvalidChannel {
		t.Errorf("expected ErrInvalidChannel, got %v", err)
	}
	if len(bus.frames) != 1 {
		t.Errorf("invalid commands must not be sent, got %d frames", len(bus.frames))
	}
}

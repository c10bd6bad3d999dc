// Package melody plays a table of MIDI notes one step at a time.
//
// A step is whatever the caller makes it: the AD9833 example advances the
// player once per LED blink. Each table entry is held for Length steps and
// followed by Rest steps of silence.
package melody

import "math"

// Silence is returned by Player.Next during the rest after a note.
const Silence = 0

// Note is a single entry of a melody table.
type Note struct {
	Pitch  uint8 // MIDI note number, 69 is A4 (440Hz)
	Length int   // steps the note is played
	Rest   int   // steps of silence after the note
}

// Player steps through a melody table, looping forever.
type Player struct {
	notes    []Note
	position int
	counter  int
}

// New returns a player positioned at the first note of the table. The table
// must not be empty.
func New(notes []Note) *Player {
	return &Player{notes: notes}
}

// Next returns the MIDI note number to play for this step, or Silence.
func (p *Player) Next() uint8 {
	note := p.notes[p.position]
	total := note.Length + note.Rest
	switch {
	case p.counter >= note.Length && p.counter < total:
		p.counter++
		return Silence
	case p.counter >= total:
		// Move to the next note, which is played in this same step.
		p.position = (p.position + 1) % len(p.notes)
		p.counter = 1
	default:
		p.counter++
	}
	return p.notes[p.position].Pitch
}

// Seek restarts the player at the beginning of the given table entry.
// Positions outside the table wrap around.
func (p *Player) Seek(position int) {
	position %= len(p.notes)
	if position < 0 {
		position += len(p.notes)
	}
	p.position = position
	p.counter = 0
}

// Position returns the index of the table entry being played.
func (p *Player) Position() int {
	return p.position
}

// Frequency returns the frequency in Hz of a MIDI note number, using equal
// temperament tuned to A4 = 440Hz.
func Frequency(note uint8) float64 {
	return 440 * math.Pow(2, (float64(note)-69)/12)
}

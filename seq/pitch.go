// SPDX-License-Identifier: EPL-2.0

package seq

import "strconv"

// Pitch identifies the sound a Generator should produce for a note. It is
// either numeric (a MIDI-style note number, middle C = 60) or named (a free
// form label such as "C4" or "kick"); which representations carry meaning
// is up to the Generator resolving them — a Sample ignores pitch entirely.
//
// Pitch is comparable and is used as the Wavetable cache key. The zero
// value is numeric 0.
type Pitch struct {
	number int
	name   string
	named  bool
}

// MIDIPitch returns a numeric pitch; middle C is 60.
func MIDIPitch(n int) Pitch { return Pitch{number: n} }

// NamedPitch returns a symbolic pitch, e.g. "C4" or "snare".
func NamedPitch(name string) Pitch { return Pitch{name: name, named: true} }

// MIDI reports the note number when the pitch is numeric.
func (p Pitch) MIDI() (int, bool) {
	if p.named {
		return 0, false
	}
	return p.number, true
}

// Named reports the symbolic name when the pitch is named.
func (p Pitch) Named() (string, bool) {
	if !p.named {
		return "", false
	}
	return p.name, true
}

func (p Pitch) String() string {
	if p.named {
		return p.name
	}
	return strconv.Itoa(p.number)
}

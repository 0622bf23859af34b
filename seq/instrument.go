// SPDX-License-Identifier: EPL-2.0

package seq

import "github.com/viterin/vek/vek32"

// Instrument renders single notes through a Wavetable. It holds no state
// of its own beyond the wavetable it owns.
type Instrument struct {
	wavetable *Wavetable
}

func NewInstrument(w *Wavetable) *Instrument {
	return &Instrument{wavetable: w}
}

// Wavetable returns the wavetable the instrument renders through.
func (ins *Instrument) Wavetable() *Wavetable { return ins.wavetable }

// Render produces the note's audio: the wavetable buffer for the note's
// pitch, scaled by velocity and, when TrimToDuration is set, cut to
// floor(Duration * rate) samples. A buffer already shorter than that is
// returned unpadded; callers must tolerate a shorter-than-requested
// result.
//
// Scaling happens on a fresh copy. The cached wavetable buffer is never
// written to, so repeated notes at different velocities cannot corrupt
// the cache.
func (ins *Instrument) Render(note Note) ([]float32, error) {
	base, err := ins.wavetable.Lookup(note.Pitch)
	if err != nil {
		return nil, err
	}

	sound := vek32.MulNumber(base, note.Velocity)

	if note.TrimToDuration {
		limit := int(note.Duration * float64(ins.wavetable.SampleRate()))
		if limit < len(sound) {
			sound = sound[:limit]
		}
	}

	return sound, nil
}

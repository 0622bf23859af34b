// SPDX-License-Identifier: EPL-2.0

package seq

// Track binds an instrument to a stable, non-negative id within one
// timeline. Tracks are created once and not mutated afterwards.
type Track struct {
	ID         int
	Instrument *Instrument
	Name       string
}

func NewTrack(id int, ins *Instrument, name string) *Track {
	return &Track{ID: id, Instrument: ins, Name: name}
}

// SPDX-License-Identifier: EPL-2.0

package seq

import "fmt"

// Note is one timed event on a Timeline. Notes are plain values: once
// added to a timeline they are never mutated or individually removed.
type Note struct {
	// TrackID must reference a track present on the timeline by render
	// time.
	TrackID int

	// Pitch is handed to the track's generator unchanged.
	Pitch Pitch

	// Start and Duration are in seconds. Duration must not be negative.
	Start    float64
	Duration float64

	// Velocity is a linear amplitude multiplier, conventionally in [0, 1].
	// It is not clamped; values above 1 amplify.
	Velocity float32

	// TrimToDuration cuts rendered audio longer than Duration.
	TrimToDuration bool

	// On is reserved for note-off semantics; rendering ignores it.
	On bool
}

// End returns the time the note stops occupying the timeline.
func (n Note) End() float64 { return n.Start + n.Duration }

func (n Note) String() string {
	return fmt.Sprintf("note track=%d pitch=%s start=%g duration=%g velocity=%g",
		n.TrackID, n.Pitch, n.Start, n.Duration, n.Velocity)
}

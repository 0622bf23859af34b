// SPDX-License-Identifier: EPL-2.0

package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTrack means a note references a track id that is not on
	// the timeline. It aborts the render.
	ErrUnknownTrack = errors.New("note references unknown track")

	// ErrEmptyTimeline means a render needed the natural end of the
	// composition but the timeline holds no notes.
	ErrEmptyTimeline = errors.New("timeline has no notes")

	// ErrInvalidRange means a render window ends at or before its start.
	ErrInvalidRange = errors.New("end time must be after start time")

	// ErrNotImplemented is returned by generators whose synthesis is not
	// implemented.
	ErrNotImplemented = errors.New("not implemented")
)

// TrackCollisionError reports that a track id was already taken while
// populating a timeline. The colliding track has replaced the old one;
// the error is advisory and the timeline stays usable.
type TrackCollisionError struct {
	ID int
}

func (e *TrackCollisionError) Error() string {
	return fmt.Sprintf("track id %d already in timeline; old track overwritten", e.ID)
}

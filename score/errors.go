package score

import "errors"

var (
	ErrBadTrackRef      = errors.New("note references undeclared track")
	ErrNegativeDuration = errors.New("note duration must not be negative")
)

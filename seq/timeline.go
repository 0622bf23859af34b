// SPDX-License-Identifier: EPL-2.0

package seq

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/viterin/vek/vek32"
)

const (
	DefaultSampleRate = 44100
	DefaultBPM        = 120
)

// Options configure a Timeline. The zero value means 44100 Hz, 120 BPM,
// notes kept sorted on every insert.
type Options struct {
	// SampleRate of the rendered mix, shared by every track added through
	// AddGeneratorTrack.
	SampleRate int

	// BPM is stored as score metadata. Rendering does not apply it: note
	// times are already seconds.
	BPM float64

	// Unsorted defers note sorting to render time instead of keeping the
	// sequence ordered on every insert. Insertion becomes O(1), the first
	// render pays the sort.
	Unsorted bool
}

// Timeline owns a composition: a set of tracks keyed by id and a note
// sequence ordered by start time. It is a mutable builder; rendering
// reads the current state, and the timeline may keep changing and
// re-rendering afterwards.
//
// A timeline is not safe for concurrent mutation; confine each timeline
// to one goroutine or synchronize externally. The wavetable caches
// underneath are safe either way.
type Timeline struct {
	tracks     map[int]*Track
	notes      []Note
	keepSorted bool
	rate       int
	bpm        float64
}

func NewTimeline(opt Options) *Timeline {
	if opt.SampleRate <= 0 {
		opt.SampleRate = DefaultSampleRate
	}
	if opt.BPM <= 0 {
		opt.BPM = DefaultBPM
	}

	return &Timeline{
		tracks:     make(map[int]*Track),
		keepSorted: !opt.Unsorted,
		rate:       opt.SampleRate,
		bpm:        opt.BPM,
	}
}

func (t *Timeline) SampleRate() int { return t.rate }
func (t *Timeline) BPM() float64    { return t.bpm }
func (t *Timeline) NumTracks() int  { return len(t.tracks) }
func (t *Timeline) NumNotes() int   { return len(t.notes) }

// Track returns the track with the given id.
func (t *Timeline) Track(id int) (*Track, bool) {
	tr, ok := t.tracks[id]
	return tr, ok
}

// Notes returns a copy of the note sequence in its current order.
func (t *Timeline) Notes() []Note { return slices.Clone(t.notes) }

// AddTrack adds a track for ins under the smallest non-negative id not
// yet in use and returns that id.
func (t *Timeline) AddTrack(ins *Instrument, name string) int {
	id := 0
	for {
		if _, taken := t.tracks[id]; !taken {
			break
		}
		id++
	}

	t.tracks[id] = NewTrack(id, ins, name)
	return id
}

// AddGeneratorTrack wraps gen in a default instrument and wavetable at
// the timeline's sample rate and adds it as a new track.
func (t *Timeline) AddGeneratorTrack(gen Generator, name string) int {
	return t.AddTrack(NewInstrument(NewWavetable(gen, t.rate)), name)
}

// PopulateTracks adds tracks carrying pre-assigned ids. A colliding id
// overwrites the track already there and is reported through a
// *TrackCollisionError (joined when there are several). The error is
// recoverable: the timeline holds the new tracks either way.
func (t *Timeline) PopulateTracks(tracks ...*Track) error {
	var errs []error
	for _, tr := range tracks {
		if _, taken := t.tracks[tr.ID]; taken {
			errs = append(errs, &TrackCollisionError{ID: tr.ID})
		}
		t.tracks[tr.ID] = tr
	}
	return errors.Join(errs...)
}

// AddNote inserts a note. When the timeline keeps its notes sorted the
// position is found by binary search on start time, after any notes with
// an equal start; otherwise the note is appended.
func (t *Timeline) AddNote(n Note) {
	if !t.keepSorted {
		t.notes = append(t.notes, n)
		return
	}

	idx := sort.Search(len(t.notes), func(i int) bool {
		return t.notes[i].Start > n.Start
	})
	t.notes = slices.Insert(t.notes, idx, n)
}

// PopulateNotes adds notes one by one, as AddNote would.
func (t *Timeline) PopulateNotes(notes ...Note) {
	for _, n := range notes {
		t.AddNote(n)
	}
}

// SortNotes stable-sorts the note sequence by start time.
func (t *Timeline) SortNotes() {
	slices.SortStableFunc(t.notes, func(a, b Note) int {
		return cmp.Compare(a.Start, b.Start)
	})
}

// EndTime returns the natural end of the composition, the largest note
// end time. ErrEmptyTimeline when there are no notes.
func (t *Timeline) EndTime() (float64, error) {
	if len(t.notes) == 0 {
		return 0, ErrEmptyTimeline
	}

	end := math.Inf(-1)
	for _, n := range t.notes {
		end = math.Max(end, n.End())
	}
	return end, nil
}

// GenerateAudio renders the whole composition, from time zero to the end
// of the last note.
func (t *Timeline) GenerateAudio() ([]float32, error) {
	end, err := t.EndTime()
	if err != nil {
		return nil, err
	}
	return t.GenerateRange(0, end)
}

// GenerateRange renders the window [startTime, endTime) into one mono
// buffer of round((endTime-startTime)*rate) samples.
//
// Notes are visited in start order. Notes ending at or before the window
// are skipped, and iteration stops at the first note starting at or past
// endTime — valid only because the sequence is sorted. Rendered audio
// falling outside the buffer is clipped at both ends: a note straddling
// startTime contributes only its tail, sample-aligned, and one running
// past endTime is cut short rather than rejected. Overlapping notes sum;
// the mix is not normalized or limited.
//
// The first failing note aborts the render with an error naming the
// note.
func (t *Timeline) GenerateRange(startTime, endTime float64) ([]float32, error) {
	if endTime <= startTime {
		return nil, fmt.Errorf("%w: [%g, %g)", ErrInvalidRange, startTime, endTime)
	}

	if !t.keepSorted {
		t.SortNotes()
	}

	rate := float64(t.rate)
	out := vek32.Zeros(int(math.Round((endTime - startTime) * rate)))

	for _, n := range t.notes {
		if n.End() <= startTime {
			continue
		}
		if n.Start >= endTime {
			break
		}

		track, ok := t.tracks[n.TrackID]
		if !ok {
			return nil, fmt.Errorf("%s: %w", n, ErrUnknownTrack)
		}

		sound, err := track.Instrument.Render(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n, err)
		}

		startIdx := int(math.Round((n.Start - startTime) * rate))
		lo, hi := startIdx, startIdx+len(sound)
		srcLo := 0
		if lo < 0 {
			srcLo = -lo
			lo = 0
		}
		if hi > len(out) {
			hi = len(out)
		}
		if lo >= hi {
			continue
		}

		vek32.Add_Inplace(out[lo:hi], sound[srcLo:srcLo+hi-lo])
	}

	return out, nil
}

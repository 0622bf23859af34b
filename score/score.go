// SPDX-License-Identifier: EPL-2.0

package score

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audseq/seq"
)

// Score is the YAML document describing a composition.
type Score struct {
	SampleRate int     `yaml:"samplerate,omitempty"`
	BPM        float64 `yaml:"bpm,omitempty"`
	Tracks     []Track `yaml:"tracks"`
	Notes      []Note  `yaml:"notes"`
}

// Track declares one instrument track. Sample is the reference of the
// audio backing it, in whatever form the loader understands (usually a
// file path).
type Track struct {
	Name   string `yaml:"name,omitempty"`
	Sample string `yaml:"sample"`
}

// Note is one timed event. Track indexes the score's track list, not a
// timeline id. Pitch takes precedence over Key when both are set; with
// neither the note plays MIDI key 0, which sample-backed tracks ignore
// anyway.
type Note struct {
	Track    int     `yaml:"track"`
	Pitch    string  `yaml:"pitch,omitempty"`
	Key      int     `yaml:"key,omitempty"`
	Start    float64 `yaml:"start"`
	Duration float64 `yaml:"duration"`
	Velocity float32 `yaml:"velocity"`
	Trim     bool    `yaml:"trim,omitempty"`
}

// Parse unmarshals and validates a YAML score.
func Parse(data []byte) (*Score, error) {
	var s Score
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing score: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Read parses a YAML score from r.
func Read(r io.Reader) (*Score, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading score: %w", err)
	}
	return Parse(data)
}

// Write marshals the score back to YAML.
func (s *Score) Write(w io.Writer) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling score: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing score: %w", err)
	}
	return nil
}

// Validate checks referential integrity: every note must index a declared
// track and carry a non-negative duration.
func (s *Score) Validate() error {
	for i, n := range s.Notes {
		if n.Track < 0 || n.Track >= len(s.Tracks) {
			return fmt.Errorf("note %d: %w: track %d of %d", i, ErrBadTrackRef, n.Track, len(s.Tracks))
		}
		if n.Duration < 0 {
			return fmt.Errorf("note %d: %w", i, ErrNegativeDuration)
		}
	}
	return nil
}

// Timeline builds a playable timeline from the score. load resolves a
// track's sample reference to a generator and is called once per track,
// in declaration order.
func (s *Score) Timeline(load func(sample string) (seq.Generator, error)) (*seq.Timeline, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	tl := seq.NewTimeline(seq.Options{SampleRate: s.SampleRate, BPM: s.BPM})

	ids := make([]int, len(s.Tracks))
	for i, tr := range s.Tracks {
		gen, err := load(tr.Sample)
		if err != nil {
			return nil, fmt.Errorf("track %d (%q): %w", i, tr.Name, err)
		}
		ids[i] = tl.AddGeneratorTrack(gen, tr.Name)
	}

	for _, n := range s.Notes {
		tl.AddNote(seq.Note{
			TrackID:        ids[n.Track],
			Pitch:          n.pitch(),
			Start:          n.Start,
			Duration:       n.Duration,
			Velocity:       n.Velocity,
			TrimToDuration: n.Trim,
			On:             true,
		})
	}

	return tl, nil
}

func (n Note) pitch() seq.Pitch {
	if n.Pitch != "" {
		return seq.NamedPitch(n.Pitch)
	}
	return seq.MIDIPitch(n.Key)
}

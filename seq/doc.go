// SPDX-License-Identifier: EPL-2.0

// Package seq implements the note-sequenced mixdown core: timelines of
// timed notes played on instrument tracks, rendered into a single mono
// float32 buffer by additive mixing.
//
// # Model
//
// The pieces compose leaf-first:
//
//   - Generator resolves a Pitch to a PCM buffer at a sample rate.
//     Sample is the recorded variant (pitch is ignored); Synthesizer is a
//     parametric placeholder that is not implemented yet.
//   - Wavetable memoizes generator output per pitch, so each pitch is
//     generated at most once.
//   - Instrument renders one Note through its wavetable: velocity scaling
//     on a copy, optional trimming to the note duration.
//   - Track binds an instrument to a stable integer id.
//   - Timeline owns the track set and the start-ordered note sequence and
//     renders the full mix.
//
// # Rendering
//
// A render walks the sorted note sequence, resolves each note's track,
// renders the note and adds it into the output at
// round((start - windowStart) * rate). Audio falling outside the render
// window is clipped at both ends. Overlapping notes simply sum; no
// normalization or limiting is applied, so a dense mix can leave [-1, 1]
// and downstream limiting is the caller's job.
//
//	tl := seq.NewTimeline(seq.Options{SampleRate: 44100})
//	id := tl.AddGeneratorTrack(kick, "kick")
//	tl.AddNote(seq.Note{TrackID: id, Start: 0, Duration: 0.5, Velocity: 1})
//	mix, err := tl.GenerateAudio()
//
// Rendering is a read of the timeline's current state: the timeline can be
// mutated further and re-rendered, and repeated renders of an unchanged
// timeline produce bit-identical buffers.
//
// # Units
//
// Note times are seconds. A timeline stores a BPM value as score metadata
// but rendering never applies it; nothing converts beats to seconds.
package seq

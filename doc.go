// SPDX-License-Identifier: EPL-2.0

// Package audseq renders compositions of timed notes into audio files.
//
// Given a set of instrument tracks (each backed by a recorded sample or,
// eventually, a synthesizer) and a timeline of notes, audseq looks up or
// generates the per-note waveforms and additively mixes them into one
// continuous buffer at the correct sample offsets.
//
// # Quick Start
//
// The shortest path from samples to a mixdown:
//
//	kick, err := audseq.LoadSampleFile("samples/Kick.wav")
//	if err != nil {
//	    // Handle error
//	}
//
//	tl := seq.NewTimeline(seq.Options{SampleRate: 44100})
//	id := tl.AddGeneratorTrack(kick, kick.Name())
//	tl.AddNote(seq.Note{TrackID: id, Start: 0, Duration: 0.5, Velocity: 1, TrimToDuration: true})
//	tl.AddNote(seq.Note{TrackID: id, Start: 0.5, Duration: 0.5, Velocity: 0.8, TrimToDuration: true})
//
//	out, _ := os.Create("out.wav")
//	defer out.Close()
//	err = audseq.RenderWAV16(tl, out)
//
// Or drive the whole thing from a YAML score:
//
//	tl, err := audseq.LoadScoreFile("songs/loop.yml")
//	if err != nil {
//	    // Handle error
//	}
//	err = audseq.RenderWAV16(tl, out)
//
// # Packages
//
// The core sequencing model (notes, wavetables, instruments, timelines)
// lives in seq. Score documents live in score. The audio subpackage holds
// the processing primitives (Source interface, mono downmix, resampling,
// decoder registry) and formats/* the per-format decoders:
//
//   - WAV (via formats/wav, which also encodes PCM 16-bit)
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//
// Samples are decoded once, downmixed to mono and cached per pitch by the
// wavetable layer, so repeated notes cost a copy and a multiply, not a
// decode.
//
// # Sample Format
//
// All processing uses mono float32 samples in [-1.0, 1.0]. Mixing sums
// overlapping notes without limiting; the final PCM conversion clamps.
// Rendering is offline: there is no playback path and no streaming, a
// render is a plain library call producing a buffer or a WAV file.
package audseq

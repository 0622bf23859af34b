// SPDX-License-Identifier: EPL-2.0

// Package score reads and writes YAML score documents and turns them into
// playable timelines.
//
// A score declares the instrument tracks (each backed by a sample file)
// and the timed notes played on them:
//
//	samplerate: 44100
//	bpm: 120
//	tracks:
//	  - name: kick
//	    sample: samples/Kick.wav
//	  - name: snare
//	    sample: samples/Snare.wav
//	notes:
//	  - {track: 0, pitch: kick, start: 0, duration: 0.5, velocity: 1, trim: true}
//	  - {track: 1, pitch: snare, start: 2, duration: 0.5, velocity: 1, trim: true}
//
// Note times are seconds. How a sample reference is resolved to audio is
// up to the loader handed to Score.Timeline, so scores stay independent of
// file layout and decoding.
package score

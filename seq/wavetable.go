// SPDX-License-Identifier: EPL-2.0

package seq

import (
	"fmt"
	"sync"
)

// Wavetable memoizes generator output per pitch at a fixed sample rate.
// The first Lookup of a pitch calls the generator; every later Lookup of
// that pitch returns the cached buffer. There is no eviction: the cache
// grows with the number of distinct pitches, which stays small in
// practice.
//
// The lookup-or-generate step is atomic, so a wavetable shared between
// concurrent renders still generates each pitch at most once.
type Wavetable struct {
	gen  Generator
	rate int

	mtx   sync.Mutex
	cache map[Pitch][]float32
}

// NewWavetable creates a wavetable serving buffers at sampleRate.
func NewWavetable(gen Generator, sampleRate int) *Wavetable {
	return &Wavetable{
		gen:   gen,
		rate:  sampleRate,
		cache: make(map[Pitch][]float32),
	}
}

// SampleRate of the buffers the wavetable serves.
func (w *Wavetable) SampleRate() int { return w.rate }

// Lookup returns the buffer for pitch, generating and caching it on first
// use. The returned slice is shared with the cache; callers must not
// write to it.
func (w *Wavetable) Lookup(pitch Pitch) ([]float32, error) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if buf, ok := w.cache[pitch]; ok {
		return buf, nil
	}

	buf, err := w.gen.Generate(pitch, w.rate)
	if err != nil {
		return nil, fmt.Errorf("generating pitch %s: %w", pitch, err)
	}

	w.cache[pitch] = buf
	return buf, nil
}

// Cached reports whether pitch has already been generated.
func (w *Wavetable) Cached(pitch Pitch) bool {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	_, ok := w.cache[pitch]
	return ok
}

// SPDX-License-Identifier: EPL-2.0

package seq

import (
	"fmt"

	"github.com/ik5/audseq/audio"
)

// Generator resolves a pitch to a mono PCM buffer at the requested sample
// rate. Samples are float32 in [-1, 1]. Implementations must be pure:
// same inputs, same output, no side effects.
type Generator interface {
	Generate(pitch Pitch, sampleRate int) ([]float32, error)
}

// Sample is a Generator backed by one pre-recorded mono buffer. The pitch
// argument is ignored entirely; a Sample is a constant generator. When
// asked for a rate other than its native one the buffer is resampled
// through the audio pipeline.
type Sample struct {
	data []float32
	rate int
	name string
}

// NewSample wraps raw mono samples recorded at sampleRate. The slice is
// not copied.
func NewSample(data []float32, sampleRate int, name string) *Sample {
	return &Sample{data: data, rate: sampleRate, name: name}
}

// NewSampleFromSource drains src into memory, downmixing to mono first
// when the source is multi-channel. The sample keeps the source's rate.
func NewSampleFromSource(src audio.Source, name string) (*Sample, error) {
	mono := src
	if src.Channels() > 1 {
		mono = audio.NewMonoMixer(src)
	}

	data, err := audio.ReadAll(mono, 4096)
	if err != nil {
		return nil, fmt.Errorf("reading sample %q: %w", name, err)
	}

	return &Sample{data: data, rate: src.SampleRate(), name: name}, nil
}

func (s *Sample) Name() string    { return s.name }
func (s *Sample) SampleRate() int { return s.rate }
func (s *Sample) Len() int        { return len(s.data) }

// Generate returns the recorded buffer at sampleRate. At the native rate
// the internal buffer is returned as-is; callers must treat it as
// read-only.
func (s *Sample) Generate(_ Pitch, sampleRate int) ([]float32, error) {
	if sampleRate <= 0 || sampleRate == s.rate || len(s.data) == 0 {
		return s.data, nil
	}

	res := audio.NewResampler(audio.NewBufferSource(s.data, s.rate, 1), sampleRate)
	out, err := audio.ReadAll(res, 4096)
	if err != nil {
		return nil, fmt.Errorf("resampling sample %q to %d Hz: %w", s.name, sampleRate, err)
	}
	return out, nil
}

// Synthesizer is the parametric counterpart of Sample. Synthesis is not
// implemented yet; Generate always fails with ErrNotImplemented.
type Synthesizer struct{}

func (Synthesizer) Generate(pitch Pitch, sampleRate int) ([]float32, error) {
	return nil, fmt.Errorf("synthesize pitch %s: %w", pitch, ErrNotImplemented)
}

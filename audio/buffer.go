// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource serves an in-memory block of interleaved float32 samples as
// a Source. It is what a fully decoded sample looks like when it has to go
// back through the processing pipeline, e.g. to be resampled to another
// rate. The buffer is not copied; callers must not mutate it while the
// source is in use.
type BufferSource struct {
	data       []float32
	sampleRate int
	channels   int
	pos        int
}

// NewBufferSource wraps data recorded at sampleRate with the given
// interleaved channel count. len(data) should be a multiple of channels.
func NewBufferSource(data []float32, sampleRate, channels int) *BufferSource {
	if channels < 1 {
		channels = 1
	}
	return &BufferSource{
		data:       data,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) BufSize() int    { return 4096 }
func (b *BufferSource) Close() error    { return nil }

// Reset rewinds the source to the first sample so it can be read again.
func (b *BufferSource) Reset() { b.pos = 0 }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if b.pos >= len(b.data) {
		return 0, io.EOF
	}

	n := copy(dst, b.data[b.pos:])
	b.pos += n

	if b.pos >= len(b.data) {
		return n, io.EOF
	}
	return n, nil
}

// SPDX-License-Identifier: EPL-2.0

package audseq

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audseq/audio"
	"github.com/ik5/audseq/formats/aiff"
	"github.com/ik5/audseq/formats/mp3"
	"github.com/ik5/audseq/formats/vorbis"
	"github.com/ik5/audseq/formats/wav"
	"github.com/ik5/audseq/score"
	"github.com/ik5/audseq/seq"
	"github.com/ik5/audseq/utils"
)

// ErrUnsupportedFormat means no decoder is registered for a file's
// extension.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// DefaultRegistry returns a registry with every built-in decoder
// registered under its usual file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// LoadSampleFile decodes an audio file into a mono sample at the file's
// native rate, picking the decoder from DefaultRegistry by extension.
// The sample is named after the file, without directory or extension.
func LoadSampleFile(path string) (*seq.Sample, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	dec, ok := DefaultRegistry().Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return seq.NewSampleFromSource(src, name)
}

// LoadScoreFile reads a YAML score and builds its timeline. Sample paths
// inside the score are resolved relative to the score file's directory.
func LoadScoreFile(path string) (*seq.Timeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	sc, err := score.Read(f)
	if err != nil {
		return nil, fmt.Errorf("score %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	return sc.Timeline(func(sample string) (seq.Generator, error) {
		if !filepath.IsAbs(sample) {
			sample = filepath.Join(dir, sample)
		}
		return LoadSampleFile(sample)
	})
}

// RenderWAV16 mixes down the whole timeline and writes it to w as a mono
// 16-bit PCM WAV at the timeline's sample rate. Samples outside [-1, 1]
// (overlapping notes are summed, never limited) are clamped by the PCM
// conversion.
func RenderWAV16(t *seq.Timeline, w io.Writer) error {
	data, err := t.GenerateAudio()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return writeWAV16(w, t.SampleRate(), data)
}

// RenderRangeWAV16 mixes down the window [startTime, endTime) and writes
// it to w as a mono 16-bit PCM WAV.
func RenderRangeWAV16(t *seq.Timeline, startTime, endTime float64, w io.Writer) error {
	data, err := t.GenerateRange(startTime, endTime)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return writeWAV16(w, t.SampleRate(), data)
}

func writeWAV16(w io.Writer, sampleRate int, data []float32) error {
	pcm16 := make([]int16, len(data))
	for i, v := range data {
		pcm16[i] = utils.Float32ToInt16(v)
	}

	if err := wav.WriteWAV16(w, sampleRate, pcm16); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

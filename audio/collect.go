// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ReadAll drains src and returns every sample it produces as one float32
// slice. bufferSize controls the read chunk (4096 is used when it is not
// positive); for multi-channel sources it should be a multiple of the
// channel count so frames stay aligned.
//
// Unlike the streaming Source contract this loads the whole stream into
// memory, which is the right trade-off for short one-shot samples.
func ReadAll(src Source, bufferSize int) ([]float32, error) {
	if bufferSize <= 0 {
		bufferSize = 4096
	}

	out := make([]float32, 0, bufferSize)
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("%w", err)
		}
	}
}

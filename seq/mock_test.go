package seq

// Test generators. They mirror the shapes rendering cares about: constant
// buffers for mixing math, ramps for sample alignment, counters for cache
// and traversal checks.

// countingGenerator returns a constant buffer and counts Generate calls.
type countingGenerator struct {
	value  float32
	length int
	calls  int
}

func (g *countingGenerator) Generate(_ Pitch, _ int) ([]float32, error) {
	g.calls++
	buf := make([]float32, g.length)
	for i := range buf {
		buf[i] = g.value
	}
	return buf, nil
}

// constGenerator emits value for duration seconds at the requested rate.
type constGenerator struct {
	value    float32
	duration float64
}

func (g constGenerator) Generate(_ Pitch, sampleRate int) ([]float32, error) {
	buf := make([]float32, int(g.duration*float64(sampleRate)))
	for i := range buf {
		buf[i] = g.value
	}
	return buf, nil
}

// rampGenerator emits the sample index as the sample value, which makes
// offsets visible in the output.
type rampGenerator struct {
	duration float64
}

func (g rampGenerator) Generate(_ Pitch, sampleRate int) ([]float32, error) {
	buf := make([]float32, int(g.duration*float64(sampleRate)))
	for i := range buf {
		buf[i] = float32(i)
	}
	return buf, nil
}

// failingGenerator fails every call with err.
type failingGenerator struct {
	err error
}

func (g failingGenerator) Generate(Pitch, int) ([]float32, error) {
	return nil, g.err
}

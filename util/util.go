package util

// GenerateLut builds a look-up table that rises through fn over the first
// half of the table and falls back symmetrically over the second half.
func GenerateLut(length int, fn func(float64) float64) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := fn(float64(i) * increment)
		lut[i] = value
		lut[j] = value
	}
	return lut
}

// GenerateLutMemoized returns a memoized GenerateLut table. Tables are
// cached by length alone, so every call on one Memoizer must share the same
// easing function.
func GenerateLutMemoized(length int, m *Memoizer, fn func(float64) float64) []float64 {
	return m.Get(length, func(l int) []float64 {
		return GenerateLut(l, fn)
	})
}

// SampleLut samples fn evenly across [0,1] into a table of the given
// length.
func SampleLut(length int, fn func(float64) float64) []float64 {
	lut := make([]float64, length)
	for i := 0; i < length; i++ {
		lut[i] = fn(float64(i) / float64(length-1))
	}
	return lut
}

// Memoizer caches look-up tables keyed by length. It is not safe for
// concurrent use; each animation owns its own instance.
type Memoizer struct {
	luts map[int][]float64
}

// Get returns the cached table for the given length, generating and
// storing it on the first request.
func (m *Memoizer) Get(length int, generate func(int) []float64) []float64 {
	if m.luts == nil {
		m.luts = make(map[int][]float64)
	}
	if lut, ok := m.luts[length]; ok {
		return lut
	}
	lut := generate(length)
	m.luts[length] = lut
	return lut
}

// Package bounce generates bounce easing functions: pure mappings from
// normalized animation progress in [0,1] to a normalized eased value in
// [0,1] that mimic a ball bouncing to rest.
package bounce

import "math"

const (
	defaultDecayRatio    = 0.5
	defaultRestThreshold = 0.01
)

// Function maps normalized animation progress to a normalized eased value.
type Function func(t float64) float64

// A Profile holds the precomputed segment table for a bounce easing curve.
// It is immutable once built and safe for concurrent use.
type Profile struct {
	decayRatio    float64
	restThreshold float64
	bounces       int
	durationUnits float64

	breakpoints []float64
	vertices    []float64
	scales      []float64
	baselines   []float64
}

// New builds a bounce easing function from the two shape parameters.
//
// decayRatio is the fraction of apex height retained from one bounce to the
// next, valid in [0,1). restThreshold is the apex-height fraction below
// which the curve is considered at rest. Invalid parameters are silently
// normalized: a NaN or >= 1 decay ratio becomes 0.5, a negative one is
// clamped to 0, and a NaN or non-positive threshold becomes 0.01.
func New(decayRatio, restThreshold float64) Function {
	return NewProfile(decayRatio, restThreshold).At
}

// NewProfile precomputes the segment table for the given shape parameters,
// applying the same parameter normalization as New.
func NewProfile(decayRatio, restThreshold float64) *Profile {
	p := new(Profile)
	p.decayRatio = normalizeDecayRatio(decayRatio)
	p.restThreshold = normalizeRestThreshold(restThreshold)
	p.precompute()
	return p
}

func normalizeDecayRatio(r float64) float64 {
	if math.IsNaN(r) || r >= 1 {
		// A ratio of 1 or more would make every bounce at least as high
		// as the last, so the curve would never settle.
		return defaultDecayRatio
	}
	if r < 0 {
		return 0
	}
	return r
}

func normalizeRestThreshold(h float64) float64 {
	if math.IsNaN(h) || h <= 0 {
		return defaultRestThreshold
	}
	return h
}

func (p *Profile) precompute() {
	// Count bounces until the apex height settles under the rest
	// threshold. Apex heights shrink with the squared power of the decay
	// ratio.
	apex := 1.0
	for apex > p.restThreshold {
		apex = math.Pow(p.decayRatio, float64(2*p.bounces))
		p.bounces++
	}

	// The initial fall lasts 1 unit; bounce k lasts decayRatio^k * 2
	// units. Durations shrink with the linear power of the decay ratio,
	// so lower bounces are both shorter and lower.
	p.durationUnits = 1
	for k := 1; k <= p.bounces; k++ {
		p.durationUnits += math.Pow(p.decayRatio, float64(k)) * 2
	}

	n := p.bounces + 1
	p.breakpoints = make([]float64, n)
	p.vertices = make([]float64, n)
	p.scales = make([]float64, n)
	p.baselines = make([]float64, n)

	// Segment 0 is the initial fall: a parabola rising from 0 at t=0 to
	// exactly 1 at the first impact.
	p.breakpoints[0] = 1 / p.durationUnits
	p.scales[0] = p.durationUnits * p.durationUnits

	for i := 1; i < n; i++ {
		width := math.Pow(p.decayRatio, float64(i)) * 2 / p.durationUnits
		half := width / 2
		depth := math.Pow(p.decayRatio, float64(2*i))

		p.breakpoints[i] = p.breakpoints[i-1] + width
		p.vertices[i] = p.breakpoints[i-1] + half
		p.baselines[i] = 1 - depth
		p.scales[i] = depth / (half * half)
	}

	// Accumulating geometric terms can leave the nominal end a few ulps
	// short of 1; pin it so the scan in At always lands on a segment for
	// any t < 1.
	p.breakpoints[n-1] = 1
}

// At evaluates the eased value at normalized time t. It is pure and safe to
// call from any goroutine.
func (p *Profile) At(t float64) float64 {
	if t >= 1 {
		return 1
	}
	i := 0
	for t >= p.breakpoints[i] {
		i++
	}
	d := t - p.vertices[i]
	return p.scales[i]*d*d + p.baselines[i]
}

// DecayRatio returns the normalized decay ratio the profile was built with.
func (p *Profile) DecayRatio() float64 {
	return p.decayRatio
}

// RestThreshold returns the normalized rest threshold the profile was built
// with.
func (p *Profile) RestThreshold() float64 {
	return p.restThreshold
}

// Bounces returns the number of bounce segments after the initial fall.
func (p *Profile) Bounces() int {
	return p.bounces
}

// DurationUnits returns the sum of unnormalized segment durations, where
// the initial fall counts as 1 unit.
func (p *Profile) DurationUnits() float64 {
	return p.durationUnits
}

// Breakpoints returns a copy of the normalized-time segment boundaries. The
// last entry is always exactly 1.
func (p *Profile) Breakpoints() []float64 {
	bp := make([]float64, len(p.breakpoints))
	copy(bp, p.breakpoints)
	return bp
}

package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/bouncetx/bounce"
)

const defaultPeriodMs = 4000

// A BounceBall is an Animation that drops a ball from the far end of the
// strip and lets it bounce to rest at pixel 0, following a bounce easing
// curve.
type BounceBall struct {
	eval        bounce.Function
	gradient    GradientTable
	backColour  colorful.Color
	numPixels   int
	periodMs    int64
	startMs     int64
	trailLength int
}

// NewBounceBall creates an instance of a BounceBall object.
func NewBounceBall(config Config, gradient GradientTable, runtimeMs int64) *BounceBall {
	b := new(BounceBall)
	b.eval = bounce.New(config.Bounce.DecayRatio, config.Bounce.RestThreshold)
	b.gradient = gradient
	b.backColour, _ = colorful.Hex("#000005")
	b.numPixels = config.Strip.NumPixels
	if b.numPixels <= 0 {
		b.numPixels = defaultNumPixels
	}
	if b.numPixels > maxNumPixels {
		b.numPixels = maxNumPixels
	}
	b.periodMs = config.Bounce.PeriodMs
	if b.periodMs <= 0 {
		b.periodMs = defaultPeriodMs
	}
	b.startMs = runtimeMs
	b.trailLength = b.numPixels / 10

	return b
}

// Position returns the ball's pixel position at the given runtime, counted
// from the rest end of the strip.
func (b *BounceBall) Position(runtimeMs int64) float64 {
	t := float64((runtimeMs-b.startMs)%b.periodMs) / float64(b.periodMs)
	return (1 - b.eval(t)) * float64(b.numPixels-1)
}

// CalculateFrame creates a new Frame instance.
func (b *BounceBall) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame(b.numPixels)
	f.Fill(b.backColour)

	// The trail streams out behind the ball, back toward the drop point.
	ball := int(math.Round(b.Position(runtimeMs)))
	for i := 0; i <= b.trailLength; i++ {
		p := ball + i
		if p < 0 || p >= b.numPixels {
			break
		}
		gain := 1 - float64(i)/float64(b.trailLength+1)
		c := b.gradient.GetColor(gain, 1.0, 0.05+(0.3*gain))
		f.pixels[p] = f.pixels[p].BlendHcl(c, gain)
	}

	return f
}

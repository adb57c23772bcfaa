package stream

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/bouncetx/bounce"
	"github.com/matt-g-everett/bouncetx/util"
)

type twinkleParticle struct {
	lut        []float64
	shape      func(float64) float64
	memoizer   *util.Memoizer
	current    int
	running    bool
	colour     colorful.Color
	NextColour colorful.Color
}

func newTwinkleParticle(colour colorful.Color, shape func(float64) float64, memoizer *util.Memoizer) *twinkleParticle {
	p := new(twinkleParticle)

	p.colour = colour
	p.NextColour = colour
	p.shape = shape
	p.memoizer = memoizer
	p.current = 0
	p.running = false

	p.updateLut()

	return p
}

func (p *twinkleParticle) updateLut() {
	p.lut = util.GenerateLutMemoized((rand.Intn(18)+6)*2, p.memoizer, p.shape)
}

func (p *twinkleParticle) increment() {
	if p.running {
		p.current++
		if p.current > len(p.lut)/2 {
			p.colour = p.NextColour
		}

		if p.current == len(p.lut)-1 {
			p.current = 0
			p.running = false

			// Re-roll the LUT length every time a scintillation finishes
			p.updateLut()
		}
	}
}

func (p *twinkleParticle) scintillate() bool {
	result := !p.running
	p.running = true
	return result
}

func (p *twinkleParticle) currentColour() colorful.Color {
	if p.running {
		gain := p.lut[p.current]
		h, c, l := p.colour.Hcl()

		// Calculate the difference to the max luminance we want
		lumDiff := 0.6 - l

		return colorful.Hcl(h, c, l+(lumDiff*gain))
	}

	return p.colour
}

// A BounceTwinkle is an Animation that scintillates random pixels, each one
// climbing to full brightness along a bounce easing curve and settling back
// down symmetrically.
type BounceTwinkle struct {
	backColours         []colorful.Color
	scintillationChance int32
	pixels              []*twinkleParticle
	shape               bounce.Function
	memoizer            *util.Memoizer
	numPixels           int
	runtimeMs           int64
}

// NewBounceTwinkle creates an instance of a BounceTwinkle object.
func NewBounceTwinkle(config Config, scintillationChance int32, backColours []colorful.Color, runtimeMs int64) *BounceTwinkle {
	t := new(BounceTwinkle)

	t.backColours = backColours
	t.scintillationChance = scintillationChance
	t.pixels = nil
	t.memoizer = &util.Memoizer{}
	t.numPixels = config.Strip.NumPixels
	t.runtimeMs = runtimeMs
	t.shape = bounce.New(config.Bounce.DecayRatio, config.Bounce.RestThreshold)

	return t
}

func (t *BounceTwinkle) getRandomBackColour() colorful.Color {
	return t.backColours[rand.Int31n(int32(len(t.backColours)))]
}

// CalculateFrame creates a new Frame instance.
func (t *BounceTwinkle) CalculateFrame(runtimeMs int64) *Frame {
	t.runtimeMs = runtimeMs

	f := NewFrame(t.numPixels)
	numPixels := len(f.pixels)

	// Initialise if we need to
	if t.pixels == nil {
		t.pixels = make([]*twinkleParticle, numPixels)
		for i := 0; i < numPixels; i++ {
			t.pixels[i] = newTwinkleParticle(t.getRandomBackColour(), t.shape, t.memoizer)
		}
	}

	for i := 0; i < numPixels; i++ {
		// Start scintillation by chance
		if rand.Int31n(t.scintillationChance) == 0 {
			if t.pixels[i].scintillate() {
				t.pixels[i].NextColour = t.getRandomBackColour()
			}
		}

		// Always increment, it'll only affect those pixels that are scintillating
		t.pixels[i].increment()

		f.pixels[i] = t.pixels[i].currentColour()
	}

	return f
}

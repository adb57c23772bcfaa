package stream

import (
	"sync"
	"time"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
)

// Controller that manages animations.
type Controller struct {
	// mu guards the transition state, which Run's ticker goroutine
	// mutates while the streamer loop calculates frames.
	mu sync.Mutex

	config Config
	animations []Animation
	current int
	nextAnimation Animation
	animationTime time.Duration
	runtimeMs int64
	frameRate float64
	transition float64
	transitionTimeSecs float64
	transitionIncrement float64
}

// NewController creates an instance of a Controller.
func NewController(config Config, runtimeMs int64, frameRate float64, animationTime time.Duration) *Controller {

	c := new(Controller)

	backColours := []colorful.Color{
		{R: 0.45, G: -0.54, B: 0.02}, // Pink
		{R: 0.23, G: 0.04, B: -0.87}, // Orange
		colorful.Hcl(280.0, 1.0, 0.06)} // Blue

	gradient := GradientTable{
		{30.0, 0.0}, // Amber tail
		{60.0, 0.5}, // Yellow
		{80.0, 1.0}, // White-hot ball
	}

	c.config = config
	c.animations = []Animation{
		NewBounceBall(config, gradient, runtimeMs),
		NewBounceTwinkle(config, 400, backColours, runtimeMs),
	}
	c.current = 0
	c.nextAnimation = nil
	c.animationTime = animationTime

	c.runtimeMs = runtimeMs
	c.frameRate = frameRate
	c.transition = 0.0
	c.transitionTimeSecs = 5.0
	c.transitionIncrement = 1.0 / (c.frameRate * c.transitionTimeSecs)

	return c
}

func (c *Controller) CalculateFrame(runtimeMs int64) (*Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var f *Frame
	c.runtimeMs = runtimeMs
	if c.nextAnimation != nil {
		f1 := c.animations[c.current].CalculateFrame(runtimeMs)
		f2 := c.nextAnimation.CalculateFrame(runtimeMs)
		f = f1.InterpolateFrame(f2, ease.InOutQuad(c.transition))
		c.transition += c.transitionIncrement

		if c.transition >= 1.0 {
			c.current = (c.current + 1) % len(c.animations)
			c.nextAnimation = nil
			c.transition = 0.0
		}
	} else {
		f = c.animations[c.current].CalculateFrame(runtimeMs)
	}

	return f
}

func (c *Controller) cycleAnimation() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextAnimation = c.animations[(c.current+1)%len(c.animations)]
}

// Run causes the Controller to cycle through animations.
func (c *Controller) Run() {
	publishTimer := time.NewTicker(c.animationTime)
	for {
		<-publishTimer.C
		c.cycleAnimation()
	}
}

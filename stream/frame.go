package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	defaultNumPixels = 500

	// maxNumPixels is the most the wire format can carry: the frame
	// header holds the pixel count as a uint16.
	maxNumPixels = 65535
)

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a Frame with the given number of pixels.
func NewFrame(numPixels int) *Frame {
	if numPixels <= 0 {
		numPixels = defaultNumPixels
	}
	if numPixels > maxNumPixels {
		numPixels = maxNumPixels
	}
	f := new(Frame)
	f.pixels = make([]colorful.Color, numPixels)
	return f
}

// Fill sets every pixel to the given colour.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// InterpolateFrame merges two frames at the given transition point.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame(len(f.pixels))
	for i := 0; i < len(f.pixels); i++ {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], transitionPoint)
	}

	return out
}

// MarshalBinary converts a Frame into binary data.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	numPixels := len(f.pixels)
	data = make([]byte, 2, (numPixels*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(numPixels))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}

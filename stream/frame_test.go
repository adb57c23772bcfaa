package stream

import (
	"encoding/binary"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestFrameMarshalBinary(t *testing.T) {
	f := NewFrame(4)
	f.pixels[0] = colorful.Color{R: 1, G: 0, B: 0}
	f.pixels[3] = colorful.Color{R: 0, G: 0, B: 1}

	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}

	if len(data) != 2+4*3 {
		t.Fatalf("Expected %d bytes, got %d", 2+4*3, len(data))
	}
	if n := binary.LittleEndian.Uint16(data); n != 4 {
		t.Errorf("Expected pixel count header of 4, got %d", n)
	}
	if data[2] != 255 || data[3] != 0 || data[4] != 0 {
		t.Errorf("Expected red first pixel, got (%d, %d, %d)", data[2], data[3], data[4])
	}
	if data[11] != 0 || data[12] != 0 || data[13] != 255 {
		t.Errorf("Expected blue last pixel, got (%d, %d, %d)", data[11], data[12], data[13])
	}
}

func TestFrameMarshalBinaryClampsOutOfGamut(t *testing.T) {
	f := NewFrame(1)
	f.pixels[0] = colorful.Color{R: 1.8, G: -0.5, B: 0.5}

	data, _ := f.MarshalBinary()
	if data[2] != 255 || data[3] != 0 {
		t.Errorf("Expected out-of-gamut channels clamped, got (%d, %d, %d)", data[2], data[3], data[4])
	}
}

func TestNewFrameDefaultsPixelCount(t *testing.T) {
	f := NewFrame(0)
	if len(f.pixels) != defaultNumPixels {
		t.Errorf("Expected %d pixels, got %d", defaultNumPixels, len(f.pixels))
	}
}

func TestNewFrameCapsPixelCountAtWireFormatLimit(t *testing.T) {
	f := NewFrame(70000)
	if len(f.pixels) != maxNumPixels {
		t.Fatalf("Expected %d pixels, got %d", maxNumPixels, len(f.pixels))
	}

	data, _ := f.MarshalBinary()
	if n := binary.LittleEndian.Uint16(data); int(n) != maxNumPixels {
		t.Errorf("Header should carry the capped count %d, got %d", maxNumPixels, n)
	}
	if len(data) != 2+maxNumPixels*3 {
		t.Errorf("Expected %d bytes, got %d", 2+maxNumPixels*3, len(data))
	}
}

func TestInterpolateFrameEndpoints(t *testing.T) {
	a := NewFrame(3)
	b := NewFrame(3)
	red := colorful.Color{R: 1, G: 0, B: 0}
	blue := colorful.Color{R: 0, G: 0, B: 1}
	a.Fill(red)
	b.Fill(blue)

	// Blending runs through HCL space, so allow a little round-trip error.
	start := a.InterpolateFrame(b, 0)
	if start.pixels[1].DistanceRgb(red) > 0.01 {
		t.Errorf("Transition point 0 should keep the first frame, got %+v", start.pixels[1])
	}

	end := a.InterpolateFrame(b, 1)
	if end.pixels[1].DistanceRgb(blue) > 0.01 {
		t.Errorf("Transition point 1 should reach the second frame, got %+v", end.pixels[1])
	}
}

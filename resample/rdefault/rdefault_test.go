package rdefault_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devpx/devpx/density"
	"github.com/devpx/devpx/resample/rdefault"
	"github.com/devpx/devpx/scale"
)

func newScaler(t *testing.T, dpi float64) *scale.Scaler {
	t.Helper()
	s, err := scale.New(
		scale.SetDensityProvider(density.Static(dpi, dpi)),
		scale.SetBlitter(&rdefault.Blitter{}),
	)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDefaultChainFormats(t *testing.T) {
	// every format must come out at the requested size, whichever
	// backend ends up serving it
	for _, src := range []image.Image{
		image.NewRGBA(image.Rect(0, 0, 12, 12)),
		image.NewNRGBA(image.Rect(0, 0, 12, 12)),
		image.NewGray(image.Rect(0, 0, 12, 12)),
		image.NewYCbCr(image.Rect(0, 0, 12, 12), image.YCbCrSubsampleRatio420),
		image.NewCMYK(image.Rect(0, 0, 12, 12)),
	} {
		s := newScaler(t, 144)
		m, err := s.RescaleToDevice(src)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, scale.Size{W: 18, H: 18}, scale.SizeOf(m), `%T`, src)
	}
}

func TestDefaultChainNearest(t *testing.T) {
	// nearest always goes through the transform backend
	s := newScaler(t, 192)
	m, err := s.RescaleToDevice(image.NewRGBA(image.Rect(0, 0, 5, 5)))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, scale.Size{W: 10, H: 10}, scale.SizeOf(m))
}

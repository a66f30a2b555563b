package scale_test

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devpx/devpx/density"
	"github.com/devpx/devpx/internal/consts"
	"github.com/devpx/devpx/internal/errors"
	"github.com/devpx/devpx/scale"
)

type capturedBlit struct {
	dstRect scale.Rect
	srcRect scale.Rect
	algo    scale.Algorithm
}

type captureBlitter struct {
	blits []capturedBlit
}

var _ scale.Blitter = (*captureBlitter)(nil)

func (b *captureBlitter) Blit(dst draw.Image, dstRect scale.Rect, src image.Image, srcRect scale.Rect, algo scale.Algorithm) error {
	b.blits = append(b.blits, capturedBlit{dstRect: dstRect, srcRect: srcRect, algo: algo})
	return nil
}

func newCaptureScaler(t *testing.T, dpiX, dpiY float64) (*scale.Scaler, *captureBlitter) {
	t.Helper()
	bl := &captureBlitter{}
	s, err := scale.New(
		scale.SetDensityProvider(density.Static(dpiX, dpiY)),
		scale.SetBlitter(bl),
	)
	if err != nil {
		t.Fatal(err)
	}
	return s, bl
}

func TestHalfPixelCorrection(t *testing.T) {
	// both rectangle origins are shifted by exactly (-0.5, -0.5) for
	// every algorithm/factor combination
	for _, dpi := range []float64{72, 96, 120, 144, 192} {
		s, bl := newCaptureScaler(t, dpi, dpi)
		src := image.NewRGBA(image.Rect(0, 0, 10, 10))
		m, err := s.Rescale(src, scale.Size{W: 17, H: 23})
		if err != nil {
			t.Fatal(err)
		}
		assert.NotNil(t, m)
		if !assert.Len(t, bl.blits, 1) {
			continue
		}
		blit := bl.blits[0]
		assert.Equal(t, scale.Rect{X: -0.5, Y: -0.5, W: 17, H: 23}, blit.dstRect, `dpi %g`, dpi)
		assert.Equal(t, scale.Rect{X: -0.5, Y: -0.5, W: 10, H: 10}, blit.srcRect, `dpi %g`, dpi)
		assert.Equal(t, s.Algorithm(), blit.algo)
	}
}

func TestRescaleDimensionLaw(t *testing.T) {
	s := newScaler(t, 144, 144)
	for _, target := range []scale.Size{
		{W: 1, H: 1}, {W: 7, H: 13}, {W: 11, H: 20}, {W: 640, H: 480},
	} {
		m, err := s.Rescale(image.NewRGBA(image.Rect(0, 0, 10, 10)), target)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, target, scale.SizeOf(m))
	}
}

func TestRescaleToDeviceSize(t *testing.T) {
	s := newScaler(t, 144, 144)
	m, err := s.RescaleToDevice(image.NewRGBA(image.Rect(0, 0, 10, 20)))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, scale.Size{W: 15, H: 30}, scale.SizeOf(m))

	s = newScaler(t, 96, 96)
	m, err = s.RescaleToDevice(image.NewRGBA(image.Rect(0, 0, 10, 20)))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, scale.Size{W: 10, H: 20}, scale.SizeOf(m))
}

func TestRescaleNilSource(t *testing.T) {
	s, bl := newCaptureScaler(t, 144, 144)

	m, err := s.Rescale(nil, scale.Size{W: 10, H: 10})
	assert.NoError(t, err)
	assert.Nil(t, m)

	m, err = s.RescaleToDevice(nil)
	assert.NoError(t, err)
	assert.Nil(t, m)

	assert.NoError(t, s.RescaleInPlace(nil))
	var img image.Image
	assert.NoError(t, s.RescaleInPlace(&img))
	assert.Nil(t, img)

	assert.Empty(t, bl.blits)
}

func TestRescaleInPlace(t *testing.T) {
	s := newScaler(t, 192, 192)
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	img := image.Image(src)
	if err := s.RescaleInPlace(&img); err != nil {
		t.Fatal(err)
	}
	assert.NotSame(t, src, img)
	assert.Equal(t, scale.Size{W: 20, H: 20}, scale.SizeOf(img))
}

func TestRescaleSourceNotMutated(t *testing.T) {
	s := newScaler(t, 144, 144)
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{R: uint8(16 * x), G: uint8(16 * y), B: 7, A: 255})
		}
	}
	before := make([]uint8, len(src.Pix))
	copy(before, src.Pix)
	if _, err := s.RescaleToDevice(src); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, before, src.Pix)
}

func TestRescalePreservesFormat(t *testing.T) {
	s := newScaler(t, 144, 144)
	target := scale.Size{W: 6, H: 6}

	m, err := s.Rescale(image.NewNRGBA(image.Rect(0, 0, 4, 4)), target)
	if err != nil {
		t.Fatal(err)
	}
	assert.IsType(t, &image.NRGBA{}, m)

	m, err = s.Rescale(image.NewGray(image.Rect(0, 0, 4, 4)), target)
	if err != nil {
		t.Fatal(err)
	}
	assert.IsType(t, &image.Gray{}, m)

	// formats without a drawable counterpart degrade to RGBA
	m, err = s.Rescale(image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio420), target)
	if err != nil {
		t.Fatal(err)
	}
	assert.IsType(t, &image.RGBA{}, m)
}

type errorBlitter struct{}

func (errorBlitter) Blit(dst draw.Image, dstRect scale.Rect, src image.Image, srcRect scale.Rect, algo scale.Algorithm) error {
	return errors.New(consts.ErrAlgorithmUnsupported)
}

func TestRescaleBlitError(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, err := scale.New(
		scale.SetDensityProvider(density.Static(144, 144)),
		scale.SetBlitter(errorBlitter{}),
		scale.SetLogger(logger),
	)
	if err != nil {
		t.Fatal(err)
	}
	m, err := s.Rescale(image.NewRGBA(image.Rect(0, 0, 4, 4)), scale.Size{W: 6, H: 6})
	assert.Nil(t, m)
	assert.True(t, errors.Is(err, consts.ErrAlgorithmUnsupported))
	// the failure is logged on the way out
	assert.True(t, strings.Contains(buf.String(), consts.ErrAlgorithmUnsupported.Error()))
}

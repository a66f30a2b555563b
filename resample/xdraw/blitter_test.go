package xdraw_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devpx/devpx/density"
	"github.com/devpx/devpx/resample/xdraw"
	"github.com/devpx/devpx/scale"
)

func newScaler(t *testing.T, dpi float64) *scale.Scaler {
	t.Helper()
	s, err := scale.New(
		scale.SetDensityProvider(density.Static(dpi, dpi)),
		scale.SetBlitter(xdraw.New()),
	)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestIdentityAtReference(t *testing.T) {
	s := newScaler(t, 96)
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, color.RGBA{R: uint8(32 * x), G: uint8(32 * y), B: uint8(x * y), A: 255})
		}
	}
	m, err := s.RescaleToDevice(src)
	if err != nil {
		t.Fatal(err)
	}
	dst, ok := m.(*image.RGBA)
	if !ok {
		t.Fatalf(`expected *image.RGBA, got %T`, m)
	}
	assert.Equal(t, src.Pix, dst.Pix)
}

func TestNearestBlockDuplication(t *testing.T) {
	s := newScaler(t, 192)
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	colors := [2][2]color.RGBA{
		{{R: 255, A: 255}, {G: 255, A: 255}},
		{{B: 255, A: 255}, {R: 255, G: 255, A: 255}},
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.Set(x, y, colors[y][x])
		}
	}
	m, err := s.RescaleToDevice(src)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, scale.Size{W: 4, H: 4}, scale.SizeOf(m))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := colors[y/2][x/2]
			got := color.RGBAModel.Convert(m.At(x, y)).(color.RGBA)
			assert.Equal(t, want, got, `pixel %d,%d`, x, y)
		}
	}
}

// uniformDelta is the per-channel tolerance for the smooth kernels'
// fixed-point arithmetic.
const uniformDelta = 1

func TestNoEdgeArtifacts(t *testing.T) {
	// a uniform white image must stay uniform white after rescaling;
	// without the half-pixel correction the rightmost and bottommost
	// rows sample past the source edge and darken
	for _, dpi := range []float64{72, 120, 144, 168} {
		s := newScaler(t, dpi)
		src := image.NewRGBA(image.Rect(0, 0, 16, 16))
		for i := range src.Pix {
			src.Pix[i] = 0xff
		}
		m, err := s.RescaleToDevice(src)
		if err != nil {
			t.Fatal(err)
		}
		b := m.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bb, a := m.At(x, y).RGBA()
				for _, ch := range []uint32{r, g, bb, a} {
					assert.InDelta(t, 0xffff, float64(ch), uniformDelta*257+1,
						`dpi %g pixel %d,%d`, dpi, x, y)
				}
			}
		}
	}
}

func TestBlitReadsOnlySourceRect(t *testing.T) {
	// the kernels clamp at the source rectangle instead of blending in
	// pixels beyond it
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			if x >= 2 {
				c = color.RGBA{A: 255}
			}
			src.Set(x, y, c)
		}
	}
	for _, algo := range []scale.Algorithm{scale.Nearest, scale.Linear, scale.Cubic} {
		dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
		err := xdraw.New().Blit(dst,
			scale.Rect{X: 0, Y: 0, W: 4, H: 4}, src,
			scale.Rect{X: 0, Y: 0, W: 2, H: 4}, algo)
		if err != nil {
			t.Fatal(err)
		}
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				r, g, b, a := dst.At(x, y).RGBA()
				for _, ch := range []uint32{r, g, b, a} {
					assert.Equal(t, uint32(0xffff), ch, `algorithm %s pixel %d,%d`, algo, x, y)
				}
			}
		}
	}
}

func TestBlitNilImages(t *testing.T) {
	err := xdraw.New().Blit(nil, scale.Rect{W: 4, H: 4}, nil, scale.Rect{W: 4, H: 4}, scale.Nearest)
	assert.Error(t, err)
}

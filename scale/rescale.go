package scale

import (
	"image"
	"image/draw"
	"log/slog"
	"math"

	"github.com/devpx/devpx/internal/consts"
	"github.com/devpx/devpx/internal/errors"
	"github.com/devpx/devpx/internal/logx"
)

// Blitter copies a source rectangle onto a destination rectangle while
// resampling with the given algorithm. Implementations live in the
// resample subpackages; a Scaler without one falls back to plain
// nearest-neighbor sampling.
type Blitter interface {
	Blit(dst draw.Image, dstRect Rect, src image.Image, srcRect Rect, algo Algorithm) error
}

// halfPixelOffset is applied to both blit rectangle origins. The blit
// primitive addresses a source pixel by its top-left corner while the
// correct sampling position is the pixel center; without the shift the
// rightmost and bottommost destination rows sample past the true source
// edge and pick up the background color as a dark border. The artifact
// only shows for certain algorithm/factor combinations, the shift is
// applied unconditionally as the one correction safe for all of them.
const halfPixelOffset = -0.5

// Rescale resamples src into a newly allocated bitmap of the given device
// pixel size, using the display's selected algorithm. The source is never
// mutated. A nil source passes through as (nil, nil) so that optional
// images can be routed through uniformly.
func (s *Scaler) Rescale(src image.Image, target Size) (image.Image, error) {
	if s == nil {
		return nil, errors.New(consts.ErrNilReceiver)
	}
	if src == nil {
		return nil, nil
	}
	algo := s.Algorithm()
	dst := newCompatible(src, target.W, target.H)
	dstRect := RectForSize(target).Offset(halfPixelOffset, halfPixelOffset)
	srcRect := RectForBounds(src.Bounds()).Offset(halfPixelOffset, halfPixelOffset)
	bl := s.blitter
	if bl == nil {
		bl = blitterFallback{}
	}
	logx.Debug(`rescaling bitmap`, s,
		`source`, SizeOf(src), `target`, target, `algorithm`, algo)
	if err := bl.Blit(dst, dstRect, src, srcRect, algo); err != nil {
		return nil, logx.Err(errors.New(err), s, slog.LevelError)
	}
	return dst, nil
}

// RescaleToDevice resamples src from logical to device units,
// deriving the target size via ToDeviceSize.
func (s *Scaler) RescaleToDevice(src image.Image) (image.Image, error) {
	if s == nil {
		return nil, errors.New(consts.ErrNilReceiver)
	}
	if src == nil {
		return nil, nil
	}
	return s.Rescale(src, s.ToDeviceSize(SizeOf(src)))
}

// RescaleInPlace replaces the caller-held image with its device-unit
// rescale. The superseded image is left to the garbage collector.
func (s *Scaler) RescaleInPlace(img *image.Image) error {
	if s == nil {
		return errors.New(consts.ErrNilReceiver)
	}
	if img == nil || *img == nil {
		return nil
	}
	m, err := s.RescaleToDevice(*img)
	if err != nil {
		return err
	}
	if m != nil {
		*img = m
	}
	return nil
}

// newCompatible allocates a drawable buffer of the same pixel format
// family as src. Formats without a drawable counterpart get RGBA.
func newCompatible(src image.Image, w, h int) draw.Image {
	r := image.Rect(0, 0, w, h)
	switch src.(type) {
	case *image.RGBA:
		return image.NewRGBA(r)
	case *image.NRGBA:
		return image.NewNRGBA(r)
	case *image.RGBA64:
		return image.NewRGBA64(r)
	case *image.NRGBA64:
		return image.NewNRGBA64(r)
	case *image.Gray:
		return image.NewGray(r)
	case *image.Gray16:
		return image.NewGray16(r)
	case *image.CMYK:
		return image.NewCMYK(r)
	case *image.Alpha:
		return image.NewAlpha(r)
	case *image.Alpha16:
		return image.NewAlpha16(r)
	default:
		// YCbCr, Paletted, ...
		return image.NewRGBA(r)
	}
}

var _ Blitter = blitterFallback{}

// blitterFallback samples nearest-neighbor only,
// regardless of the requested algorithm.
type blitterFallback struct{}

func (blitterFallback) Blit(dst draw.Image, dstRect Rect, src image.Image, srcRect Rect, _ Algorithm) error {
	if err := errors.NilParam(dst, src); err != nil {
		return err
	}
	if dstRect.W <= 0 || dstRect.H <= 0 {
		return nil
	}
	sxScale := srcRect.W / dstRect.W
	syScale := srcRect.H / dstRect.H
	db := dst.Bounds()
	sb := src.Bounds()
	for y := db.Min.Y; y < db.Max.Y; y++ {
		sy := srcRect.Y + (float64(y)+0.5-dstRect.Y)*syScale
		yy := clamp(int(math.Floor(sy)), sb.Min.Y, sb.Max.Y-1)
		for x := db.Min.X; x < db.Max.X; x++ {
			sx := srcRect.X + (float64(x)+0.5-dstRect.X)*sxScale
			xx := clamp(int(math.Floor(sx)), sb.Min.X, sb.Max.X-1)
			dst.Set(x, y, src.At(xx, yy))
		}
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

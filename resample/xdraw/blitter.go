// Package xdraw provides a blitter implementation using golang.org/x/image/draw.
// It is the default backend and the only one that honors sub-pixel rectangle
// origins exactly, via an affine source-to-destination transform.
package xdraw

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/devpx/devpx/internal/consts"
	"github.com/devpx/devpx/internal/errors"
	"github.com/devpx/devpx/resample"
	"github.com/devpx/devpx/scale"
)

// blitter uses "golang.org/x/image/draw"
type blitter struct {
	nearest xdraw.Interpolator
	linear  xdraw.Interpolator
	cubic   xdraw.Interpolator
}

var _ scale.Blitter = (*blitter)(nil)

// New creates the default blitter: NearestNeighbor, BiLinear and CatmullRom
// backing the nearest, linear and cubic algorithms.
func New() scale.Blitter {
	return &blitter{
		nearest: xdraw.NearestNeighbor,
		linear:  xdraw.BiLinear,
		cubic:   xdraw.CatmullRom,
	}
}

// Fast creates a blitter that trades quality for speed, backing both smooth
// algorithms with ApproxBiLinear.
func Fast() scale.Blitter {
	return &blitter{
		nearest: xdraw.NearestNeighbor,
		linear:  xdraw.ApproxBiLinear,
		cubic:   xdraw.ApproxBiLinear,
	}
}

// Blit resamples srcRect of src onto dstRect of dst.
func (b *blitter) Blit(dst draw.Image, dstRect scale.Rect, src image.Image, srcRect scale.Rect, algo scale.Algorithm) error {
	if b == nil {
		return errors.New(consts.ErrNilReceiver)
	}
	if err := errors.NilParam(dst, src); err != nil {
		return err
	}
	if srcRect.W == 0 || srcRect.H == 0 || dstRect.W == 0 || dstRect.H == 0 {
		return nil
	}
	var interp xdraw.Interpolator
	switch algo {
	case scale.Nearest:
		interp = b.nearest
	case scale.Linear:
		interp = b.linear
	case scale.Cubic:
		interp = b.cubic
	default:
		return errors.New(consts.ErrAlgorithmUnsupported)
	}
	sx := dstRect.W / srcRect.W
	sy := dstRect.H / srcRect.H
	// source-to-destination map carrying the fractional origins
	s2d := f64.Aff3{
		sx, 0, dstRect.X - sx*srcRect.X,
		0, sy, dstRect.Y - sy*srcRect.Y,
	}
	// the readable part of the source is srcRect snapped to the pixel
	// grid, so that the kernels clamp at the rectangle instead of
	// bleeding in neighboring pixels
	sr := resample.AlignedRect(srcRect).Intersect(src.Bounds())
	if sr.Empty() {
		return nil
	}
	interp.Transform(dst, s2d, src, sr, xdraw.Src, nil)
	return nil
}

package nfnt

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"

	"github.com/devpx/devpx/internal/consts"
	"github.com/devpx/devpx/internal/errors"
	"github.com/devpx/devpx/resample"
	"github.com/devpx/devpx/scale"
)

// Blitter uses "github.com/nfnt/resize"
type Blitter struct{}

var _ scale.Blitter = (*Blitter)(nil)

// Blit ...
func (b *Blitter) Blit(dst draw.Image, dstRect scale.Rect, src image.Image, srcRect scale.Rect, algo scale.Algorithm) error {
	if err := errors.NilParam(dst, src); err != nil {
		return err
	}
	var interp resize.InterpolationFunction
	switch algo {
	case scale.Nearest:
		interp = resize.NearestNeighbor
	case scale.Linear:
		interp = resize.Bilinear
	case scale.Cubic:
		interp = resize.Bicubic
	default:
		return errors.New(consts.ErrAlgorithmUnsupported)
	}
	r := resample.AlignedRect(dstRect)
	m := resize.Resize(uint(r.Dx()), uint(r.Dy()), resample.CropAligned(src, srcRect), interp)
	resample.Compose(dst, dstRect, m)
	return nil
}

package bild

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"

	"github.com/devpx/devpx/internal/consts"
	"github.com/devpx/devpx/internal/errors"
	"github.com/devpx/devpx/resample"
	"github.com/devpx/devpx/scale"
)

// Blitter uses "github.com/anthonynsimon/bild/transform"
type Blitter struct{}

var _ scale.Blitter = (*Blitter)(nil)

// Blit ...
func (b *Blitter) Blit(dst draw.Image, dstRect scale.Rect, src image.Image, srcRect scale.Rect, algo scale.Algorithm) error {
	if err := errors.NilParam(dst, src); err != nil {
		return err
	}
	var filter transform.ResampleFilter
	switch algo {
	case scale.Nearest:
		filter = transform.NearestNeighbor
	case scale.Linear:
		filter = transform.Linear
	case scale.Cubic:
		filter = transform.CatmullRom
	default:
		return errors.New(consts.ErrAlgorithmUnsupported)
	}
	r := resample.AlignedRect(dstRect)
	m := transform.Resize(resample.CropAligned(src, srcRect), r.Dx(), r.Dy(), filter)
	resample.Compose(dst, dstRect, m)
	return nil
}

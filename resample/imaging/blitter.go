package imaging

import (
	"image"
	"image/draw"

	"github.com/kovidgoyal/imaging"

	"github.com/devpx/devpx/internal/consts"
	"github.com/devpx/devpx/internal/errors"
	"github.com/devpx/devpx/resample"
	"github.com/devpx/devpx/scale"
)

// Blitter uses "github.com/kovidgoyal/imaging"
type Blitter struct{}

var _ scale.Blitter = (*Blitter)(nil)

// Blit ...
func (b *Blitter) Blit(dst draw.Image, dstRect scale.Rect, src image.Image, srcRect scale.Rect, algo scale.Algorithm) error {
	if err := errors.NilParam(dst, src); err != nil {
		return err
	}
	var filter imaging.ResampleFilter
	switch algo {
	case scale.Nearest:
		filter = imaging.NearestNeighbor
	case scale.Linear:
		filter = imaging.Linear
	case scale.Cubic:
		filter = imaging.CatmullRom
	default:
		return errors.New(consts.ErrAlgorithmUnsupported)
	}
	r := resample.AlignedRect(dstRect)
	m := imaging.Resize(resample.CropAligned(src, srcRect), r.Dx(), r.Dy(), filter)
	resample.Compose(dst, dstRect, m)
	return nil
}

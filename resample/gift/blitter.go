package gift

import (
	"image"
	"image/draw"

	"github.com/disintegration/gift"

	"github.com/devpx/devpx/internal/consts"
	"github.com/devpx/devpx/internal/errors"
	"github.com/devpx/devpx/resample"
	"github.com/devpx/devpx/scale"
)

// Blitter uses "github.com/disintegration/gift"
type Blitter struct{}

var _ scale.Blitter = (*Blitter)(nil)

// Blit ...
func (b *Blitter) Blit(dst draw.Image, dstRect scale.Rect, src image.Image, srcRect scale.Rect, algo scale.Algorithm) error {
	if err := errors.NilParam(dst, src); err != nil {
		return err
	}
	var resampling gift.Resampling
	switch algo {
	case scale.Nearest:
		resampling = gift.NearestNeighborResampling
	case scale.Linear:
		resampling = gift.LinearResampling
	case scale.Cubic:
		resampling = gift.CubicResampling
	default:
		return errors.New(consts.ErrAlgorithmUnsupported)
	}
	r := resample.AlignedRect(dstRect)
	m := image.NewNRGBA(image.Rectangle{Max: image.Point{X: r.Dx(), Y: r.Dy()}})
	gift.Resize(r.Dx(), r.Dy(), resampling).
		Draw(m, resample.CropAligned(src, srcRect), &gift.Options{Parallelization: true})
	resample.Compose(dst, dstRect, m)
	return nil
}

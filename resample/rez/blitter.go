package rez

import (
	"image"
	"image/draw"

	"github.com/bamiaux/rez"

	"github.com/devpx/devpx/internal/consts"
	"github.com/devpx/devpx/internal/errors"
	"github.com/devpx/devpx/resample"
	"github.com/devpx/devpx/scale"
)

// Blitter uses "github.com/bamiaux/rez". rez converts between buffers of
// the same pixel format and has no nearest-neighbor kernel; unsupported
// combinations return an error so that chained backends can fall through.
type Blitter struct{}

var _ scale.Blitter = (*Blitter)(nil)

// Blit ...
func (b *Blitter) Blit(dst draw.Image, dstRect scale.Rect, src image.Image, srcRect scale.Rect, algo scale.Algorithm) error {
	if err := errors.NilParam(dst, src); err != nil {
		return err
	}
	var filter rez.Filter
	switch algo {
	case scale.Linear:
		filter = rez.NewBilinearFilter()
	case scale.Cubic:
		filter = rez.NewBicubicFilter()
	default:
		return errors.New(consts.ErrAlgorithmUnsupported)
	}
	r := resample.AlignedRect(dstRect)
	cropped := resample.CropAligned(src, srcRect)
	bounds := image.Rect(0, 0, r.Dx(), r.Dy())
	var m image.Image
	switch it := cropped.(type) {
	case *image.RGBA:
		m = image.NewRGBA(bounds)
	case *image.NRGBA:
		m = image.NewNRGBA(bounds)
	case *image.Gray:
		m = image.NewGray(bounds)
	case *image.YCbCr:
		m = image.NewYCbCr(bounds, it.SubsampleRatio)
	default:
		return errors.New(consts.ErrFormatUnsupported)
	}
	if err := rez.Convert(m, cropped, filter); err != nil {
		return errors.New(err)
	}
	resample.Compose(dst, dstRect, m)
	return nil
}

package rdefault

import (
	"image"
	"image/draw"
	"runtime"

	"github.com/devpx/devpx/resample/rez"
	"github.com/devpx/devpx/resample/xdraw"
	"github.com/devpx/devpx/scale"
)

// Blitter is the default backend chain: SIMD resampling via rez where the
// architecture, pixel format and algorithm allow it, x/image/draw otherwise.
type Blitter struct{}

var _ scale.Blitter = (*Blitter)(nil)

func (b *Blitter) Blit(dst draw.Image, dstRect scale.Rect, src image.Image, srcRect scale.Rect, algo scale.Algorithm) error {
	if runtime.GOARCH == `amd64` && algo != scale.Nearest {
		switch src.(type) {
		case *image.YCbCr, *image.RGBA, *image.NRGBA, *image.Gray:
			// use SIMD assembly if possible
			if err := (&rez.Blitter{}).Blit(dst, dstRect, src, srcRect, algo); err == nil {
				return nil
			}
		}
	}
	return xdraw.New().Blit(dst, dstRect, src, srcRect, algo)
}

// Package resample hosts the blitter backends, one subpackage per
// resampling library, plus shared rectangle plumbing for backends that
// can only resample whole images.
package resample

import (
	"image"
	"image/draw"
	"math"

	"github.com/devpx/devpx/scale"
)

// AlignedRect snaps a sub-pixel rectangle to the integer pixel grid.
// Origin offsets smaller than half a pixel collapse; the whole-image
// backends sample at pixel centers themselves, so nothing is lost.
func AlignedRect(r scale.Rect) image.Rectangle {
	return image.Rect(align(r.X), align(r.Y), align(r.X+r.W), align(r.Y+r.H))
}

func align(v float64) int { return int(math.Floor(v + 0.5)) }

// CropAligned returns the part of src covered by srcRect. The original
// image is returned when the rectangle covers it fully or the image type
// cannot be cropped without copying.
func CropAligned(src image.Image, srcRect scale.Rect) image.Image {
	r := AlignedRect(srcRect)
	if src == nil || r == src.Bounds() {
		return src
	}
	type subImager interface {
		SubImage(image.Rectangle) image.Image
	}
	if s, ok := src.(subImager); ok {
		return s.SubImage(r.Intersect(src.Bounds()))
	}
	return src
}

// Compose copies a fully resampled image onto dstRect of dst.
func Compose(dst draw.Image, dstRect scale.Rect, resampled image.Image) {
	if dst == nil || resampled == nil {
		return
	}
	draw.Draw(dst, AlignedRect(dstRect), resampled, resampled.Bounds().Min, draw.Src)
}

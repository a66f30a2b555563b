package scale

import (
	"fmt"
	"image"
)

// Size is a width/height pair, either in logical or in device units.
type Size struct {
	W int
	H int
}

// SizeOf returns the pixel size of an image. A nil image has zero size.
func SizeOf(img image.Image) Size {
	if img == nil {
		return Size{}
	}
	b := img.Bounds()
	return Size{W: b.Dx(), H: b.Dy()}
}

func (s Size) Pt() image.Point { return image.Point{X: s.W, Y: s.H} }

func (s Size) String() string { return fmt.Sprintf(`%dx%d`, s.W, s.H) }

package scale

import (
	"image"
)

// Rect is a rectangle with sub-pixel precision, as consumed by Blitter
// implementations. X, Y is the origin, W, H the extent.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// RectForSize is the rectangle [0,0,W,H].
func RectForSize(size Size) Rect {
	return Rect{W: float64(size.W), H: float64(size.H)}
}

// RectForBounds converts integer image bounds.
func RectForBounds(b image.Rectangle) Rect {
	return Rect{
		X: float64(b.Min.X),
		Y: float64(b.Min.Y),
		W: float64(b.Dx()),
		H: float64(b.Dy()),
	}
}

// Offset returns the rectangle with its origin shifted by (dx, dy).
// The extent is unchanged.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

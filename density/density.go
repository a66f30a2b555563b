// Package density reports the pixel density of the primary display.
package density

// Reference is the density at which logical and device units coincide.
const Reference = 96.0

// Density is the pixel density of a display in dots per inch, per axis.
type Density struct {
	X float64
	Y float64
}

// IsReference reports whether no scaling is needed for this density.
// The comparison is exact: a display matching the reference on one
// axis only still requires scaling.
func (d Density) IsReference() bool { return d.X == Reference && d.Y == Reference }

// Fallback is the density assumed when the display cannot be queried.
func Fallback() Density { return Density{X: Reference, Y: Reference} }

// Provider queries the primary display's pixel density.
// A failed query returns a non-nil error; the caller substitutes
// Fallback() - errors never travel further up.
type Provider interface {
	Sample() (Density, error)
}

var _ Provider = (*staticProvider)(nil)

type staticProvider struct{ d Density }

func (p *staticProvider) Sample() (Density, error) { return p.d, nil }

// Static returns a Provider that always reports the given density.
func Static(dpiX, dpiY float64) Provider {
	return &staticProvider{d: Density{X: dpiX, Y: dpiY}}
}

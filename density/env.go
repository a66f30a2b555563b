package density

import (
	"os"
	"strconv"
	"strings"

	"github.com/devpx/devpx/internal/consts"
	"github.com/devpx/devpx/internal/errors"
)

var _ Provider = (*envProvider)(nil)

// envProvider checks the DEVPX_DPI environment variable before
// consulting the wrapped provider. Accepted forms: "144", "144x120".
type envProvider struct {
	inner Provider
}

// Env wraps a Provider with an environment variable override.
func Env(inner Provider) Provider { return &envProvider{inner: inner} }

func (p *envProvider) Sample() (Density, error) {
	if p == nil {
		return Density{}, errors.New(consts.ErrNilReceiver)
	}
	if v, ok := os.LookupEnv(consts.EnvDensity); ok {
		if d, err := Parse(v); err == nil {
			return d, nil
		}
		// a malformed override is ignored, not fatal
	}
	if p.inner == nil {
		return Density{}, errors.New(consts.ErrDensityUnavailable)
	}
	return p.inner.Sample()
}

// Parse reads a density from a string of the form "<dpi>" or "<dpiX>x<dpiY>".
func Parse(s string) (Density, error) {
	parts := strings.SplitN(strings.TrimSpace(s), `x`, 2)
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Density{}, errors.New(err)
	}
	y := x
	if len(parts) == 2 {
		y, err = strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return Density{}, errors.New(err)
		}
	}
	if x <= 0 || y <= 0 {
		return Density{}, errors.New(`density must be positive`)
	}
	return Density{X: x, Y: y}, nil
}

//go:build !windows && (!unix || noX11 || android || darwin || js)

// not supported platforms

package densimpl

import (
	"github.com/devpx/devpx/density"
	"github.com/devpx/devpx/internal/consts"
	"github.com/devpx/devpx/internal/errors"
)

func (p *provider) Sample() (density.Density, error) {
	return density.Density{}, errors.New(consts.ErrPlatformNotSupported)
}

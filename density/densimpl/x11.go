//go:build unix && !noX11 && !android && !darwin && !js

package densimpl

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/devpx/devpx/density"
	"github.com/devpx/devpx/internal/errors"
)

const mmPerInch = 25.4

func (p *provider) Sample() (density.Density, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return density.Density{}, errors.New(err)
	}
	defer conn.Close()
	screen := xproto.Setup(conn).DefaultScreen(conn)
	if screen == nil {
		return density.Density{}, errors.New(`no default screen`)
	}
	if screen.WidthInMillimeters == 0 || screen.HeightInMillimeters == 0 {
		return density.Density{}, errors.New(`screen reports no physical size`)
	}
	return density.Density{
		X: float64(screen.WidthInPixels) * mmPerInch / float64(screen.WidthInMillimeters),
		Y: float64(screen.HeightInPixels) * mmPerInch / float64(screen.HeightInMillimeters),
	}, nil
}

//go:build windows

package densimpl

import (
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/devpx/devpx/density"
	"github.com/devpx/devpx/internal/errors"
)

var (
	shcoreDLL            = windows.NewLazySystemDLL(`shcore.dll`)
	getDpiForMonitorProc = shcoreDLL.NewProc(`GetDpiForMonitor`)
)

// MDT_EFFECTIVE_DPI
const mdtEffectiveDPI = 0

func (p *provider) Sample() (density.Density, error) {
	if d, err := sampleMonitor(); err == nil {
		return d, nil
	}
	return sampleDeviceCaps()
}

// sampleMonitor uses the per-monitor API available since Windows 8.1.
func sampleMonitor() (density.Density, error) {
	if err := getDpiForMonitorProc.Find(); err != nil {
		return density.Density{}, errors.New(err)
	}
	mon := win.MonitorFromWindow(0, win.MONITOR_DEFAULTTOPRIMARY)
	if mon == 0 {
		return density.Density{}, errors.New(`no primary monitor`)
	}
	var dpiX, dpiY uint32
	hr, _, _ := getDpiForMonitorProc.Call(
		uintptr(mon),
		uintptr(mdtEffectiveDPI),
		uintptr(unsafe.Pointer(&dpiX)),
		uintptr(unsafe.Pointer(&dpiY)),
	)
	if int32(hr) < 0 || dpiX == 0 || dpiY == 0 {
		return density.Density{}, errors.New(`GetDpiForMonitor failed`)
	}
	return density.Density{X: float64(dpiX), Y: float64(dpiY)}, nil
}

// sampleDeviceCaps reads LOGPIXELSX/Y from the screen device context.
// The context is released on every path.
func sampleDeviceCaps() (density.Density, error) {
	hdc := win.GetDC(0)
	if hdc == 0 {
		return density.Density{}, errors.New(`cannot obtain screen device context`)
	}
	defer win.ReleaseDC(0, hdc)
	dpiX := win.GetDeviceCaps(hdc, win.LOGPIXELSX)
	dpiY := win.GetDeviceCaps(hdc, win.LOGPIXELSY)
	if dpiX <= 0 || dpiY <= 0 {
		return density.Density{}, errors.New(`device context reports no pixel density`)
	}
	return density.Density{X: float64(dpiX), Y: float64(dpiY)}, nil
}

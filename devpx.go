// Package devpx rescales coordinates and bitmaps from logical 96-dpi
// units to the device pixels of the primary display.
package devpx

import (
	"image"
	"sync"

	"github.com/devpx/devpx/density"
	"github.com/devpx/devpx/density/densimpl"
	"github.com/devpx/devpx/resample/rdefault"
	"github.com/devpx/devpx/scale"
)

var (
	// chosen defaults
	densityProvider               = density.Env(densimpl.Provider())
	blitter         scale.Blitter = &rdefault.Blitter{}
)

var DefaultConfig = scale.Options{
	scale.SetDensityProvider(densityProvider),
	scale.SetBlitter(blitter),
}

var scalerActive = sync.OnceValues(func() (*scale.Scaler, error) {
	return scale.New(DefaultConfig)
})

// Scaler returns the process-wide scaler for the primary display.
func Scaler() (*scale.Scaler, error) {
	return scalerActive()
}

// ScalingRequired reports whether the primary display's density differs
// from the 96-dpi reference on either axis. The coordinate conversions
// below are meaningful when it returns true; otherwise they are the
// identity.
func ScalingRequired() bool {
	s, err := Scaler()
	if err != nil {
		return false
	}
	return s.ScalingRequired()
}

// ToDeviceX ...
func ToDeviceX(value int) int {
	s, err := Scaler()
	if err != nil {
		return value
	}
	return s.ToDeviceX(value)
}

// ToDeviceY ...
func ToDeviceY(value int) int {
	s, err := Scaler()
	if err != nil {
		return value
	}
	return s.ToDeviceY(value)
}

// ToDeviceSize ...
func ToDeviceSize(size scale.Size) scale.Size {
	s, err := Scaler()
	if err != nil {
		return size
	}
	return s.ToDeviceSize(size)
}

// Rescale resamples img into a new bitmap of the given device pixel size.
func Rescale(img image.Image, target scale.Size) (image.Image, error) {
	s, err := Scaler()
	if err != nil {
		return nil, err
	}
	return s.Rescale(img, target)
}

// RescaleToDevice resamples img from logical to device units.
func RescaleToDevice(img image.Image) (image.Image, error) {
	s, err := Scaler()
	if err != nil {
		return nil, err
	}
	return s.RescaleToDevice(img)
}

// RescaleInPlace replaces the caller-held image with its device-unit
// rescale.
func RescaleInPlace(img *image.Image) error {
	s, err := Scaler()
	if err != nil {
		return err
	}
	return s.RescaleInPlace(img)
}

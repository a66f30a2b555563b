package consts

import (
	"errors"
)

var (
	ErrNilReceiver          = errors.New(`nil receiver`)
	ErrNilParam             = errors.New(`nil parameter`)
	ErrPlatformNotSupported = errors.New(`platform not supported`)
	ErrAlgorithmUnsupported = errors.New(`resampling algorithm not supported`)
	ErrFormatUnsupported    = errors.New(`pixel format not supported`)
	ErrDensityUnavailable   = errors.New(`display density unavailable`)
)

const (
	LibraryName = `devpx`

	// EnvDensity overrides the queried display density,
	// e.g. "144" or "144x120".
	EnvDensity = `DEVPX_DPI`
)

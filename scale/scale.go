// Package scale converts logical 96-dpi units into device pixels of the
// primary display and rescales bitmaps accordingly.
package scale

import (
	"log/slog"
	"math"
	"sync"

	"github.com/devpx/devpx/density"
	"github.com/devpx/devpx/internal/logx"
)

// Scaler holds the scaling state of one display. The density is sampled
// at most once per Scaler and never changes afterwards; a display whose
// density changes at runtime needs a new Scaler.
type Scaler struct {
	provider density.Provider
	blitter  Blitter
	logger   *slog.Logger

	sampleOnce sync.Once
	dens       density.Density
	fellBack   bool
	fx, fy     float64

	algoOnce sync.Once
	algo     Algorithm
}

var _ logx.LoggerProvider = (*Scaler)(nil)

// New creates a Scaler. Without a SetDensityProvider option the reference
// density is assumed and no scaling takes place.
func New(opts ...Option) (*Scaler, error) {
	s := &Scaler{}
	if err := s.SetOptions(opts...); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scaler) Logger() *slog.Logger {
	if s == nil {
		return nil
	}
	return s.logger
}

// sample queries the density provider exactly once, even when both axes
// are requested. A failing provider degrades silently to the reference
// density - no scaling is always safe.
func (s *Scaler) sample() {
	s.sampleOnce.Do(func() {
		d := density.Fallback()
		if s.provider != nil {
			sampled, err := s.provider.Sample()
			if err == nil {
				d = sampled
			} else {
				s.fellBack = true
				logx.Debug(`density query failed, assuming reference density`, s, `error`, err)
			}
		}
		s.dens = d
		s.fx = d.X / density.Reference
		s.fy = d.Y / density.Reference
		logx.Debug(`display density sampled`, s,
			`dpiX`, d.X, `dpiY`, d.Y, `factorX`, s.fx, `factorY`, s.fy)
	})
}

// Density returns the sampled display density,
// triggering the one-time query if necessary.
func (s *Scaler) Density() density.Density {
	if s == nil {
		return density.Fallback()
	}
	s.sample()
	return s.dens
}

// FellBack reports whether the density query failed and the reference
// density was substituted.
func (s *Scaler) FellBack() bool {
	if s == nil {
		return false
	}
	s.sample()
	return s.fellBack
}

// FactorX is the horizontal scaling factor, dpiX / 96.
func (s *Scaler) FactorX() float64 {
	if s == nil {
		return 1
	}
	s.sample()
	return s.fx
}

// FactorY is the vertical scaling factor, dpiY / 96.
func (s *Scaler) FactorY() float64 {
	if s == nil {
		return 1
	}
	s.sample()
	return s.fy
}

// ScalingRequired reports whether the display density differs from the
// reference on either axis.
func (s *Scaler) ScalingRequired() bool {
	if s == nil {
		return false
	}
	s.sample()
	return !s.dens.IsReference()
}

// Algorithm returns the resampling algorithm for this display, chosen
// once from the horizontal factor and frozen afterwards.
func (s *Scaler) Algorithm() Algorithm {
	if s == nil {
		return Nearest
	}
	s.algoOnce.Do(func() {
		s.algo = AlgorithmFor(s.FactorX())
		logx.Debug(`resampling algorithm selected`, s, `algorithm`, s.algo)
	})
	return s.algo
}

// ToDeviceX converts a logical x coordinate or width to device pixels.
// Rounding is to nearest, ties away from zero.
func (s *Scaler) ToDeviceX(value int) int {
	return int(math.Round(float64(value) * s.FactorX()))
}

// ToDeviceY converts a logical y coordinate or height to device pixels.
func (s *Scaler) ToDeviceY(value int) int {
	return int(math.Round(float64(value) * s.FactorY()))
}

// ToDeviceSize converts a logical size to device pixels per axis.
func (s *Scaler) ToDeviceSize(size Size) Size {
	return Size{W: s.ToDeviceX(size.W), H: s.ToDeviceY(size.H)}
}

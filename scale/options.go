package scale

import (
	"log/slog"

	"github.com/devpx/devpx/density"
	"github.com/devpx/devpx/internal/consts"
	"github.com/devpx/devpx/internal/errors"
)

type Option interface {
	ApplyOption(s *Scaler) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Scaler) error

func (o OptFunc) ApplyOption(s *Scaler) error { return o(s) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(s *Scaler) error { return s.SetOptions([]Option(o)...) }

func (s *Scaler) SetOptions(opts ...Option) error {
	if s == nil {
		return errors.New(consts.ErrNilReceiver)
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(s); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetDensityProvider sets the display density source.
func SetDensityProvider(p density.Provider) Option {
	return OptFunc(func(s *Scaler) error {
		s.provider = p
		return nil
	})
}

// SetBlitter sets the resampling backend used by Rescale.
func SetBlitter(b Blitter) Option {
	return OptFunc(func(s *Scaler) error {
		s.blitter = b
		return nil
	})
}

func SetLogger(l *slog.Logger) Option {
	return OptFunc(func(s *Scaler) error {
		s.logger = l
		return nil
	})
}

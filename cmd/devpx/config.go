package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/devpx/devpx/density"
	"github.com/devpx/devpx/density/densimpl"
	"github.com/devpx/devpx/internal/consts"
	"github.com/devpx/devpx/internal/errors"
	"github.com/devpx/devpx/scale"
)

type config struct {
	// DPI forces the display density, e.g. "144" or "144x120".
	DPI string `toml:"dpi"`
	// Backend selects the resampling backend by name.
	Backend string `toml:"backend"`
}

// loadConfig reads the --config file, or the default
// <UserConfigDir>/devpx/config.toml if that exists.
func loadConfig() (*config, error) {
	cfg := &config{}
	path := configFile
	if len(path) == 0 {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, consts.LibraryName, `config.toml`)
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.New(err)
	}
	return cfg, nil
}

// newScaler builds a scaler from flags and config. Flags win over the
// config file, the config file over environment and display query.
func newScaler() (*scale.Scaler, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	dpi := flagDPI
	if len(dpi) == 0 {
		dpi = cfg.DPI
	}
	var provider density.Provider
	if len(dpi) > 0 {
		d, err := density.Parse(dpi)
		if err != nil {
			return nil, err
		}
		provider = density.Static(d.X, d.Y)
	} else {
		provider = density.Env(densimpl.Provider())
	}
	backendName := flagBackend
	if len(backendName) == 0 {
		backendName = cfg.Backend
	}
	bl, err := backend(backendName)
	if err != nil {
		return nil, err
	}
	opts := scale.Options{
		scale.SetDensityProvider(provider),
		scale.SetBlitter(bl),
	}
	if verbose {
		opts = append(opts, scale.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}
	return scale.New(opts)
}

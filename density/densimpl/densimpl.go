// Package densimpl provides the platform density Provider.
package densimpl

import (
	"github.com/devpx/devpx/density"
)

var _ density.Provider = (*provider)(nil)

// provider.Sample is implemented per platform in the build tagged files.
type provider struct{}

// Provider returns the density provider for the current platform.
func Provider() density.Provider { return &provider{} }

package main

import (
	"sort"
	"strings"

	"github.com/devpx/devpx/internal/errors"
	"github.com/devpx/devpx/resample/bild"
	"github.com/devpx/devpx/resample/gift"
	"github.com/devpx/devpx/resample/imaging"
	"github.com/devpx/devpx/resample/nfnt"
	"github.com/devpx/devpx/resample/rdefault"
	"github.com/devpx/devpx/resample/rez"
	"github.com/devpx/devpx/resample/xdraw"
	"github.com/devpx/devpx/scale"
)

var backends = map[string]scale.Blitter{
	``:           &rdefault.Blitter{},
	`auto`:       &rdefault.Blitter{},
	`xdraw`:      xdraw.New(),
	`xdraw-fast`: xdraw.Fast(),
	`nfnt`:       &nfnt.Blitter{},
	`bild`:       &bild.Blitter{},
	`gift`:       &gift.Blitter{},
	`imaging`:    &imaging.Blitter{},
	`rez`:        &rez.Blitter{},
}

func backend(name string) (scale.Blitter, error) {
	bl, ok := backends[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.New(`unknown backend "` + name + `", choose one of: ` + backendNames())
	}
	return bl, nil
}

func backendNames() string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		if len(name) == 0 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, `, `)
}

package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jc418gv/stl-gen/pkg/enclosure"
	"github.com/jc418gv/stl-gen/pkg/stlio"
)

// Params is the TOML parameter file layout. Every field starts from the
// part's built-in defaults; the file only needs the values that differ.
//
//	quality = 220
//
//	[basket]
//	height = 180.0
//	stagger = true
type Params struct {
	Quality    int                        `toml:"quality"`
	Basket     enclosure.BasketConfig     `toml:"basket"`
	HCSR501    enclosure.HCSR501Config    `toml:"hcsr501"`
	ProtoBoard enclosure.ProtoBoardConfig `toml:"protoboard"`
}

func defaultParams() Params {
	return Params{
		Quality:    stlio.DefaultMeshCells,
		Basket:     enclosure.DefaultBasket(),
		HCSR501:    enclosure.DefaultHCSR501(),
		ProtoBoard: enclosure.DefaultProtoBoard(),
	}
}

// loadParams returns the defaults overlaid with the TOML file at path.
// An empty path returns the plain defaults. Unknown keys are an error so a
// typo never silently prints the wrong part.
func loadParams(path string) (Params, error) {
	p := defaultParams()
	if path == "" {
		return p, nil
	}
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Params{}, fmt.Errorf("load parameters %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Params{}, fmt.Errorf("load parameters %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return p, nil
}

// meshCells resolves the octree resolution: the --quality flag wins over the
// parameter file.
func (p Params) meshCells(opts *options) int {
	if opts.quality > 0 {
		return opts.quality
	}
	return p.Quality
}

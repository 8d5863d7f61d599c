package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"fretboard/internal/fretboard"
)

// configNames are tried in order in every directory while walking up.
var configNames = []string{"fretboard.toml", "fretboard.yaml", "fretboard.yml"}

// fileConfig mirrors fretboard.toml. Pointer fields distinguish "absent"
// from zero values so only keys present in the file override defaults.
type fileConfig struct {
	Tuning string       `toml:"tuning" yaml:"tuning"`
	Render renderConfig `toml:"render" yaml:"render"`
	Glyphs glyphConfig  `toml:"glyphs" yaml:"glyphs"`
	Names  namesConfig  `toml:"names" yaml:"names"`
	Output outputConfig `toml:"output" yaml:"output"`
}

type renderConfig struct {
	Modulus      *int    `toml:"modulus" yaml:"modulus"`
	Frets        *string `toml:"frets" yaml:"frets"`
	DisplayRoots *bool   `toml:"display_roots" yaml:"display_roots"`
	PrintHeader  *bool   `toml:"print_header" yaml:"print_header"`
	NumberFrets  *bool   `toml:"number_frets" yaml:"number_frets"`
}

type glyphConfig struct {
	Open      *string `toml:"open" yaml:"open"`
	Stopped   *string `toml:"stopped" yaml:"stopped"`
	Root      *string `toml:"root" yaml:"root"`
	Separator *string `toml:"separator" yaml:"separator"`
}

type namesConfig struct {
	Common       *bool `toml:"use_common_names" yaml:"use_common_names"`
	PreferSharps *bool `toml:"prefer_sharps" yaml:"prefer_sharps"`
	PreferFlats  *bool `toml:"prefer_flats" yaml:"prefer_flats"`
}

type outputConfig struct {
	File string `toml:"file" yaml:"file"`
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range configNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return fileConfig{}, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return fileConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return fileConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}
	return cfg, nil
}

// apply overlays the file values present onto opts.
func (c fileConfig) apply(opts *fretboard.Options) error {
	if c.Render.Modulus != nil {
		opts.Modulus = *c.Render.Modulus
	}
	if c.Render.Frets != nil {
		frets, err := parseFrets(*c.Render.Frets)
		if err != nil {
			return fmt.Errorf("[render].frets: %w", err)
		}
		opts.Frets = frets
	}
	setBool(&opts.DisplayRoots, c.Render.DisplayRoots)
	setBool(&opts.PrintHeader, c.Render.PrintHeader)
	setBool(&opts.NumberFrets, c.Render.NumberFrets)
	setBool(&opts.UseCommonNames, c.Names.Common)
	setBool(&opts.PreferSharps, c.Names.PreferSharps)
	setBool(&opts.PreferFlats, c.Names.PreferFlats)
	setString(&opts.Glyphs.Open, c.Glyphs.Open)
	setString(&opts.Glyphs.Stopped, c.Glyphs.Stopped)
	setString(&opts.Glyphs.Root, c.Glyphs.Root)
	setString(&opts.Glyphs.Separator, c.Glyphs.Separator)
	return nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

const defaultConfig = `# fretboard configuration
# Any key left out keeps its built-in default.

tuning = "standard"

[render]
modulus = 12
frets = "0-12"
display_roots = true
print_header = true
number_frets = true

[glyphs]
open = " ."
stopped = " O"
root = " 0"
separator = "\n"

[names]
use_common_names = true
prefer_sharps = false
prefer_flats = false

[output]
file = "pfb_output.txt"
`

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fretboard/internal/catalog"
	"fretboard/internal/fretboard"
)

// renderSetup is everything a rendering command needs after flags, config
// file and defaults have been merged.
type renderSetup struct {
	opts       fretboard.Options
	tuning     fretboard.Tuning
	raw        bool
	configPath string
	outputFile string
}

func addRenderFlags(fs *pflag.FlagSet) {
	fs.StringP("tuning", "t", "", "tuning name or pitch list, e.g. dadgad or E,A,D,G,B,E (default standard)")
	fs.StringP("frets", "f", "", `frets to show, e.g. "0-12", "5-9", "0,3,5,7" (default 0-12)`)
	fs.Bool("raw", false, "print the bare grid (0/1/r glyphs, comma separated rows)")
	fs.Int("modulus", 12, "size of the pitch-class universe")
	fs.Bool("roots", true, "mark the root with the root glyph")
	fs.Bool("header", true, "print the tuning and chord header")
	fs.Bool("numbers", true, "prefix rows with the fret number")
	fs.Bool("names", true, "use note names instead of pitch numbers in the header")
	fs.Bool("sharps", false, "spell chromatic notes with sharps")
	fs.Bool("flats", false, "spell chromatic notes with flats")
	fs.String("open", "", "glyph for an open (unplayed) position")
	fs.String("stopped", "", "glyph for a stopped position")
	fs.String("root", "", "glyph for the root")
	fs.String("sep", "", `row separator, escapes allowed (e.g. "\n" or ",")`)
}

// resolveRender merges defaults, the config file and explicitly set flags,
// in that order of increasing precedence.
func resolveRender(cmd *cobra.Command, s *session) (renderSetup, error) {
	done := s.timer.Track("config")
	defer done("")

	fs := cmd.Flags()
	var setup renderSetup
	var err error
	if setup.raw, err = fs.GetBool("raw"); err != nil {
		return setup, fmt.Errorf("failed to get raw flag: %w", err)
	}
	if setup.raw {
		setup.opts = fretboard.RawOptions()
	} else {
		setup.opts = fretboard.DefaultOptions()
	}

	cfg, path, err := discoverConfig(cmd)
	if err != nil {
		return setup, err
	}
	setup.configPath = path
	if setup.raw {
		// raw output keeps its own glyphs and layout
		cfg.Glyphs = glyphConfig{}
		cfg.Render.DisplayRoots, cfg.Render.PrintHeader, cfg.Render.NumberFrets = nil, nil, nil
	}
	if err := cfg.apply(&setup.opts); err != nil {
		return setup, fmt.Errorf("%s: %w", path, err)
	}
	setup.outputFile = cfg.Output.File

	tuningArg := catalog.DefaultTuning
	if cfg.Tuning != "" {
		tuningArg = cfg.Tuning
	}
	if fs.Changed("tuning") {
		tuningArg, _ = fs.GetString("tuning")
	}
	if setup.tuning, err = parseTuning(tuningArg); err != nil {
		return setup, err
	}

	if fs.Changed("frets") {
		v, _ := fs.GetString("frets")
		if setup.opts.Frets, err = parseFrets(v); err != nil {
			return setup, err
		}
	}
	if fs.Changed("modulus") {
		setup.opts.Modulus, _ = fs.GetInt("modulus")
	}

	bools := []struct {
		flag string
		dst  *bool
	}{
		{"roots", &setup.opts.DisplayRoots},
		{"header", &setup.opts.PrintHeader},
		{"numbers", &setup.opts.NumberFrets},
		{"names", &setup.opts.UseCommonNames},
		{"sharps", &setup.opts.PreferSharps},
		{"flats", &setup.opts.PreferFlats},
	}
	for _, b := range bools {
		if fs.Changed(b.flag) {
			*b.dst, _ = fs.GetBool(b.flag)
		}
	}

	glyphs := []struct {
		flag string
		dst  *string
	}{
		{"open", &setup.opts.Glyphs.Open},
		{"stopped", &setup.opts.Glyphs.Stopped},
		{"root", &setup.opts.Glyphs.Root},
		{"sep", &setup.opts.Glyphs.Separator},
	}
	for _, g := range glyphs {
		if !fs.Changed(g.flag) {
			continue
		}
		v, _ := fs.GetString(g.flag)
		if *g.dst, err = unescape(v); err != nil {
			return setup, fmt.Errorf("--%s: %w", g.flag, err)
		}
	}
	return setup, nil
}

// discoverConfig loads --config when given, otherwise the nearest config
// file above the working directory. No file is not an error.
func discoverConfig(cmd *cobra.Command) (fileConfig, string, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return fileConfig{}, "", fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		found, ok, err := findConfig(".")
		if err != nil {
			return fileConfig{}, "", err
		}
		if !ok {
			return fileConfig{}, "", nil
		}
		path = found
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return fileConfig{}, path, err
	}
	return cfg, path, nil
}

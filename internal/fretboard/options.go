package fretboard

import "fretboard/internal/pitch"

// DefaultFretCount is the highest fret rendered by default; frets 0 through
// DefaultFretCount inclusive are shown.
const DefaultFretCount = 12

// Glyphs are the display strings for each cell state plus the row separator.
// Open, Stopped and Root should share a display width so columns align.
type Glyphs struct {
	Open      string `toml:"open" yaml:"open"`
	Stopped   string `toml:"stopped" yaml:"stopped"`
	Root      string `toml:"root" yaml:"root"`
	Separator string `toml:"separator" yaml:"separator"`
}

// FormattedGlyphs is the glyph set used for printed diagrams.
func FormattedGlyphs() Glyphs {
	return Glyphs{Open: " .", Stopped: " O", Root: " 0", Separator: "\n"}
}

// RawGlyphs is the compact single-line glyph set.
func RawGlyphs() Glyphs {
	return Glyphs{Open: "0", Stopped: "1", Root: "r", Separator: ","}
}

// Options configures a Renderer. The zero value is not useful; start from
// DefaultOptions or RawOptions.
type Options struct {
	Modulus        int
	Frets          []int
	Glyphs         Glyphs
	DisplayRoots   bool
	PrintHeader    bool
	NumberFrets    bool
	UseCommonNames bool
	PreferSharps   bool
	PreferFlats    bool
}

// DefaultOptions are the settings for formatted, printed diagrams.
func DefaultOptions() Options {
	return Options{
		Modulus:        pitch.Modulus,
		Frets:          FretRange(0, DefaultFretCount),
		Glyphs:         FormattedGlyphs(),
		DisplayRoots:   true,
		PrintHeader:    true,
		NumberFrets:    true,
		UseCommonNames: true,
	}
}

// RawOptions are the settings for the bare grid: raw glyphs, roots rendered
// as stopped, no fret numbers.
func RawOptions() Options {
	opts := DefaultOptions()
	opts.Glyphs = RawGlyphs()
	opts.DisplayRoots = false
	opts.NumberFrets = false
	return opts
}

// FretRange returns lo..hi inclusive. It is empty when hi < lo.
func FretRange(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	frets := make([]int, 0, hi-lo+1)
	for f := lo; f <= hi; f++ {
		frets = append(frets, f)
	}
	return frets
}

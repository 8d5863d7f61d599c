// Package catalog holds the named tunings, chords and scales.
//
// Chords and scales are built once from a root table and interval tables;
// every accessor hands out a copy, so the tables cannot be changed by
// callers.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"fretboard/internal/fretboard"
	"fretboard/internal/pitch"
)

var ErrNotFound = errors.New("not found in catalog")

// Kind tells chords from scales in lookups.
type Kind uint8

const (
	KindChord Kind = iota
	KindScale
)

func (k Kind) String() string {
	if k == KindScale {
		return "scale"
	}
	return "chord"
}

// Entry is a named chord or scale.
type Entry struct {
	Name    string
	Kind    Kind
	Pitches fretboard.Chord
}

// roots in the order the tables are listed, with their identifier prefix
var roots = []struct {
	prefix string
	pc     pitch.Class
}{
	{"c", 0}, {"db", 1}, {"d", 2}, {"eb", 3}, {"e", 4}, {"f", 5},
	{"gb", 6}, {"g", 7}, {"ab", 8}, {"a", 9}, {"bb", 10}, {"b", 11},
}

type intervalSet struct {
	suffix    string
	intervals []pitch.Class
}

var qualities = []intervalSet{
	{"M", []pitch.Class{0, 4, 7}},
	{"m", []pitch.Class{0, 3, 7}},
	{"o", []pitch.Class{0, 3, 6}},
	{"M7", []pitch.Class{0, 4, 7, 11}},
	{"7", []pitch.Class{0, 4, 7, 10}},
	{"m7", []pitch.Class{0, 3, 7, 10}},
	{"m7b5", []pitch.Class{0, 3, 6, 10}},
	{"o7", []pitch.Class{0, 3, 6, 9}},
}

var modes = []intervalSet{
	{"major", []pitch.Class{0, 2, 4, 5, 7, 9, 11}},
	{"dorian", []pitch.Class{0, 2, 3, 5, 7, 9, 10}},
	{"phrygian", []pitch.Class{0, 1, 3, 5, 7, 8, 10}},
	{"lydian", []pitch.Class{0, 2, 4, 6, 7, 9, 11}},
	{"mixolydian", []pitch.Class{0, 2, 4, 5, 7, 9, 10}},
	{"aeolian", []pitch.Class{0, 2, 3, 5, 7, 8, 10}},
	{"locrian", []pitch.Class{0, 1, 3, 5, 6, 8, 10}},
}

var tunings = map[string]fretboard.Tuning{
	"standard":      {4, 9, 2, 7, 11, 4},
	"drop_d":        {2, 9, 2, 7, 11, 4},
	"double_drop_d": {2, 9, 2, 7, 11, 2},
	"dadgad":        {2, 9, 2, 7, 9, 2},
	"open_d":        {2, 9, 2, 6, 9, 2},
	"open_e":        {4, 11, 4, 8, 11, 4},
	"open_g":        {2, 7, 2, 7, 11, 2},
	"open_a":        {4, 9, 4, 9, 1, 4},
	"lute":          {4, 9, 2, 6, 11, 4},
	"new_standard":  {0, 7, 2, 9, 4, 7},
	"mandolin":      {7, 2, 9, 4},
	"ukelele":       {7, 0, 4, 9},
	"ukulele":       {7, 0, 4, 9},
}

// DefaultTuning names the tuning used when none is given.
const DefaultTuning = "standard"

var (
	chords     = build(KindChord, qualities)
	scales     = build(KindScale, modes)
	chordIndex = index(chords)
	scaleIndex = index(scales)
	groups     = map[string][]string{
		"maj_and_minor": {
			"c_M", "c_m", "db_M", "db_m", "d_M", "d_m", "eb_M", "eb_m", "e_M", "e_m",
			"f_M", "f_m", "gb_M", "gb_m", "g_M", "g_m", "ab_M", "ab_m", "a_M", "a_m",
			"bb_M", "bb_m", "b_M", "b_m",
		},
		"maj_and_minor_diatonic_roots": {
			"c_M", "c_m", "d_M", "d_m", "e_M", "e_m", "f_M", "f_m",
			"g_M", "g_m", "a_M", "a_m", "b_M", "b_m",
		},
	}
)

func build(kind Kind, table []intervalSet) []Entry {
	out := make([]Entry, 0, len(roots)*len(table))
	for _, r := range roots {
		for _, q := range table {
			ps := make(fretboard.Chord, len(q.intervals))
			for i, iv := range q.intervals {
				ps[i] = pitch.Normalize(r.pc+iv, pitch.Modulus)
			}
			out = append(out, Entry{Name: r.prefix + "_" + q.suffix, Kind: kind, Pitches: ps})
		}
	}
	return out
}

func index(entries []Entry) map[string]int {
	m := make(map[string]int, len(entries))
	for i, e := range entries {
		m[e.Name] = i
	}
	return m
}

func (e Entry) clone() Entry {
	e.Pitches = append(fretboard.Chord(nil), e.Pitches...)
	return e
}

// Tuning returns the named tuning.
func Tuning(name string) (fretboard.Tuning, error) {
	t, ok := tunings[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("tuning %q: %w", name, ErrNotFound)
	}
	return append(fretboard.Tuning(nil), t...), nil
}

// Chord returns the named chord, e.g. "e_M" or "bb_m7b5".
func Chord(name string) (Entry, error) {
	i, ok := chordIndex[normalizeName(name)]
	if !ok {
		return Entry{}, fmt.Errorf("chord %q: %w", name, ErrNotFound)
	}
	return chords[i].clone(), nil
}

// Scale returns the named scale, e.g. "c_major" or "f_locrian".
func Scale(name string) (Entry, error) {
	i, ok := scaleIndex[normalizeName(name)]
	if !ok {
		return Entry{}, fmt.Errorf("scale %q: %w", name, ErrNotFound)
	}
	return scales[i].clone(), nil
}

// Lookup resolves a chord or scale name.
func Lookup(name string) (Entry, error) {
	if e, err := Chord(name); err == nil {
		return e, nil
	}
	if e, err := Scale(name); err == nil {
		return e, nil
	}
	return Entry{}, fmt.Errorf("chord or scale %q: %w", name, ErrNotFound)
}

// Group returns the chords of a named grouping in listing order.
func Group(name string) ([]Entry, error) {
	names, ok := groups[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("group %q: %w", name, ErrNotFound)
	}
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		e, err := Chord(n)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Chords returns every chord, ordered by root then quality.
func Chords() []Entry { return cloneAll(chords) }

// Scales returns every scale, ordered by root then mode.
func Scales() []Entry { return cloneAll(scales) }

func cloneAll(in []Entry) []Entry {
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = e.clone()
	}
	return out
}

// TuningNames returns the tuning names sorted.
func TuningNames() []string { return sortedKeys(tunings) }

// GroupNames returns the group names sorted.
func GroupNames() []string { return sortedKeys(groups) }

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Identifiers are case sensitive in their suffix ("c_M" vs "c_m"), so only
// surrounding space and dashes are normalised.
func normalizeName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), "-", "_")
}

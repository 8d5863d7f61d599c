// Package pitch names and normalises pitch classes in 12-tone equal
// temperament.
package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Modulus is the size of the pitch-class universe.
const Modulus = 12

// Class is a pitch class in integer notation, 0 = C.
type Class int

var (
	ErrOutOfRange            = errors.New("pitch class out of range")
	ErrConflictingPreference = errors.New("both sharps and flats requested")
	ErrUnknownName           = errors.New("unknown note name")
)

// Preference selects the enharmonic spelling of the five chromatic classes.
type Preference uint8

const (
	PreferDefault Preference = iota
	PreferSharps
	PreferFlats
)

func (p Preference) String() string {
	switch p {
	case PreferSharps:
		return "sharps"
	case PreferFlats:
		return "flats"
	default:
		return "default"
	}
}

// PreferenceFrom maps the two boolean switches to a Preference.
// Both set is an error; the returned Preference is PreferDefault then.
func PreferenceFrom(flats, sharps bool) (Preference, error) {
	switch {
	case flats && sharps:
		return PreferDefault, ErrConflictingPreference
	case flats:
		return PreferFlats, nil
	case sharps:
		return PreferSharps, nil
	}
	return PreferDefault, nil
}

// Spelling is one row of the naming table.
type Spelling struct {
	Default string
	Sharp   string
	Flat    string
}

// The default column keeps the historical mix: C#, Eb, F#, G#, Bb.
var spellings = [Modulus]Spelling{
	{"C", "C", "C"},
	{"C#", "C#", "Db"},
	{"D", "D", "D"},
	{"Eb", "D#", "Eb"},
	{"E", "E", "E"},
	{"F", "F", "F"},
	{"F#", "F#", "Gb"},
	{"G", "G", "G"},
	{"G#", "G#", "Ab"},
	{"A", "A", "A"},
	{"Bb", "A#", "Bb"},
	{"B", "B", "B"},
}

// Spellings returns a copy of the 12x3 naming table.
func Spellings() [Modulus]Spelling {
	return spellings
}

// NameOf returns the common name of pc.
//
// On ErrConflictingPreference or ErrOutOfRange the decimal form of pc is
// returned together with the error, so callers can render the fallback and
// surface the condition separately.
func NameOf(pc Class, preferFlats, preferSharps bool) (string, error) {
	pref, err := PreferenceFrom(preferFlats, preferSharps)
	if err != nil {
		return strconv.Itoa(int(pc)), err
	}
	return Name(pc, pref)
}

// Name is NameOf with an already resolved Preference.
func Name(pc Class, pref Preference) (string, error) {
	if pc < 0 || pc >= Modulus {
		return strconv.Itoa(int(pc)), fmt.Errorf("%w: %d is not within 0-%d", ErrOutOfRange, pc, Modulus-1)
	}
	s := spellings[pc]
	switch pref {
	case PreferSharps:
		return s.Sharp, nil
	case PreferFlats:
		return s.Flat, nil
	default:
		return s.Default, nil
	}
}

// Natural reports whether pc has a single spelling.
func Natural(pc Class) bool {
	if pc < 0 || pc >= Modulus {
		return false
	}
	s := spellings[pc]
	return s.Sharp == s.Flat
}

// Normalize wraps pc into [0, modulus). A non-positive modulus returns pc
// unchanged.
func Normalize(pc Class, modulus int) Class {
	if modulus <= 0 {
		return pc
	}
	m := Class(modulus)
	r := pc % m
	if r < 0 {
		r += m
	}
	return r
}

// Parse accepts a note name (C, c#, Db, Bb, E#) or an integer and returns
// its pitch class in 12-TET. Integers are returned as given, without range
// checks; accidentals wrap.
func Parse(s string) (Class, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrUnknownName)
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Class(n), nil
	}
	letter := strings.ToUpper(s[:1])
	base := -1
	for i, sp := range spellings {
		if sp.Sharp == letter {
			base = i
			break
		}
	}
	if base < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownName, s)
	}
	shift := 0
	for _, r := range s[1:] {
		switch r {
		case '#', '♯':
			shift++
		case 'b', '♭':
			shift--
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownName, s)
		}
	}
	return Normalize(Class(base+shift), Modulus), nil
}

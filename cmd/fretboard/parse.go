package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fretboard/internal/catalog"
	"fretboard/internal/fretboard"
	"fretboard/internal/pitch"
)

// parseFrets accepts comma separated fret numbers and inclusive ranges:
// "0-12", "5,7,9", "12-0", "0-3,7". Order is kept. An empty string is an
// empty fret list.
func parseFrets(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	frets := []int{}
	if s == "" {
		return frets, nil
	}
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if n, err := strconv.Atoi(tok); err == nil {
			frets = append(frets, n)
			continue
		}
		loS, hiS, ok := strings.Cut(tok, "-")
		if !ok {
			return nil, fmt.Errorf("invalid fret %q", tok)
		}
		lo, err := strconv.Atoi(strings.TrimSpace(loS))
		if err != nil {
			return nil, fmt.Errorf("invalid fret range %q", tok)
		}
		hi, err := strconv.Atoi(strings.TrimSpace(hiS))
		if err != nil {
			return nil, fmt.Errorf("invalid fret range %q", tok)
		}
		if lo <= hi {
			frets = append(frets, fretboard.FretRange(lo, hi)...)
			continue
		}
		for f := lo; f >= hi; f-- {
			frets = append(frets, f)
		}
	}
	return frets, nil
}

// parsePitchList reads "4,8,11", "E,G#,B" or "E G# B".
func parsePitchList(s string) ([]pitch.Class, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return nil, errors.New("empty pitch list")
	}
	out := make([]pitch.Class, 0, len(fields))
	for _, f := range fields {
		pc, err := pitch.Parse(f)
		if err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, nil
}

// namedChord is a chord argument together with the label it was given as.
type namedChord struct {
	Label string
	Chord fretboard.Chord
}

// parseChord resolves a catalog name ("e_M", "c_dorian") or a pitch list.
func parseChord(arg string) (namedChord, error) {
	if e, err := catalog.Lookup(arg); err == nil {
		return namedChord{Label: e.Name, Chord: e.Pitches}, nil
	}
	pcs, err := parsePitchList(arg)
	if err != nil {
		return namedChord{}, fmt.Errorf("unknown chord or scale %q: %w", arg, err)
	}
	return namedChord{Label: arg, Chord: fretboard.Chord(pcs)}, nil
}

// parseTuning resolves a catalog tuning name or a pitch list.
func parseTuning(arg string) (fretboard.Tuning, error) {
	if t, err := catalog.Tuning(arg); err == nil {
		return t, nil
	}
	pcs, err := parsePitchList(arg)
	if err != nil {
		return nil, fmt.Errorf("unknown tuning %q: %w", arg, err)
	}
	return fretboard.Tuning(pcs), nil
}

// unescape turns flag values such as `\n` or `\t` into their characters so
// separators can be given on the command line.
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	out, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		return "", fmt.Errorf("invalid escape in %q: %w", s, err)
	}
	return out, nil
}

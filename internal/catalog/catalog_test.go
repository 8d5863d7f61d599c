package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"fretboard/internal/fretboard"
)

func TestChordTable(t *testing.T) {
	cases := map[string]fretboard.Chord{
		"c_M":     {0, 4, 7},
		"db_M7":   {1, 5, 8, 0},
		"e_M":     {4, 8, 11},
		"f_o7":    {5, 8, 11, 2},
		"ab_m":    {8, 11, 3},
		"bb_m7b5": {10, 1, 4, 8},
		"b_7":     {11, 3, 6, 9},
	}
	for name, want := range cases {
		e, err := Chord(name)
		require.NoError(t, err, name)
		require.Equal(t, want, e.Pitches, name)
		require.Equal(t, KindChord, e.Kind)
	}
	require.Len(t, Chords(), 12*8)
}

func TestScaleTable(t *testing.T) {
	cases := map[string]fretboard.Chord{
		"c_major":       {0, 2, 4, 5, 7, 9, 11},
		"db_major":      {1, 3, 5, 6, 8, 10, 0},
		"eb_dorian":     {3, 5, 6, 8, 10, 0, 1},
		"gb_lydian":     {6, 8, 10, 0, 1, 3, 5},
		"a_aeolian":     {9, 11, 0, 2, 4, 5, 7},
		"b_locrian":     {11, 0, 2, 4, 5, 7, 9},
		"g_mixolydian":  {7, 9, 11, 0, 2, 4, 5},
		"bb_phrygian":   {10, 11, 1, 3, 5, 6, 8},
	}
	for name, want := range cases {
		e, err := Scale(name)
		require.NoError(t, err, name)
		require.Equal(t, want, e.Pitches, name)
	}
	require.Len(t, Scales(), 12*7)
}

func TestLookupAndNotFound(t *testing.T) {
	e, err := Lookup("e_M")
	require.NoError(t, err)
	require.Equal(t, KindChord, e.Kind)

	e, err = Lookup(" c-major ")
	require.NoError(t, err)
	require.Equal(t, KindScale, e.Kind)

	_, err = Lookup("h_M")
	require.True(t, errors.Is(err, ErrNotFound))
	_, err = Tuning("banjo")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = Group("all")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAccessorsReturnCopies(t *testing.T) {
	e, err := Chord("c_M")
	require.NoError(t, err)
	e.Pitches[0] = 11

	again, err := Chord("c_M")
	require.NoError(t, err)
	require.Equal(t, fretboard.Chord{0, 4, 7}, again.Pitches)

	tun, err := Tuning("standard")
	require.NoError(t, err)
	tun[0] = 0
	tun, _ = Tuning("standard")
	require.Equal(t, fretboard.Tuning{4, 9, 2, 7, 11, 4}, tun)
}

func TestGroups(t *testing.T) {
	require.Equal(t, []string{"maj_and_minor", "maj_and_minor_diatonic_roots"}, GroupNames())

	all, err := Group("maj_and_minor")
	require.NoError(t, err)
	require.Len(t, all, 24)
	require.Equal(t, "c_M", all[0].Name)
	require.Equal(t, "b_m", all[23].Name)

	diatonic, err := Group("maj_and_minor_diatonic_roots")
	require.NoError(t, err)
	require.Len(t, diatonic, 14)
}

func TestTunings(t *testing.T) {
	names := TuningNames()
	require.Contains(t, names, DefaultTuning)
	require.Contains(t, names, "dadgad")
	m, err := Tuning("mandolin")
	require.NoError(t, err)
	require.Equal(t, fretboard.Tuning{7, 2, 9, 4}, m)
}

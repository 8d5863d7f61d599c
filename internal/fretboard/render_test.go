package fretboard

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fretboard/internal/diag"
)

var (
	standard = Tuning{4, 9, 2, 7, 11, 4}
	mandolin = Tuning{7, 2, 9, 4}
	ukulele  = Tuning{7, 0, 4, 9}
	eMajor   = Chord{4, 8, 11}
	cMajor   = Chord{0, 4, 7}
	aMinor   = Chord{9, 0, 4}
	bbSeven  = Chord{10, 2, 5, 8}
)

func newTestRenderer(opts Options) (*Renderer, *diag.Bag) {
	bag := diag.NewBag(64)
	return New(opts, diag.BagReporter{Bag: bag}), bag
}

func TestRenderWorkedExample(t *testing.T) {
	opts := RawOptions()
	opts.Frets = []int{0}
	opts.Glyphs = Glyphs{Open: "0", Stopped: "1", Root: "1", Separator: ","}
	r, bag := newTestRenderer(opts)

	got, err := r.Render(eMajor, standard)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "100011" {
		t.Fatalf("Render = %q, want %q", got, "100011")
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics:\n%s", diag.FormatShortDiagnostics(bag.Items(), true))
	}
}

func TestRenderRawDefaults(t *testing.T) {
	r, _ := newTestRenderer(RawOptions())
	got, err := r.Render(eMajor, standard)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "100011,000100,011000,000000,100101,000010,001000,110001,000000,001110,000000,010000,100011"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderRootsAndNumbers(t *testing.T) {
	opts := RawOptions()
	opts.Frets = []int{0, 1, 2}
	opts.DisplayRoots = true
	opts.NumberFrets = true
	r, _ := newTestRenderer(opts)

	got, err := r.Render(eMajor, standard)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := " 0 r0001r, 1 000100, 2 01r000"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestFormattedGolden(t *testing.T) {
	cases := []struct {
		name   string
		chord  Chord
		tuning Tuning
		mutate func(*Options)
		want   string
	}{
		{
			name:   "defaults",
			chord:  eMajor,
			tuning: standard,
			want: "\ntuning:  E A D G B E   chord/scale:  E G# B \n\n" +
				" 0  0 . . . O 0\n 1  . . . O . .\n 2  . O 0 . . .\n 3  . . . . . .\n" +
				" 4  O . . O . O\n 5  . . . . 0 .\n 6  . . O . . .\n 7  O 0 . . . O\n" +
				" 8  . . . . . .\n 9  . . O 0 O .\n10  . . . . . .\n11  . O . . . .\n" +
				"12  0 . . . O 0\n\n",
		},
		{
			name:   "ukulele",
			chord:  cMajor,
			tuning: ukulele,
			mutate: func(o *Options) { o.Frets = FretRange(0, 3) },
			want:   "\ntuning:  G C E A   chord/scale:  C E G \n\n 0  O 0 O .\n 1  . . . .\n 2  . . . .\n 3  . . O 0\n\n",
		},
		{
			name:   "flats",
			chord:  bbSeven,
			tuning: mandolin,
			mutate: func(o *Options) { o.Frets = FretRange(0, 2); o.PreferFlats = true },
			want:   "\ntuning:  G D A E   chord/scale:  Bb D F Ab \n\n 0  . O . .\n 1  O . 0 O\n 2  . . . .\n\n",
		},
		{
			name:   "numeric names without fret numbers",
			chord:  aMinor,
			tuning: mandolin,
			mutate: func(o *Options) {
				o.Frets = []int{0, 1}
				o.UseCommonNames = false
				o.NumberFrets = false
			},
			want: "\ntuning:  7 2 9 4   chord/scale:  9 0 4 \n\n . . 0 O\n . . . .\n\n",
		},
		{
			name:   "no header",
			chord:  aMinor,
			tuning: mandolin,
			mutate: func(o *Options) { o.Frets = []int{0, 1}; o.PrintHeader = false },
			want:   "\n 0  . . 0 O\n 1  . . . .\n\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			if tc.mutate != nil {
				tc.mutate(&opts)
			}
			r, bag := newTestRenderer(opts)
			got, err := r.Formatted(tc.chord, tc.tuning)
			if err != nil {
				t.Fatalf("Formatted: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Formatted mismatch (-want +got):\n%s", diff)
			}
			if bag.HasWarnings() {
				t.Fatalf("unexpected diagnostics:\n%s", diag.FormatShortDiagnostics(bag.Items(), true))
			}
		})
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	r, _ := newTestRenderer(DefaultOptions())
	a, err := r.Formatted(bbSeven, standard)
	if err != nil {
		t.Fatalf("Formatted: %v", err)
	}
	for i := 0; i < 5; i++ {
		b, _ := r.Formatted(bbSeven, standard)
		if a != b {
			t.Fatalf("output changed between calls:\n%q\n%q", a, b)
		}
	}
}

func TestRenderShapeAndGlyphs(t *testing.T) {
	opts := RawOptions()
	opts.Glyphs = Glyphs{Open: "o", Stopped: "s", Root: "R", Separator: "|"}
	opts.DisplayRoots = true
	opts.Frets = FretRange(0, 24)
	r, _ := newTestRenderer(opts)

	tunings := []Tuning{standard, mandolin, {0}, {1, 2, 3, 4, 5, 6, 7}}
	for _, tuning := range tunings {
		got, err := r.Render(bbSeven, tuning)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		rows := strings.Split(got, "|")
		if len(rows) != len(opts.Frets) {
			t.Fatalf("got %d rows, want %d", len(rows), len(opts.Frets))
		}
		for fi, row := range rows {
			if len(row) != len(tuning) {
				t.Fatalf("row %d has %d columns, want %d", fi, len(row), len(tuning))
			}
			for si, ch := range row {
				p := (int(tuning[si]) + opts.Frets[fi]) % 12
				switch {
				case p == int(bbSeven[0]) && ch != 'R':
					t.Fatalf("root at fret %d string %d rendered %q", fi, si, ch)
				case ch != 'o' && ch != 's' && ch != 'R':
					t.Fatalf("unexpected glyph %q", ch)
				}
			}
		}
	}
}

func TestRootRendersStoppedWhenNotDisplayed(t *testing.T) {
	opts := RawOptions()
	opts.Frets = []int{0}
	r, _ := newTestRenderer(opts)
	// root only: every matching cell must be stopped, never open
	got, err := r.Render(Chord{4}, standard)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "100001" {
		t.Fatalf("Render = %q, want %q", got, "100001")
	}
}

func TestRenderEmptyTuningAndFrets(t *testing.T) {
	opts := RawOptions()
	opts.Frets = FretRange(0, 2)
	r, _ := newTestRenderer(opts)
	got, err := r.Render(eMajor, Tuning{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != ",," {
		t.Fatalf("Render = %q, want three empty rows", got)
	}

	opts.Frets = nil
	r, _ = newTestRenderer(opts)
	got, err = r.Render(eMajor, standard)
	if err != nil || got != "" {
		t.Fatalf("Render with no frets = %q, %v", got, err)
	}
}

func TestRenderStructuralErrors(t *testing.T) {
	cases := []struct {
		name   string
		chord  Chord
		mutate func(*Options)
		err    error
		code   diag.Code
	}{
		{"missing root", Chord{}, nil, ErrMissingRoot, diag.RenderMissingRoot},
		{"zero modulus", eMajor, func(o *Options) { o.Modulus = 0 }, ErrInvalidModulus, diag.RenderInvalidModulus},
		{"negative fret", eMajor, func(o *Options) { o.Frets = []int{0, -1} }, ErrNegativeFret, diag.RenderNegativeFret},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			if tc.mutate != nil {
				tc.mutate(&opts)
			}
			r, bag := newTestRenderer(opts)
			got, err := r.Formatted(tc.chord, standard)
			if !errors.Is(err, tc.err) {
				t.Fatalf("err = %v, want %v", err, tc.err)
			}
			if got != "" {
				t.Fatalf("expected no output, got %q", got)
			}
			if !bag.HasErrors() || bag.Items()[bag.Len()-1].Code != tc.code {
				t.Fatalf("expected %s diagnostic, got:\n%s", tc.code.ID(), diag.FormatShortDiagnostics(bag.Items(), false))
			}
		})
	}
}

func TestGlyphWidthMismatchWarns(t *testing.T) {
	opts := RawOptions()
	opts.Frets = []int{0}
	opts.Glyphs = Glyphs{Open: ".", Stopped: "OO", Root: "R", Separator: "\n"}
	r, bag := newTestRenderer(opts)

	got, err := r.Render(eMajor, standard)
	if err != nil {
		t.Fatalf("width mismatch must not fail: %v", err)
	}
	if got != "OO...OOOO" {
		t.Fatalf("Render = %q", got)
	}
	if !bag.HasWarnings() || bag.HasErrors() {
		t.Fatalf("expected a warning only, got:\n%s", diag.FormatShortDiagnostics(bag.Items(), false))
	}
	d := bag.Items()[0]
	if d.Code != diag.GlyphWidthMismatch || len(d.Notes) != 3 {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
}

func TestGlyphWidthUsesDisplayColumns(t *testing.T) {
	if Width("..") != 2 || Width("音") != 2 {
		t.Fatalf("unexpected widths: %d %d", Width(".."), Width("音"))
	}
	opts := RawOptions()
	opts.Frets = []int{0}
	// equal columns, unequal byte lengths
	opts.Glyphs = Glyphs{Open: "..", Stopped: "音", Root: "根", Separator: "\n"}
	r, bag := newTestRenderer(opts)
	if _, err := r.Render(eMajor, standard); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if bag.HasWarnings() {
		t.Fatalf("same-width glyphs should not warn:\n%s", diag.FormatShortDiagnostics(bag.Items(), true))
	}
}

func TestHeaderNamingFallbacks(t *testing.T) {
	opts := DefaultOptions()
	opts.PreferFlats, opts.PreferSharps = true, true
	r, bag := newTestRenderer(opts)
	if got, want := r.Header(bbSeven, mandolin), "tuning:  7 2 9 4   chord/scale:  10 2 5 8 "; got != want {
		t.Fatalf("Header = %q, want %q", got, want)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.PitchConflictingPreference {
		t.Fatalf("expected one conflicting preference diagnostic, got:\n%s", diag.FormatShortDiagnostics(bag.Items(), false))
	}

	opts = DefaultOptions()
	opts.Modulus = 19
	r, bag = newTestRenderer(opts)
	got, err := r.Formatted(Chord{15, 0}, Tuning{0, 4})
	if err != nil {
		t.Fatalf("Formatted: %v", err)
	}
	if !strings.Contains(got, "chord/scale:  15 C ") {
		t.Fatalf("expected decimal fallback for 15, got %q", got)
	}
	if !bag.HasWarnings() || bag.Items()[0].Code != diag.PitchOutOfRange {
		t.Fatalf("expected out-of-range warning, got:\n%s", diag.FormatShortDiagnostics(bag.Items(), false))
	}
}

func TestPitchWrappingAndDuplicates(t *testing.T) {
	opts := RawOptions()
	opts.Frets = []int{0}
	r, bag := newTestRenderer(opts)

	got, err := r.Render(Chord{16, 8, -1, 8}, Tuning{16, 9, 2, 7, 11, -8})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "100011" {
		t.Fatalf("wrapped input rendered %q, want %q", got, "100011")
	}
	counts := map[diag.Code]int{}
	for _, d := range bag.Items() {
		counts[d.Code]++
		if d.Severity != diag.SevInfo {
			t.Fatalf("normalisation should be informational: %+v", d)
		}
	}
	if counts[diag.PitchWrapped] != 4 || counts[diag.PitchDuplicate] != 1 {
		t.Fatalf("unexpected diagnostic counts %v", counts)
	}
}

func TestAppendToFileNeverTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	original := "existing notes\n"
	if err := os.WriteFile(path, []byte(original), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	opts := DefaultOptions()
	opts.Frets = FretRange(0, 3)
	r, _ := newTestRenderer(opts)

	chords := []Chord{cMajor, aMinor}
	if err := r.AppendToFile(path, chords, ukulele); err != nil {
		t.Fatalf("AppendToFile: %v", err)
	}
	b1, _ := r.Formatted(cMajor, ukulele)
	b2, _ := r.Formatted(aMinor, ukulele)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if diff := cmp.Diff(original+b1+b2, string(data)); diff != "" {
		t.Fatalf("file content mismatch (-want +got):\n%s", diff)
	}

	if err := r.AppendToFile(path, chords[:1], ukulele); err != nil {
		t.Fatalf("second AppendToFile: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != original+b1+b2+b1 {
		t.Fatalf("second append did not extend the file")
	}
}

func TestAppendToFileCreatesAndRejectsBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.txt")
	r, _ := newTestRenderer(DefaultOptions())

	err := r.AppendToFile(path, []Chord{cMajor, {}}, standard)
	if !errors.Is(err, ErrMissingRoot) {
		t.Fatalf("err = %v, want ErrMissingRoot", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("file should not be created when validation fails: %v", statErr)
	}

	if err := r.AppendToFile(path, []Chord{cMajor}, standard); err != nil {
		t.Fatalf("AppendToFile: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not created: %v", err)
	}
}

func TestAppendToFileOpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	r, bag := newTestRenderer(DefaultOptions())
	err := r.AppendToFile(path, []Chord{cMajor}, standard)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
	if !bag.HasErrors() || bag.Items()[bag.Len()-1].Code != diag.IOWriteFailed {
		t.Fatalf("expected IO diagnostic")
	}
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func TestWriteFormattedStopsOnWriteError(t *testing.T) {
	r, _ := newTestRenderer(DefaultOptions())
	w := &failingWriter{n: 1}
	err := r.WriteFormatted(w, []Chord{cMajor, aMinor, eMajor}, standard)
	if err == nil || err.Error() != "disk full" {
		t.Fatalf("err = %v, want disk full", err)
	}
}

func TestPainterWrapsGridGlyphsOnly(t *testing.T) {
	opts := RawOptions()
	opts.Frets = []int{0}
	opts.DisplayRoots = true
	opts.NumberFrets = true
	r, bag := newTestRenderer(opts)
	painted := r.WithPainter(func(c Cell, g string) string {
		if c == CellRoot {
			return "<" + g + ">"
		}
		return g
	})
	got, err := painted.Render(eMajor, standard)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := " 0 <r>0001<r>"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
	if bag.HasWarnings() {
		t.Fatalf("painting must not trigger width warnings")
	}
	plain, _ := r.Render(eMajor, standard)
	if plain != " 0 r0001r" {
		t.Fatalf("WithPainter modified the original renderer: %q", plain)
	}
}

package fretboard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"fretboard/internal/diag"
	"fretboard/internal/pitch"
)

// Painter decorates a selected glyph, e.g. with terminal colours. It is
// applied after glyph widths are checked.
type Painter func(c Cell, glyph string) string

// Renderer turns chords into text diagrams. It holds no state between calls.
type Renderer struct {
	opts     Options
	reporter diag.Reporter
	painter  Painter
}

// New returns a Renderer using opts. Diagnostics go to r; nil discards them.
func New(opts Options, r diag.Reporter) *Renderer {
	if r == nil {
		r = diag.NopReporter{}
	}
	return &Renderer{opts: opts, reporter: r}
}

// WithPainter returns a copy of the Renderer that passes every grid glyph
// through p.
func (r *Renderer) WithPainter(p Painter) *Renderer {
	cp := *r
	cp.painter = p
	return &cp
}

// Options returns the renderer configuration.
func (r *Renderer) Options() Options {
	return r.opts
}

type prepared struct {
	chord  Chord
	tuning Tuning
	grid   Grid
}

// prepare validates the inputs, reports normalisations and computes the grid.
// Structural problems are reported as errors and returned before any text is
// produced.
func (r *Renderer) prepare(chord Chord, tuning Tuning) (prepared, error) {
	if r.opts.Modulus <= 0 {
		diag.ReportError(r.reporter, diag.RenderInvalidModulus, "modulus",
			fmt.Sprintf("modulus %d is not positive", r.opts.Modulus)).Emit()
		return prepared{}, fmt.Errorf("%w: got %d", ErrInvalidModulus, r.opts.Modulus)
	}
	if len(chord) == 0 {
		diag.ReportError(r.reporter, diag.RenderMissingRoot, "chord",
			"chord is empty, there is no root to highlight").Emit()
		return prepared{}, ErrMissingRoot
	}
	for i, f := range r.opts.Frets {
		if f < 0 {
			diag.ReportError(r.reporter, diag.RenderNegativeFret, fmt.Sprintf("frets[%d]", i),
				fmt.Sprintf("fret %d is negative", f)).Emit()
			return prepared{}, fmt.Errorf("%w: %d", ErrNegativeFret, f)
		}
	}

	p := prepared{
		chord:  r.wrap("chord", chord),
		tuning: Tuning(r.wrap("tuning", Chord(tuning))),
	}
	seen := make(map[pitch.Class]int, len(p.chord))
	for i, pc := range p.chord {
		if first, dup := seen[pc]; dup {
			diag.ReportInfo(r.reporter, diag.PitchDuplicate, fmt.Sprintf("chord[%d]", i),
				fmt.Sprintf("pitch class %d already listed at chord[%d]", pc, first)).Emit()
			continue
		}
		seen[pc] = i
	}

	grid, err := Compute(p.chord, p.tuning, r.opts.Frets, r.opts.Modulus)
	if err != nil {
		return prepared{}, err
	}
	p.grid = grid
	return p, nil
}

// wrap reduces every class into [0, modulus), reporting each change.
func (r *Renderer) wrap(what string, in []pitch.Class) []pitch.Class {
	out := make([]pitch.Class, len(in))
	for i, pc := range in {
		out[i] = pitch.Normalize(pc, r.opts.Modulus)
		if out[i] != pc {
			diag.ReportInfo(r.reporter, diag.PitchWrapped, fmt.Sprintf("%s[%d]", what, i),
				fmt.Sprintf("pitch class %d wrapped to %d", pc, out[i])).Emit()
		}
	}
	return out
}

// Grid validates the inputs and returns the membership grid.
func (r *Renderer) Grid(chord Chord, tuning Tuning) (Grid, error) {
	p, err := r.prepare(chord, tuning)
	if err != nil {
		return Grid{}, err
	}
	return p.grid, nil
}

// Render returns the diagram: one row per fret joined by the separator glyph,
// with no trailing separator.
func (r *Renderer) Render(chord Chord, tuning Tuning) (string, error) {
	checkGlyphWidths(r.opts.Glyphs, r.reporter)
	p, err := r.prepare(chord, tuning)
	if err != nil {
		return "", err
	}
	return r.diagram(p.grid), nil
}

func (r *Renderer) diagram(g Grid) string {
	var b strings.Builder
	for i, row := range g.Cells {
		if i > 0 {
			b.WriteString(r.opts.Glyphs.Separator)
		}
		if r.opts.NumberFrets {
			fmt.Fprintf(&b, "%2d ", g.Frets[i])
		}
		for _, c := range row {
			b.WriteString(r.glyph(c))
		}
	}
	return b.String()
}

func (r *Renderer) glyph(c Cell) string {
	if c == CellRoot && !r.opts.DisplayRoots {
		c = CellStopped
	}
	var s string
	switch c {
	case CellRoot:
		s = r.opts.Glyphs.Root
	case CellStopped:
		s = r.opts.Glyphs.Stopped
	default:
		s = r.opts.Glyphs.Open
	}
	if r.painter != nil {
		return r.painter(c, s)
	}
	return s
}

// Header names the tuning and the chord, e.g.
//
//	tuning:  E A D G B E   chord/scale:  E G# B
//
// Every name is followed by a single space.
func (r *Renderer) Header(chord Chord, tuning Tuning) string {
	return r.header(chord, tuning)
}

func (r *Renderer) header(chord Chord, tuning Tuning) string {
	namer := r.namer()
	var b strings.Builder
	b.WriteString("tuning:  ")
	for _, s := range tuning {
		b.WriteString(namer(s))
		b.WriteByte(' ')
	}
	b.WriteString("  chord/scale:  ")
	for _, pc := range chord {
		b.WriteString(namer(pc))
		b.WriteByte(' ')
	}
	return b.String()
}

// namer resolves the naming mode once per header so a conflicting preference
// is reported a single time.
func (r *Renderer) namer() func(pitch.Class) string {
	decimal := func(pc pitch.Class) string { return fmt.Sprint(int(pc)) }
	if !r.opts.UseCommonNames {
		return decimal
	}
	pref, err := pitch.PreferenceFrom(r.opts.PreferFlats, r.opts.PreferSharps)
	if err != nil {
		diag.ReportWarning(r.reporter, diag.PitchConflictingPreference, "names",
			"both prefer_sharps and prefer_flats are set; using pitch numbers").Emit()
		return decimal
	}
	return func(pc pitch.Class) string {
		name, err := pitch.Name(pc, pref)
		if err != nil {
			diag.ReportWarning(r.reporter, diag.PitchOutOfRange, "names",
				fmt.Sprintf("pitch class %d has no common name; using the number", pc)).Emit()
		}
		return name
	}
}

// Formatted returns the diagram framed for printing: a leading blank line,
// the optional header followed by a blank line, the diagram, and two
// trailing newlines.
func (r *Renderer) Formatted(chord Chord, tuning Tuning) (string, error) {
	checkGlyphWidths(r.opts.Glyphs, r.reporter)
	p, err := r.prepare(chord, tuning)
	if err != nil {
		return "", err
	}
	return r.formatted(p), nil
}

func (r *Renderer) formatted(p prepared) string {
	var b strings.Builder
	b.WriteByte('\n')
	if r.opts.PrintHeader {
		b.WriteString(r.header(p.chord, p.tuning))
		b.WriteString("\n\n")
	}
	b.WriteString(r.diagram(p.grid))
	b.WriteString("\n\n")
	return b.String()
}

// prepareAll validates every chord before anything is written.
func (r *Renderer) prepareAll(chords []Chord, tuning Tuning) ([]prepared, error) {
	checkGlyphWidths(r.opts.Glyphs, r.reporter)
	out := make([]prepared, 0, len(chords))
	for i, c := range chords {
		p, err := r.prepare(c, tuning)
		if err != nil {
			return nil, fmt.Errorf("chord %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// WriteFormatted writes one formatted block per chord to w, in order.
// All chords are validated first; on a validation error nothing is written.
func (r *Renderer) WriteFormatted(w io.Writer, chords []Chord, tuning Tuning) error {
	ps, err := r.prepareAll(chords, tuning)
	if err != nil {
		return err
	}
	return r.writeBlocks(w, ps)
}

func (r *Renderer) writeBlocks(w io.Writer, ps []prepared) error {
	for _, p := range ps {
		if _, err := io.WriteString(w, r.formatted(p)); err != nil {
			return err
		}
	}
	return nil
}

// AppendToFile formats every chord and appends the blocks to path, creating
// it when missing. Existing content is never truncated. The file is closed
// on every return path; buffered blocks are flushed first.
func (r *Renderer) AppendToFile(path string, chords []Chord, tuning Tuning) (err error) {
	ps, err := r.prepareAll(chords, tuning)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		r.reportIO(path, err)
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.reportIO(path, cerr)
			err = errors.Join(err, fmt.Errorf("close %s: %w", path, cerr))
		}
	}()

	w := bufio.NewWriter(f)
	defer func() {
		if ferr := w.Flush(); ferr != nil {
			r.reportIO(path, ferr)
			err = errors.Join(err, fmt.Errorf("write %s: %w", path, ferr))
		}
	}()

	if werr := r.writeBlocks(w, ps); werr != nil {
		r.reportIO(path, werr)
		return fmt.Errorf("write %s: %w", path, werr)
	}
	return nil
}

func (r *Renderer) reportIO(path string, err error) {
	diag.ReportError(r.reporter, diag.IOWriteFailed, path, err.Error()).Emit()
}

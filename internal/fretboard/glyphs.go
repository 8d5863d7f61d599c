package fretboard

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"fretboard/internal/diag"
)

// Width returns the display width of a glyph in terminal columns.
func Width(glyph string) int {
	return runewidth.StringWidth(norm.NFC.String(glyph))
}

// checkGlyphWidths warns when open, stopped and root glyphs would not line
// up. It never fails; the diagram is still rendered.
func checkGlyphWidths(g Glyphs, r diag.Reporter) bool {
	open, stopped, root := Width(g.Open), Width(g.Stopped), Width(g.Root)
	if open == stopped && open == root {
		return true
	}
	diag.ReportWarning(r, diag.GlyphWidthMismatch, "glyphs",
		"open, stopped and root glyphs are not all the same width; columns will not align").
		WithNote("glyphs.open", fmt.Sprintf("%q is %d columns wide", g.Open, open)).
		WithNote("glyphs.stopped", fmt.Sprintf("%q is %d columns wide", g.Stopped, stopped)).
		WithNote("glyphs.root", fmt.Sprintf("%q is %d columns wide", g.Root, root)).
		Emit()
	return false
}

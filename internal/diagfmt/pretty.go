package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"fretboard/internal/diag"
)

// Pretty prints bag.Items() (call bag.Sort() first if order matters) as
//
//	<SEV> <CODE>: <subject>: <message>
//	  note: <subject>: <message>
//
// Severities below opts.MinSeverity are skipped.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	if bag == nil {
		return
	}
	sevColor := map[diag.Severity]*color.Color{
		diag.SevInfo:    color.New(color.FgCyan),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevError:   color.New(color.FgRed, color.Bold),
	}
	noteColor := color.New(color.Faint)
	for _, c := range sevColor {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	if opts.Color {
		noteColor.EnableColor()
	} else {
		noteColor.DisableColor()
	}

	for _, d := range bag.Items() {
		if uint8(d.Severity) < opts.MinSeverity {
			continue
		}
		head := sevColor[d.Severity].Sprintf("%s %s", d.Severity, d.Code.ID())
		if d.Subject != "" {
			fmt.Fprintf(w, "%s: %s: %s\n", head, d.Subject, d.Message)
		} else {
			fmt.Fprintf(w, "%s: %s\n", head, d.Message)
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s: %s\n", noteColor.Sprint("note:"), n.Subject, n.Msg)
		}
	}
}

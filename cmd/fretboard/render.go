package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fretboard/internal/diag"
	"fretboard/internal/fretboard"
)

const defaultChord = "e_M"

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [flags] [chord|scale|pitches...]",
		Short: "Print fretboard diagrams",
		Long: `Render prints one diagram per chord or scale. Each argument is a catalog
name (e_M, bb_m7b5, c_dorian; see "fretboard list") or a pitch list with the
root first ("4,8,11" or "E,G#,B"). Without arguments an E major chord is shown.`,
		RunE: runRender,
	}
	addRenderFlags(cmd.Flags())
	cmd.Flags().String("format", "text", "output format (text|json|msgpack)")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return s.finish(fmt.Errorf("failed to get format flag: %w", err))
	}
	switch format {
	case "text", "json", "msgpack":
	default:
		return s.finish(fmt.Errorf("unsupported format %q (must be text, json or msgpack)", format))
	}

	setup, err := resolveRender(cmd, s)
	if err != nil {
		diag.ReportError(s.reporter, diag.ConfigInvalid, "config", err.Error()).Emit()
		return s.finish(err)
	}
	chords, err := chordArgs(args, defaultChord)
	if err != nil {
		return s.finish(err)
	}

	r := fretboard.New(setup.opts, s.reporter)
	done := s.timer.Track("render")
	var out bytes.Buffer
	switch format {
	case "json", "msgpack":
		err = writeExports(&out, r, chords, setup.tuning, format)
	default:
		if s.color {
			r = r.WithPainter(cellPainter())
		}
		err = writeText(&out, r, chords, setup)
	}
	done(fmt.Sprintf("%d diagram(s)", len(chords)))
	if err != nil {
		return s.finish(err)
	}
	if _, err := s.out.Write(out.Bytes()); err != nil {
		return s.finish(err)
	}
	return s.finish(nil)
}

func chordArgs(args []string, fallback string) ([]fretboard.Chord, error) {
	if len(args) == 0 {
		args = []string{fallback}
	}
	chords := make([]fretboard.Chord, 0, len(args))
	for _, a := range args {
		nc, err := parseChord(a)
		if err != nil {
			return nil, err
		}
		chords = append(chords, nc.Chord)
	}
	return chords, nil
}

func writeText(out *bytes.Buffer, r *fretboard.Renderer, chords []fretboard.Chord, setup renderSetup) error {
	if !setup.raw {
		return r.WriteFormatted(out, chords, setup.tuning)
	}
	lines := make([]string, 0, len(chords))
	for _, c := range chords {
		line, err := r.Render(c, setup.tuning)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}
	out.WriteString(strings.Join(lines, "\n"))
	out.WriteByte('\n')
	return nil
}

func writeExports(out *bytes.Buffer, r *fretboard.Renderer, chords []fretboard.Chord, tuning fretboard.Tuning, format string) error {
	exports := make([]fretboard.Export, 0, len(chords))
	for _, c := range chords {
		e, err := r.Export(c, tuning)
		if err != nil {
			return err
		}
		exports = append(exports, e)
	}
	if format == "msgpack" {
		return fretboard.EncodeMsgpack(out, exports)
	}
	return fretboard.EncodeJSON(out, exports)
}

// cellPainter colours roots red and stopped positions green.
func cellPainter() fretboard.Painter {
	root := color.New(color.FgRed, color.Bold)
	stopped := color.New(color.FgGreen)
	root.EnableColor()
	stopped.EnableColor()
	return func(c fretboard.Cell, glyph string) string {
		switch c {
		case fretboard.CellRoot:
			return root.Sprint(glyph)
		case fretboard.CellStopped:
			return stopped.Sprint(glyph)
		}
		return glyph
	}
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"fretboard/internal/catalog"
	"fretboard/internal/fretboard"
	"fretboard/internal/pitch"
)

var listSections = []string{"tunings", "chords", "scales", "groups"}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "list [tunings|chords|scales|groups]",
		Short:     "List the named tunings, chords, scales and groups",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: listSections,
		RunE:      runList,
	}
}

type listRow struct {
	name  string
	value string
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	sections := listSections
	if len(args) == 1 {
		sections = []string{args[0]}
	}

	heading := lipgloss.NewStyle().Bold(true)
	if s.color {
		heading = heading.Foreground(lipgloss.Color("6"))
	}
	for i, sec := range sections {
		rows, err := listRows(sec)
		if err != nil {
			return s.finish(err)
		}
		if i > 0 {
			fmt.Fprintln(s.out)
		}
		fmt.Fprintln(s.out, heading.Render(sec+":"))
		writeRows(s.out, rows)
	}
	return s.finish(nil)
}

func listRows(section string) ([]listRow, error) {
	var rows []listRow
	switch section {
	case "tunings":
		for _, n := range catalog.TuningNames() {
			t, _ := catalog.Tuning(n)
			rows = append(rows, listRow{n, noteNames(t)})
		}
	case "chords":
		for _, e := range catalog.Chords() {
			rows = append(rows, listRow{e.Name, noteNames(e.Pitches)})
		}
	case "scales":
		for _, e := range catalog.Scales() {
			rows = append(rows, listRow{e.Name, noteNames(e.Pitches)})
		}
	case "groups":
		for _, n := range catalog.GroupNames() {
			entries, _ := catalog.Group(n)
			names := make([]string, len(entries))
			for i, e := range entries {
				names[i] = e.Name
			}
			rows = append(rows, listRow{n, strings.Join(names, " ")})
		}
	default:
		return nil, fmt.Errorf("unknown section %q (expected %s)", section, strings.Join(listSections, "|"))
	}
	return rows, nil
}

func noteNames[T fretboard.Chord | fretboard.Tuning](pcs T) string {
	names := make([]string, len(pcs))
	for i, pc := range pcs {
		names[i], _ = pitch.NameOf(pc, false, false)
	}
	return strings.Join(names, " ")
}

func writeRows(w io.Writer, rows []listRow) {
	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r.name))
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %s  %s\n", runewidth.FillRight(r.name, width), r.value)
	}
}

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fretboard/internal/diag"
	"fretboard/internal/pitch"
)

func newNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name [flags] pitch-class...",
		Short: "Print the note name of pitch classes",
		Long: `Name prints "<pitch class> <name>" per argument. Out-of-range classes and
conflicting --sharps/--flats fall back to the number and are reported.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runName,
	}
	cmd.Flags().Bool("sharps", false, "spell chromatic notes with sharps")
	cmd.Flags().Bool("flats", false, "spell chromatic notes with flats")
	return cmd
}

func runName(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	sharps, err := cmd.Flags().GetBool("sharps")
	if err != nil {
		return s.finish(fmt.Errorf("failed to get sharps flag: %w", err))
	}
	flats, err := cmd.Flags().GetBool("flats")
	if err != nil {
		return s.finish(fmt.Errorf("failed to get flats flag: %w", err))
	}

	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return s.finish(fmt.Errorf("invalid pitch class %q: expected an integer", a))
		}
		name, err := pitch.NameOf(pitch.Class(n), flats, sharps)
		switch {
		case errors.Is(err, pitch.ErrConflictingPreference):
			diag.ReportWarning(s.reporter, diag.PitchConflictingPreference, "names", err.Error()).Emit()
		case errors.Is(err, pitch.ErrOutOfRange):
			diag.ReportWarning(s.reporter, diag.PitchOutOfRange, a, err.Error()).Emit()
		}
		fmt.Fprintf(s.out, "%d %s\n", n, name)
	}
	return s.finish(nil)
}

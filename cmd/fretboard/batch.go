package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fretboard/internal/catalog"
	"fretboard/internal/diag"
	"fretboard/internal/fretboard"
)

const (
	defaultBatchFile  = "pfb_output.txt"
	defaultBatchChord = "c_M"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [flags] [chord|scale|pitches...]",
		Short: "Append formatted diagrams to a file",
		Long: `Batch formats one diagram per chord and appends them, in order, to the
output file. The file is created when missing and never truncated. Chords
come from the arguments and from --group; without either a C major chord is
written.`,
		RunE: runBatch,
	}
	addRenderFlags(cmd.Flags())
	cmd.Flags().StringP("output", "o", "", "file to append to (default pfb_output.txt)")
	cmd.Flags().StringSlice("group", nil, "append every chord of a named group (see: fretboard list groups)")
	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	setup, err := resolveRender(cmd, s)
	if err != nil {
		diag.ReportError(s.reporter, diag.ConfigInvalid, "config", err.Error()).Emit()
		return s.finish(err)
	}
	if setup.raw {
		return s.finish(fmt.Errorf("--raw is not supported by batch; files always get formatted diagrams"))
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return s.finish(fmt.Errorf("failed to get output flag: %w", err))
	}
	if output == "" {
		output = setup.outputFile
	}
	if output == "" {
		output = defaultBatchFile
	}

	groups, err := cmd.Flags().GetStringSlice("group")
	if err != nil {
		return s.finish(fmt.Errorf("failed to get group flag: %w", err))
	}
	chords, err := batchChords(args, groups)
	if err != nil {
		return s.finish(err)
	}

	r := fretboard.New(setup.opts, s.reporter)
	done := s.timer.Track("write")
	err = r.AppendToFile(output, chords, setup.tuning)
	done(output)
	if err != nil {
		return s.finish(err)
	}
	if !s.quiet {
		fmt.Fprintf(s.out, "appended %d diagram(s) to %s\n", len(chords), output)
	}
	return s.finish(nil)
}

func batchChords(args, groups []string) ([]fretboard.Chord, error) {
	var chords []fretboard.Chord
	for _, g := range groups {
		entries, err := catalog.Group(g)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			chords = append(chords, e.Pitches)
		}
	}
	if len(args) == 0 && len(chords) > 0 {
		return chords, nil
	}
	fromArgs, err := chordArgs(args, defaultBatchChord)
	if err != nil {
		return nil, err
	}
	return append(chords, fromArgs...), nil
}

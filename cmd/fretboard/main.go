package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fretboard/internal/version"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fretboard",
		Short: "Text fretboard diagrams for stringed instruments",
		Long: `fretboard maps a chord or scale onto an instrument tuning and prints
one row per fret and one column per string, marking open, stopped and root
positions.`,
		SilenceUsage: true,
	}
	rootCmd.Version = version.Version

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newNameCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to keep")
	rootCmd.PersistentFlags().String("config", "", "config file (default: nearest fretboard.toml or fretboard.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("diagnostics", "log", "how to report diagnostics (log|pretty|json)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to this file on exit")
	return rootCmd
}

// main builds the command tree and executes it, exiting with status 1 when
// the command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fretboard/internal/prof"
)

// setupProfiling starts the profilers requested by the persistent
// --cpu-profile and --mem-profile flags.
func setupProfiling(cmd *cobra.Command) (*prof.Profiler, error) {
	root := cmd.Root()

	cpuProfile, err := root.PersistentFlags().GetString("cpu-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memProfile, err := root.PersistentFlags().GetString("mem-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	return prof.Start(cpuProfile, memProfile)
}

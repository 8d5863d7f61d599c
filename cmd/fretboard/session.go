package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fretboard/internal/diag"
	"fretboard/internal/diagfmt"
	"fretboard/internal/logging"
	"fretboard/internal/observ"
	"fretboard/internal/prof"
)

// session carries the per-invocation ambient state: diagnostics, logger,
// timings and output switches.
type session struct {
	bag      *diag.Bag
	reporter diag.Reporter
	logger   *zap.Logger
	timer    *observ.Timer
	profiler *prof.Profiler

	diagMode string
	color    bool
	errColor bool
	quiet    bool
	timings  bool

	out    io.Writer
	errOut io.Writer
}

func newSession(cmd *cobra.Command) (*session, error) {
	root := cmd.Root().PersistentFlags()

	colorFlag, err := root.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	mode, err := readColorMode(colorFlag)
	if err != nil {
		return nil, err
	}
	quiet, err := root.GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := root.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	maxDiagnostics, err := root.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	levelFlag, err := root.GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	level, err := logging.ParseLevel(levelFlag)
	if err != nil {
		return nil, err
	}
	if quiet && level < zapcore.ErrorLevel {
		level = zapcore.ErrorLevel
	}
	diagMode, err := root.GetString("diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	switch diagMode {
	case "log", "pretty", "json":
	default:
		return nil, fmt.Errorf("invalid --diagnostics value %q (expected log|pretty|json)", diagMode)
	}

	profiler, err := setupProfiling(cmd)
	if err != nil {
		return nil, err
	}

	s := &session{
		bag:      diag.NewBag(maxDiagnostics),
		logger:   logging.New(cmd.ErrOrStderr(), level),
		timer:    observ.NewTimer(),
		profiler: profiler,
		diagMode: diagMode,
		color:    shouldColor(mode, cmd.OutOrStdout()),
		errColor: shouldColor(mode, cmd.ErrOrStderr()),
		quiet:    quiet,
		timings:  timings,
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
	}
	reporters := diag.MultiReporter{diag.BagReporter{Bag: s.bag}}
	if diagMode == "log" {
		reporters = append(reporters, logging.Reporter{Logger: s.logger})
	}
	s.reporter = diag.NewDedupReporter(reporters)
	return s, nil
}

// finish flushes diagnostics, timings and profiles. It returns runErr, or
// the first output failure when runErr is nil, so callers can
// `return s.finish(err)`.
func (s *session) finish(runErr error) error {
	if err := s.profiler.Stop(); err != nil && runErr == nil {
		runErr = err
	}
	switch s.diagMode {
	case "pretty":
		s.bag.Sort()
		opts := diagfmt.PrettyOpts{Color: s.errColor, ShowNotes: true, MinSeverity: uint8(diag.SevWarning)}
		if s.quiet {
			opts.MinSeverity = uint8(diag.SevError)
		}
		diagfmt.Pretty(s.errOut, s.bag, opts)
	case "json":
		if s.bag.Len() > 0 {
			if err := diagfmt.JSON(s.errOut, s.bag, diagfmt.JSONOpts{IncludeNotes: true}); err != nil && runErr == nil {
				runErr = err
			}
		}
	}
	if s.timings {
		fmt.Fprint(s.errOut, s.timer.Summary())
	}
	_ = s.logger.Sync()
	return runErr
}

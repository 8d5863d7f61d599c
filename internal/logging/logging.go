// Package logging builds the zap logger used by the CLI and bridges
// diagnostics onto it.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fretboard/internal/diag"
)

// ParseLevel accepts debug|info|warn|error (case insensitive).
func ParseLevel(s string) (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q (expected debug|info|warn|error)", s)
	}
	return lvl, nil
}

// New returns a console logger writing to w at the given level.
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}

// Reporter forwards diagnostics to a logger: info as debug, warnings as
// warn, errors as error.
type Reporter struct {
	Logger *zap.Logger
}

func (r Reporter) Report(code diag.Code, sev diag.Severity, subject, msg string, notes []diag.Note) {
	if r.Logger == nil {
		return
	}
	fields := make([]zap.Field, 0, 3)
	fields = append(fields, zap.String("code", code.ID()))
	if subject != "" {
		fields = append(fields, zap.String("subject", subject))
	}
	if len(notes) > 0 {
		ns := make([]string, len(notes))
		for i, n := range notes {
			ns[i] = n.Subject + ": " + n.Msg
		}
		fields = append(fields, zap.Strings("notes", ns))
	}
	switch sev {
	case diag.SevError:
		r.Logger.Error(msg, fields...)
	case diag.SevWarning:
		r.Logger.Warn(msg, fields...)
	default:
		r.Logger.Debug(msg, fields...)
	}
}

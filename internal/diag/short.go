package diag

import (
	"fmt"
	"strings"
)

// FormatShortDiagnostics renders diagnostics into a stable, single-line-per-entry
// representation:
//
//	warning GLY2001 glyphs: open " ." is 2 columns wide, root "R" is 1
//
// Notes follow their parent as "note" lines when includeNotes is set. The
// result has no trailing newline and is empty when diags is empty.
func FormatShortDiagnostics(diags []Diagnostic, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}
	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		lines = append(lines, shortLine(severityLabel(d.Severity), d.Code, d.Subject, d.Message))
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			lines = append(lines, shortLine("note", d.Code, n.Subject, n.Msg))
		}
	}
	return strings.Join(lines, "\n")
}

func shortLine(label string, code Code, subject, msg string) string {
	if subject == "" {
		return fmt.Sprintf("%s %s %s", label, code.ID(), sanitizeMessage(msg))
	}
	return fmt.Sprintf("%s %s %s: %s", label, code.ID(), subject, sanitizeMessage(msg))
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}

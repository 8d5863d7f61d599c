package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo notes a normalisation the caller may want to know about.
	SevInfo Severity = iota
	// SevWarning marks a degraded but completed operation.
	SevWarning
	// SevError marks a rejected operation; nothing was rendered.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

package notify

// Severity represents the notification severity.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeverityInfo    Severity = "info"
)

// Valid reports whether s is one of the four known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeveritySuccess, SeverityWarning, SeverityDanger, SeverityInfo:
		return true
	default:
		return false
	}
}

// Glyph returns the icon prepended to messages of this severity.
func (s Severity) Glyph() string {
	switch s {
	case SeveritySuccess:
		return "✅"
	case SeverityWarning:
		return "⚠️"
	case SeverityDanger:
		return "❌"
	default:
		return "ℹ️"
	}
}

// Class returns the toast style class for this severity.
func (s Severity) Class() string {
	switch s {
	case SeveritySuccess:
		return "text-bg-success"
	case SeverityWarning:
		return "text-bg-warning"
	case SeverityDanger:
		return "text-bg-danger"
	default:
		return "text-bg-info"
	}
}

// ParseSeverity maps a severity name to a Severity.
// Unrecognized names default to SeverityInfo.
func ParseSeverity(name string) Severity {
	switch Severity(name) {
	case SeveritySuccess:
		return SeveritySuccess
	case SeverityWarning:
		return SeverityWarning
	case SeverityDanger:
		return SeverityDanger
	default:
		return SeverityInfo
	}
}

// package shared defines shared helpers
package shared

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var levelColors = map[log.Level]string{
	log.DebugLevel: "#626262",
	log.InfoLevel:  "#04B575",
	log.WarnLevel:  "#FFA500",
	log.ErrorLevel: "#FF0000",
	log.FatalLevel: "#7D56F4",
}

// NewLogger creates a new [log.Logger] instance with the specified [io.Writer], with timestamps and caller reporting enabled.
//
// The writer defaults to [os.Stderr]
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: true}
	logger := log.NewWithOptions(w, opts)
	logger.SetStyles(levelStyles())
	return logger
}

func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	for level, color := range levelColors {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(strings.ToUpper(level.String())).
			Bold(true).
			MaxWidth(4).
			Foreground(lipgloss.Color(color))
	}
	return styles
}

// WithLogger creates a child [log.Logger] with the specified key-value pairs added to all log entries.
func WithLogger(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

// SetLogLevel sets the [log.Level] for the given [log.Logger].
func SetLogLevel(l *log.Logger, ll log.Level) {
	l.SetLevel(ll)
}

// GenerateID generates a new v4 [uuid.UUID] as a string
func GenerateID() string {
	return uuid.New().String()
}

// MaskToken hides all but the last four characters of a credential for log output.
func MaskToken(token string) string {
	const visible = 4
	if len(token) <= visible {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-visible) + token[len(token)-visible:]
}

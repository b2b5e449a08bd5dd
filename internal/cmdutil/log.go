// internal/cmdutil/log.go
package cmdutil

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger for diagnostics on dst. Lines look like
// "WARNING: message"; there are no timestamps or colors.
func NewLogger(dst io.Writer) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:          dst,
		NoColor:      true,
		PartsOrder:   []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		PartsExclude: []string{zerolog.TimestampFieldName},
		FormatLevel:  formatLevel,
	}
	return zerolog.New(cw).Level(zerolog.InfoLevel)
}

func formatLevel(i any) string {
	lvl, _ := i.(string)
	switch lvl {
	case zerolog.LevelWarnValue:
		return "WARNING:"
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue:
		return "ERROR:"
	case "":
		return ""
	}
	return strings.ToUpper(lvl) + ":"
}

// Warnf logs a non-fatal advisory.
func Warnf(log zerolog.Logger, format string, a ...any) {
	log.Warn().Msgf(format, a...)
}

package logger

import (
	"strings"

	"github.com/aleister1102/discordmsg/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// ParseLevel parses a level name; the empty string means info.
func ParseLevel(levelStr string) (zerolog.Level, error) {
	levelStr = strings.ToLower(strings.TrimSpace(levelStr))
	if levelStr == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return zerolog.InfoLevel, errorwrapper.NewValidationError("log_level", levelStr, "unknown log level")
	}
	return level, nil
}

// ParseFormat parses a format name, falling back to console.
func ParseFormat(formatStr string) LogFormat {
	switch strings.ToLower(strings.TrimSpace(formatStr)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatConsole
	}
}

package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// LevelCritical sits above slog's built-in levels for failures that end the
// process.
const LevelCritical = slog.LevelError + 4

// Setup installs a text handler at the requested level as the default
// logger.
func Setup(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))

	return nil
}

// ParseLevel maps the conventional level names onto slog levels.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

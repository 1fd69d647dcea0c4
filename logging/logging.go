// Package logging configures the slog logger dnscore packages emit
// through. The library logs sparingly (administrative registry mutations
// at debug level, nothing on hot read or send paths); hosting
// applications call Configure once at startup to pick level and format.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Level  string            // DEBUG, INFO, WARN, ERROR; default INFO
	Format string            // "json" or "text"; default text
	Output io.Writer         // defaults to os.Stderr
	Fields map[string]string // attrs attached to every line
}

// Configure builds a logger from cfg and installs it as the slog default.
func Configure(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	if len(cfg.Fields) > 0 {
		attrs := make([]slog.Attr, 0, len(cfg.Fields))
		for k, v := range cfg.Fields {
			attrs = append(attrs, slog.String(k, v))
		}
		handler = handler.WithAttrs(attrs)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

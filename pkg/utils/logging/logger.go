package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/clog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Format represents the log output format
type Format int

const (
	FormatAuto Format = iota
	FormatConsole
	FormatJSON
)

// NewLogger creates a new slog.Logger with automatic format detection
func NewLogger(level slog.Level, w io.Writer) *slog.Logger {
	return NewLoggerWithFormat(level, w, FormatAuto)
}

// NewLoggerWithFormat creates a new slog.Logger with the given format.
// Console format uses clog for colored output; JSON uses the structured
// handler. Auto picks console when w is a terminal.
func NewLoggerWithFormat(level slog.Level, w io.Writer, format Format) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	return slog.New(newHandler(level, w, format))
}

// NewDualLogger creates a logger that writes to the console and, when
// filePath is non-empty, mirrors every record as JSON into a rotating
// log file. Both sinks see the same records; the file sink is always
// JSON regardless of the console format.
func NewDualLogger(level slog.Level, console io.Writer, format Format, filePath string) *slog.Logger {
	consoleHandler := newHandler(level, console, format)
	if filePath == "" {
		return slog.New(consoleHandler)
	}

	sink := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}
	fileHandler := slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: level})

	return slog.New(NewTeeHandler(consoleHandler, fileHandler))
}

func newHandler(level slog.Level, w io.Writer, format Format) slog.Handler {
	switch format {
	case FormatConsole:
		return consoleHandler(level, w)
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		})
	default:
		isTerminal := false
		if f, ok := w.(*os.File); ok {
			isTerminal = term.IsTerminal(int(f.Fd()))
		}
		if isTerminal {
			return consoleHandler(level, w)
		}
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
}

func consoleHandler(level slog.Level, w io.Writer) slog.Handler {
	return clog.New(
		clog.WithWriter(w),
		clog.WithLevel(level),
		clog.WithTimeFmt("15:04:05"),
		clog.WithSource(false),
		clog.WithAttrHook(clog.GoerrHook),
	)
}

// ParseLogLevel parses a string log level to slog.Level
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug", "DEBUG":
		return slog.LevelDebug
	case "info", "INFO", "":
		return slog.LevelInfo
	case "warn", "warning", "WARN", "WARNING":
		return slog.LevelWarn
	case "error", "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

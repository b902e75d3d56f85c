// Package logging provides the logging sink the arena core consumes.
//
// The core never owns a logger: it is handed a Sink and fires Info, Warning,
// Error and Success events at it. All calls are fire-and-forget — the core
// never branches on what the sink does with them.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Level mirrors the severities the arena core can emit.
type Level int

const (
	Info Level = iota
	Warning
	Error
	Success
)

func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Success:
		return "success"
	default:
		return "unknown"
	}
}

// Sink is the external logging contract consumed by the core: source_tag,
// message, level. Implementations decide formatting, filtering and output.
type Sink interface {
	Log(sourceTag, message string, level Level)
}

// Zerolog adapts a zerolog.Logger to Sink.
type Zerolog struct {
	log zerolog.Logger
}

// NewZerolog builds a Sink writing to w, one JSON event per call.
func NewZerolog(w io.Writer) *Zerolog {
	return &Zerolog{log: zerolog.New(w).With().Timestamp().Logger()}
}

// NewZerologConsole builds a Sink writing human-readable lines to os.Stderr,
// the default for interactive/debug use.
func NewZerologConsole() *Zerolog {
	cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}
	return &Zerolog{log: zerolog.New(cw).With().Timestamp().Logger()}
}

// Log implements Sink.
func (z *Zerolog) Log(sourceTag, message string, level Level) {
	var ev *zerolog.Event
	switch level {
	case Warning:
		ev = z.log.Warn()
	case Error:
		ev = z.log.Error()
	case Success:
		ev = z.log.Info().Bool("success", true)
	default:
		ev = z.log.Info()
	}
	ev.Str("tag", sourceTag).Msg(message)
}

// nop is a Sink that discards everything; used when enable_logging is false
// and as the default in tests.
type nop struct{}

func (nop) Log(string, string, Level) {}

// Nop returns a Sink that discards every event.
func Nop() Sink { return nop{} }

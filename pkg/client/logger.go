package client

import "github.com/rs/zerolog"

// Logger is the minimal logging surface the client and its streams
// report through. The library only logs lifecycle oddities, so the
// default is to stay quiet.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything. It is the default for library use.
type NopLogger struct{}

func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// ZerologLogger adapts a zerolog.Logger to the Logger interface.
type ZerologLogger struct {
	Log zerolog.Logger
}

func (z ZerologLogger) Infof(format string, args ...any) {
	z.Log.Info().Msgf(format, args...)
}

func (z ZerologLogger) Errorf(format string, args ...any) {
	z.Log.Error().Msgf(format, args...)
}

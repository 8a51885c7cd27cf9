package config

import (
    "io"
    "os"
    "time"

    "github.com/rs/zerolog"
    "github.com/rs/zerolog/log"
)

// SetupLogger configures the global zerolog logger.  Development output is
// human readable on stderr; production output is JSON.
func SetupLogger(level string, pretty bool) {
    zerolog.TimeFieldFormat = time.RFC3339
    lvl, err := zerolog.ParseLevel(level)
    if err != nil || level == "" {
        lvl = zerolog.InfoLevel
    }
    zerolog.SetGlobalLevel(lvl)

    var out io.Writer = os.Stderr
    if pretty {
        out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
    }
    log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

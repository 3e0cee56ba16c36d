package util

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger returns the global logger scoped to component.
func Logger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// LogTeardown returns an observer suitable for a list's OnTeardown hook. It
// logs one debug event once the list has released all of its nodes.
func LogTeardown(logger zerolog.Logger, name string) func(released int) {
	return func(released int) {
		logger.Debug().
			Str("list", name).
			Int("released", released).
			Msg("list has been cleared to empty")
	}
}

package logging

import (
	"github.com/botirk38/collabfilter/types"
	"github.com/rs/zerolog"
)

// Progress returns a ProgressFunc that logs every `every` items and on completion.
func Progress(logger zerolog.Logger, every int) types.ProgressFunc {
	if every <= 0 {
		every = 100
	}
	return func(done, total int) {
		if done%every != 0 && done != total {
			return
		}
		logger.Info().
			Int("done", done).
			Int("total", total).
			Msg("item index progress")
	}
}

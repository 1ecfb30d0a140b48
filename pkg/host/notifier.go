package host

import (
	"context"

	"github.com/rs/zerolog"
)

// LogNotifier shows notices as log lines. Used where there is no editor UI.
type LogNotifier struct{}

var _ Notifier = LogNotifier{}

func (LogNotifier) Notify(ctx context.Context, level Level, message string) error {
	logger := zerolog.Ctx(ctx)

	switch level {
	case LevelError:
		logger.Error().Msg(message)
	case LevelWarning:
		logger.Warn().Msg(message)
	default:
		logger.Info().Msg(message)
	}

	return nil
}

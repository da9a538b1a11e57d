package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
)

// NoopEnqueuer logs instead of enqueuing. Used when Redis is not
// configured so password resets still succeed without delivery.
type NoopEnqueuer struct {
	log zerolog.Logger
}

var _ ports.TaskEnqueuer = (*NoopEnqueuer)(nil)

func NewNoopEnqueuer(log zerolog.Logger) *NoopEnqueuer {
	return &NoopEnqueuer{log: log}
}

func (e *NoopEnqueuer) EnqueueSendNewPassword(_ context.Context, email, _ string) error {
	e.log.Info().Str("email", email).Msg("queue disabled, new password not emailed")
	return nil
}

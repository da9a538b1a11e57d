package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/mail"
)

// Worker consumes queued tasks and performs the side effects they
// describe. Mail delivery degrades to logging when no SMTP relay is
// configured.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	sender *mail.Sender
	log    zerolog.Logger
}

func NewWorker(opt asynq.RedisClientOpt, sender *mail.Sender, log zerolog.Logger) *Worker {
	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: 2,
	})

	w := &Worker{
		server: server,
		mux:    asynq.NewServeMux(),
		sender: sender,
		log:    log,
	}
	w.mux.HandleFunc(TypeSendNewPassword, w.handleSendNewPassword)
	return w
}

// Run blocks processing tasks until Shutdown is called.
func (w *Worker) Run() error {
	return w.server.Run(w.mux)
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func (w *Worker) handleSendNewPassword(ctx context.Context, task *asynq.Task) error {
	var p newPasswordPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal %s payload: %w", TypeSendNewPassword, err)
	}

	if w.sender == nil || !w.sender.Configured() {
		w.log.Info().
			Str("task", TypeSendNewPassword).
			Str("email", p.Email).
			Msg("smtp not configured, skipping delivery")
		return nil
	}

	if err := w.sender.SendNewPassword(p.Email, p.NewPassword); err != nil {
		return fmt.Errorf("send new password email: %w", err)
	}
	w.log.Info().
		Str("task", TypeSendNewPassword).
		Str("email", p.Email).
		Msg("new password email sent")
	return nil
}

// Package queue provides asynchronous task dispatch backed by Redis.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
)

const TypeSendNewPassword = "email:new_password"

type newPasswordPayload struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

// AsynqEnqueuer pushes tasks onto a Redis-backed asynq queue.
type AsynqEnqueuer struct {
	client *asynq.Client
}

var _ ports.TaskEnqueuer = (*AsynqEnqueuer)(nil)

func NewAsynqEnqueuer(opt asynq.RedisClientOpt) *AsynqEnqueuer {
	return &AsynqEnqueuer{client: asynq.NewClient(opt)}
}

func (e *AsynqEnqueuer) EnqueueSendNewPassword(ctx context.Context, email, newPassword string) error {
	payload, err := json.Marshal(newPasswordPayload{Email: email, NewPassword: newPassword})
	if err != nil {
		return fmt.Errorf("marshal new password payload: %w", err)
	}
	task := asynq.NewTask(TypeSendNewPassword, payload)
	_, err = e.client.EnqueueContext(ctx, task,
		asynq.TaskID(uuid.NewString()),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeSendNewPassword, err)
	}
	return nil
}

func (e *AsynqEnqueuer) Close() error {
	return e.client.Close()
}

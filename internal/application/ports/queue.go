package ports

import "context"

// TaskEnqueuer enqueues async tasks (outbound email).
type TaskEnqueuer interface {
	EnqueueSendNewPassword(ctx context.Context, email, newPassword string) error
}

package notify

import (
	"context"

	"github.com/google/uuid"

	"resume-intake/internal/shared/telemetry"
)

// LogPublisher writes notifications to the structured log. Used for local development.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := uuid.NewString()
	telemetry.Info("notify.log", map[string]any{
		"message_id": id,
		"subject":    msg.Subject,
		"body":       msg.Body,
	})
	return id, nil
}

var _ Publisher = LogPublisher{}

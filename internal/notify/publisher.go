package notify

import "context"

// Publisher sends notifications to a channel. Callers treat failures as non-fatal.
type Publisher interface {
	Publish(ctx context.Context, msg Message) (messageID string, err error)
}

package pipeline

import "context"

// Replier is the outbound half of the transport: it delivers the pipeline's
// replies to the chat a request came from.
type Replier interface {
	ReplyText(chatID int64, text string) error
	ReplyAudio(chatID int64, path, caption string) error
}

// Notifier raises an admin alert. Implementations swallow their own delivery
// failures; the pipeline never depends on an alert going through.
type Notifier interface {
	Notify(ctx context.Context, err error, details string)
}

package adapter

import "context"

type InlineButton struct {
	Text string
	Data string
	URL  string
}

// BotAdapter is the outbound chat-transport port. Send operations return the
// transport message id so callers can later delete placeholder messages.
type BotAdapter interface {
	SendMessage(ctx context.Context, chatID int64, text string, rows [][]InlineButton) (int, error)
	SendPhoto(ctx context.Context, chatID int64, imageURL, caption string, rows [][]InlineButton) (int, error)
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
}

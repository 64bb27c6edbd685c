package telegram

import (
	"context"

	"github.com/rs/zerolog"

	"telegram-affiliate-bot/internal/domain/ports/adapter"
)

var _ adapter.BotAdapter = (*NoopBotAdapter)(nil)

// NoopBotAdapter implements adapter.BotAdapter for local/dev runs. It logs
// messages instead of calling Telegram.
type NoopBotAdapter struct {
	log    *zerolog.Logger
	nextID int
}

func NewNoopBotAdapter(log *zerolog.Logger) *NoopBotAdapter {
	return &NoopBotAdapter{log: log}
}

func (b *NoopBotAdapter) SendMessage(ctx context.Context, chatID int64, text string, rows [][]adapter.InlineButton) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	b.nextID++
	b.log.Info().Int64("chat_id", chatID).Int("buttons", len(rows)).Str("text", text).Msg("[noop] send message")
	return b.nextID, nil
}

func (b *NoopBotAdapter) SendPhoto(ctx context.Context, chatID int64, imageURL, caption string, rows [][]adapter.InlineButton) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	b.nextID++
	b.log.Info().Int64("chat_id", chatID).Str("image", imageURL).Str("caption", caption).Msg("[noop] send photo")
	return b.nextID, nil
}

func (b *NoopBotAdapter) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	b.log.Info().Int64("chat_id", chatID).Int("message_id", messageID).Msg("[noop] delete message")
	return nil
}

package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"telegram-affiliate-bot/internal/application"
	"telegram-affiliate-bot/internal/domain/model"
	"telegram-affiliate-bot/internal/domain/ports/adapter"
	"telegram-affiliate-bot/internal/infra/metrics"
	"telegram-affiliate-bot/internal/infra/worker"
)

var _ adapter.BotAdapter = (*RealBotAdapter)(nil)

// RealBotAdapter speaks to Telegram through tgbotapi. It implements the
// outbound BotAdapter port and routes inbound updates (from polling or the
// webhook server) through the worker pool into the facade.
type RealBotAdapter struct {
	bot    *tgbotapi.BotAPI
	facade *application.BotFacade
	pool   *worker.Pool
	log    *zerolog.Logger
}

func NewRealBotAdapter(token string, pool *worker.Pool, log *zerolog.Logger) (*RealBotAdapter, error) {
	if pool == nil {
		return nil, errors.New("worker pool is nil")
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &RealBotAdapter{bot: bot, pool: pool, log: log}, nil
}

// AttachFacade wires the facade after construction; the facade itself needs
// this adapter as its BotAdapter port. Must be called before updates flow.
func (r *RealBotAdapter) AttachFacade(f *application.BotFacade) {
	r.facade = f
}

func (r *RealBotAdapter) Username() string {
	return r.bot.Self.UserName
}

// SetWebhook registers webhookURL with Telegram, replacing any previous one.
func (r *RealBotAdapter) SetWebhook(webhookURL string) error {
	wh, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return err
	}
	_, err = r.bot.Request(wh)
	return err
}

// RemoveWebhook clears a registered webhook so polling can take over.
func (r *RealBotAdapter) RemoveWebhook() error {
	_, err := r.bot.Request(tgbotapi.DeleteWebhookConfig{})
	return err
}

// StartPolling long-polls Telegram and dispatches updates until ctx ends.
func (r *RealBotAdapter) StartPolling(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := r.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			r.bot.StopReceivingUpdates()
			return ctx.Err()
		case up := <-updates:
			r.Dispatch(up)
		}
	}
}

// Dispatch hands one update to the worker pool. Saturation drops the update
// with a log line rather than blocking the receive loop.
func (r *RealBotAdapter) Dispatch(up tgbotapi.Update) {
	if err := r.pool.Submit(func(ctx context.Context) {
		r.handleUpdate(ctx, up)
	}); err != nil {
		r.log.Warn().Err(err).Int("update_id", up.UpdateID).Msg("dropping update")
	}
}

func (r *RealBotAdapter) handleUpdate(ctx context.Context, up tgbotapi.Update) {
	switch {
	case up.CallbackQuery != nil:
		metrics.IncUpdate("callback")
		r.handleCallback(ctx, up.CallbackQuery)
	case up.Message != nil && up.Message.IsCommand():
		metrics.IncUpdate("command")
		r.handleCommand(ctx, up.Message)
	case up.Message != nil && up.Message.Text != "":
		metrics.IncUpdate("text")
		r.facade.HandleText(ctx, model.IncomingMessage{
			ChatID:    up.Message.Chat.ID,
			MessageID: up.Message.MessageID,
			Text:      up.Message.Text,
		})
	}
}

func (r *RealBotAdapter) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		if err := r.facade.HandleStart(ctx, msg.Chat.ID); err != nil {
			r.log.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("start command failed")
		}
	default:
		// unknown commands are treated as plain text, matching the original bot
		r.facade.HandleText(ctx, model.IncomingMessage{
			ChatID:    msg.Chat.ID,
			MessageID: msg.MessageID,
			Text:      msg.Text,
		})
	}
}

func (r *RealBotAdapter) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// ack first so the client stops its spinner
	if _, err := r.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		r.log.Warn().Err(err).Msg("callback ack failed")
	}
	if cb.Message == nil {
		return
	}
	if cb.Data == application.CallbackCoins {
		if err := r.facade.HandleCoins(ctx, cb.Message.Chat.ID); err != nil {
			r.log.Error().Err(err).Int64("chat_id", cb.Message.Chat.ID).Msg("coins callback failed")
		}
	}
}

// SendMessage sends an HTML-formatted text message and returns its id.
func (r *RealBotAdapter) SendMessage(ctx context.Context, chatID int64, text string, rows [][]adapter.InlineButton) (int, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if rows != nil {
		msg.ReplyMarkup = buildKeyboard(rows)
	}
	sent, err := r.bot.Send(msg)
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

// SendPhoto sends a photo by URL with an HTML caption and returns its id.
func (r *RealBotAdapter) SendPhoto(ctx context.Context, chatID int64, imageURL, caption string, rows [][]adapter.InlineButton) (int, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(imageURL))
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeHTML
	if rows != nil {
		photo.ReplyMarkup = buildKeyboard(rows)
	}
	sent, err := r.bot.Send(photo)
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

func (r *RealBotAdapter) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	_, err := r.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	return err
}

func buildKeyboard(rows [][]adapter.InlineButton) tgbotapi.InlineKeyboardMarkup {
	kbRows := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		kbRow := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			switch {
			case btn.URL != "":
				kbRow = append(kbRow, tgbotapi.NewInlineKeyboardButtonURL(btn.Text, btn.URL))
			case btn.Data != "":
				kbRow = append(kbRow, tgbotapi.NewInlineKeyboardButtonData(btn.Text, btn.Data))
			default:
				kbRow = append(kbRow, tgbotapi.NewInlineKeyboardButtonData(btn.Text, btn.Text))
			}
		}
		kbRows = append(kbRows, kbRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(kbRows...)
}

package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"telegram-affiliate-bot/internal/domain/model"
	"telegram-affiliate-bot/internal/domain/ports/adapter"
	"telegram-affiliate-bot/internal/infra/i18n"
	"telegram-affiliate-bot/internal/infra/logging"
	"telegram-affiliate-bot/internal/usecase"
)

// BotFacade bridges the chat transport and the pipeline. It owns the message
// lifecycle: placeholder out, pipeline run, placeholder deleted, exactly one
// terminal reply per inbound message.
type BotFacade struct {
	pipeline  *usecase.Pipeline
	bot       adapter.BotAdapter
	tr        *i18n.Translator
	keyboards *Keyboards
	log       *zerolog.Logger
}

func NewBotFacade(pipeline *usecase.Pipeline, bot adapter.BotAdapter, tr *i18n.Translator, log *zerolog.Logger) *BotFacade {
	return &BotFacade{
		pipeline:  pipeline,
		bot:       bot,
		tr:        tr,
		keyboards: NewKeyboards(tr),
		log:       log,
	}
}

// HandleStart answers the /start command with the welcome message and menu.
func (f *BotFacade) HandleStart(ctx context.Context, chatID int64) error {
	_, err := f.bot.SendMessage(ctx, chatID, f.tr.T("welcome"), f.keyboards.Start)
	return err
}

// HandleCoins answers the coins-discount callback with the games keyboard.
func (f *BotFacade) HandleCoins(ctx context.Context, chatID int64) error {
	_, err := f.bot.SendMessage(ctx, chatID, f.tr.T("coins_intro"), f.keyboards.Games)
	return err
}

// HandleText runs the pipeline for one text message. Every fault is
// contained here; the transport loop never sees a handler crash.
func (f *BotFacade) HandleText(ctx context.Context, msg model.IncomingMessage) {
	ctx = logging.WithTraceID(ctx, uuid.NewString())
	ctx = logging.WithChatID(ctx, msg.ChatID)
	log := logging.With(ctx, f.log)

	placeholderID, err := f.bot.SendMessage(ctx, msg.ChatID, f.tr.T("processing"), nil)
	if err != nil {
		log.Error().Err(err).Msg("send placeholder failed")
		placeholderID = 0
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		log.Error().Interface("panic", r).Msg("recovered from handler panic")
		f.removePlaceholder(ctx, msg.ChatID, placeholderID)
		if _, err := f.bot.SendMessage(ctx, msg.ChatID, f.tr.T("unexpected_error"), nil); err != nil {
			log.Error().Err(err).Msg("send failure reply failed")
		}
	}()

	reply := f.pipeline.Handle(ctx, msg.Text)

	f.removePlaceholder(ctx, msg.ChatID, placeholderID)
	f.deliver(ctx, msg.ChatID, reply)
}

func (f *BotFacade) removePlaceholder(ctx context.Context, chatID int64, messageID int) {
	if messageID == 0 {
		return
	}
	if err := f.bot.DeleteMessage(ctx, chatID, messageID); err != nil {
		logging.With(ctx, f.log).Warn().Err(err).Int("message_id", messageID).Msg("delete placeholder failed")
	}
}

func (f *BotFacade) deliver(ctx context.Context, chatID int64, reply model.Reply) {
	log := logging.With(ctx, f.log)
	var err error
	switch reply.Kind {
	case model.ReplyPhoto:
		_, err = f.bot.SendPhoto(ctx, chatID, reply.ImageURL, reply.Text, f.keyboards.Product)
	case model.ReplyText:
		_, err = f.bot.SendMessage(ctx, chatID, reply.Text, f.keyboards.Product)
	default:
		_, err = f.bot.SendMessage(ctx, chatID, reply.Text, nil)
	}
	if err != nil {
		log.Error().Err(err).Msg("send reply failed")
	}
}

package application

import (
	"telegram-affiliate-bot/internal/domain/ports/adapter"
	"telegram-affiliate-bot/internal/infra/i18n"
)

// CallbackCoins is the callback payload of the coins-discount button.
const CallbackCoins = "click"

const (
	reviewPageURL = "https://s.click.aliexpress.com/e/_DdwUZVd"
	channelURL    = "https://t.me/ShopAliExpressMaroc"
	howToURL      = "https://t.me/ShopAliExpressMaroc/9"
	gameMergeURL  = "https://s.click.aliexpress.com/e/_DlCyg5Z"
	gameFarmURL   = "https://s.click.aliexpress.com/e/_DBBkt9V"
	gameFlipURL   = "https://s.click.aliexpress.com/e/_DdcXZ2r"
	gameGoGoURL   = "https://s.click.aliexpress.com/e/_DDs7W5D"
)

// Keyboards holds the static inline keyboards, one button per row.
type Keyboards struct {
	Start   [][]adapter.InlineButton
	Product [][]adapter.InlineButton
	Games   [][]adapter.InlineButton
}

func NewKeyboards(tr *i18n.Translator) *Keyboards {
	review := adapter.InlineButton{Text: tr.T("btn_review"), URL: reviewPageURL}
	coins := adapter.InlineButton{Text: tr.T("btn_coins"), Data: CallbackCoins}
	channel := adapter.InlineButton{Text: tr.T("btn_channel"), URL: channelURL}
	howTo := adapter.InlineButton{Text: tr.T("btn_howto"), URL: howToURL}

	return &Keyboards{
		Start: [][]adapter.InlineButton{
			{review}, {coins}, {channel}, {howTo},
		},
		Product: [][]adapter.InlineButton{
			{review}, {coins}, {channel},
		},
		Games: [][]adapter.InlineButton{
			{review},
			{{Text: tr.T("btn_game_merge"), URL: gameMergeURL}},
			{{Text: tr.T("btn_game_farm"), URL: gameFarmURL}},
			{{Text: tr.T("btn_game_flip"), URL: gameFlipURL}},
			{{Text: tr.T("btn_game_gogo"), URL: gameGoGoURL}},
		},
	}
}

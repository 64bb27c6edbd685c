package usecase

import (
	"errors"
	"fmt"
	"strings"

	"telegram-affiliate-bot/internal/domain"
	"telegram-affiliate-bot/internal/domain/model"
	"telegram-affiliate-bot/internal/infra/i18n"
)

// Outcome carries whatever subset of the pipeline succeeded, ready for
// composition. Links hold only the variants that produced a URL, already in
// reply order.
type Outcome struct {
	Err      error
	Details  *model.ProductDetails
	Rate     float64
	HasRate  bool
	Currency string
	Links    []model.AffiliateLink
}

// Composer assembles the terminal reply from an Outcome. Highest-priority
// matching row of the decision table wins:
//
//	terminal error           → localized error message
//	details present          → photo with full caption
//	any affiliate link       → text-only compare message
//	nothing at all           → generic error message
type Composer struct {
	tr *i18n.Translator
}

func NewComposer(tr *i18n.Translator) *Composer {
	return &Composer{tr: tr}
}

func (c *Composer) Compose(o Outcome) model.Reply {
	if o.Err != nil {
		return model.ErrorReply(c.errorText(o.Err))
	}
	if o.Details != nil {
		return model.PhotoReply(o.Details.ImageURL, c.richCaption(o))
	}
	if len(o.Links) > 0 {
		return model.TextReply(c.linksOnly(o))
	}
	return model.ErrorReply(c.tr.T("unexpected_error"))
}

func (c *Composer) errorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrExtractionFailed):
		return c.tr.T("invalid_link")
	case errors.Is(err, domain.ErrResolutionFailed):
		return c.tr.T("resolve_failed")
	case errors.Is(err, domain.ErrIdentifierNotFound):
		return c.tr.T("identifier_failed")
	default:
		return c.tr.T("unexpected_error")
	}
}

func (c *Composer) richCaption(o Outcome) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛒 <b>%s</b> 🔥\n", c.tr.T("rich_header"))
	fmt.Fprintf(&b, "<b>%s</b> 🛍\n\n", o.Details.Title)
	fmt.Fprintf(&b, "💵 <b>%s</b>\n", c.tr.T("price_header"))
	b.WriteString(c.tr.T("price_usd", o.Details.PriceUSD))
	b.WriteString("\n")
	if o.HasRate {
		b.WriteString(c.tr.T("price_converted", o.Details.PriceUSD*o.Rate, o.Currency))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n📊 <b>%s</b>\n\n", c.tr.T("choose_offer"))

	for _, link := range o.Links {
		fmt.Fprintf(&b, "<b>%s</b>\n", c.tr.T(link.Variant.LabelKey))
		fmt.Fprintf(&b, "<a href=\"%s\">%s</a>\n\n", link.URL, c.tr.T("click_here"))
	}

	b.WriteString("──────────────\n")
	fmt.Fprintf(&b, "<b>EN:</b> %s\n\n", c.tr.T("footer_en"))
	b.WriteString(c.tr.T("hashtag"))
	return b.String()
}

func (c *Composer) linksOnly(o Outcome) string {
	var b strings.Builder
	b.WriteString(c.tr.T("compare_header"))
	b.WriteString("\n")
	for _, link := range o.Links {
		fmt.Fprintf(&b, "%s :\n%s\n", c.tr.T(link.Variant.LabelKey), link.URL)
	}
	b.WriteString("\n")
	b.WriteString(c.tr.T("hashtag"))
	return b.String()
}

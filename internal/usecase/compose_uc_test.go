//go:build !integration

package usecase

import (
	"strings"
	"testing"

	"telegram-affiliate-bot/internal/domain"
	"telegram-affiliate-bot/internal/domain/model"
)

func allLinks(t *testing.T) []model.AffiliateLink {
	t.Helper()
	links := make([]model.AffiliateLink, 0, 4)
	for _, v := range model.Variants() {
		links = append(links, model.AffiliateLink{Variant: v, URL: "https://s.click.aliexpress.com/e/" + v.Name})
	}
	return links
}

func assertOrdered(t *testing.T, text string, needles ...string) {
	t.Helper()
	last := -1
	for _, n := range needles {
		idx := strings.Index(text, n)
		if idx < 0 {
			t.Fatalf("text missing %q:\n%s", n, text)
		}
		if idx < last {
			t.Fatalf("%q appears out of order:\n%s", n, text)
		}
		last = idx
	}
}

func TestComposer_Compose(t *testing.T) {
	tr := newTestTranslator()
	c := NewComposer(tr)
	details := &model.ProductDetails{Title: "Wireless Mouse", PriceUSD: 9.99, ImageURL: "http://img/x.jpg"}

	t.Run("terminal errors map to their localized messages", func(t *testing.T) {
		tests := []struct {
			err  error
			want string
		}{
			{domain.ErrExtractionFailed, tr.T("invalid_link")},
			{domain.ErrResolutionFailed, tr.T("resolve_failed")},
			{domain.ErrIdentifierNotFound, tr.T("identifier_failed")},
		}
		for _, tt := range tests {
			reply := c.Compose(Outcome{Err: tt.err})
			if reply.Kind != model.ReplyError {
				t.Fatalf("kind = %v, want error reply", reply.Kind)
			}
			if reply.Text != tt.want {
				t.Errorf("for %v got %q, want %q", tt.err, reply.Text, tt.want)
			}
		}
	})

	t.Run("full details produce photo with converted price and ordered links", func(t *testing.T) {
		reply := c.Compose(Outcome{
			Details:  details,
			Rate:     3.75,
			HasRate:  true,
			Currency: "SAR",
			Links:    allLinks(t),
		})

		if reply.Kind != model.ReplyPhoto {
			t.Fatalf("kind = %v, want photo reply", reply.Kind)
		}
		if reply.ImageURL != "http://img/x.jpg" {
			t.Errorf("image = %q", reply.ImageURL)
		}
		if !strings.Contains(reply.Text, "9.99 USD") {
			t.Errorf("caption missing USD price:\n%s", reply.Text)
		}
		if !strings.Contains(reply.Text, "37.46 SAR") {
			t.Errorf("caption missing converted price:\n%s", reply.Text)
		}
		if !strings.Contains(reply.Text, "<b>Wireless Mouse</b>") {
			t.Errorf("caption missing bold title:\n%s", reply.Text)
		}
		assertOrdered(t, reply.Text,
			"https://s.click.aliexpress.com/e/coin",
			"https://s.click.aliexpress.com/e/bundle",
			"https://s.click.aliexpress.com/e/super",
			"https://s.click.aliexpress.com/e/limited",
		)
	})

	t.Run("missing rate falls back to USD only", func(t *testing.T) {
		reply := c.Compose(Outcome{Details: details, Currency: "SAR", Links: allLinks(t)})

		if reply.Kind != model.ReplyPhoto {
			t.Fatalf("kind = %v, want photo reply", reply.Kind)
		}
		if !strings.Contains(reply.Text, "9.99 USD") {
			t.Errorf("caption missing USD price:\n%s", reply.Text)
		}
		if strings.Contains(reply.Text, "SAR") {
			t.Errorf("caption must not mention SAR without a rate:\n%s", reply.Text)
		}
	})

	t.Run("missing details fall back to text-only links", func(t *testing.T) {
		reply := c.Compose(Outcome{Links: allLinks(t)})

		if reply.Kind != model.ReplyText {
			t.Fatalf("kind = %v, want text reply", reply.Kind)
		}
		if strings.Contains(reply.Text, "USD") {
			t.Errorf("text-only reply must not carry a price:\n%s", reply.Text)
		}
		if strings.Contains(reply.Text, "Wireless Mouse") {
			t.Errorf("text-only reply must not carry a title:\n%s", reply.Text)
		}
		assertOrdered(t, reply.Text,
			"https://s.click.aliexpress.com/e/coin",
			"https://s.click.aliexpress.com/e/bundle",
			"https://s.click.aliexpress.com/e/super",
			"https://s.click.aliexpress.com/e/limited",
		)
	})

	t.Run("subset of links keeps the fixed order", func(t *testing.T) {
		links := allLinks(t)
		partial := []model.AffiliateLink{links[1], links[3]} // bundle, limited
		reply := c.Compose(Outcome{Links: partial})

		if reply.Kind != model.ReplyText {
			t.Fatalf("kind = %v, want text reply", reply.Kind)
		}
		assertOrdered(t, reply.Text,
			"https://s.click.aliexpress.com/e/bundle",
			"https://s.click.aliexpress.com/e/limited",
		)
		if strings.Contains(reply.Text, "/e/coin") || strings.Contains(reply.Text, "/e/super") {
			t.Errorf("absent variants must not appear:\n%s", reply.Text)
		}
	})

	t.Run("nothing available composes the generic error", func(t *testing.T) {
		reply := c.Compose(Outcome{})

		if reply.Kind != model.ReplyError {
			t.Fatalf("kind = %v, want error reply", reply.Kind)
		}
		if reply.Text != tr.T("unexpected_error") {
			t.Errorf("text = %q, want generic failure message", reply.Text)
		}
	})
}

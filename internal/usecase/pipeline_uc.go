package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"telegram-affiliate-bot/internal/domain"
	"telegram-affiliate-bot/internal/domain/model"
	"telegram-affiliate-bot/internal/infra/logging"
	"telegram-affiliate-bot/internal/infra/metrics"
)

// Pipeline orchestrates one message's handling: extract → resolve →
// identify → {affiliate variants, details} → rate → compose. Each transition
// is attempted exactly once; there are no retries within a message.
type Pipeline struct {
	extractor  *LinkExtractor
	resolver   *Resolver
	affiliates *AffiliateService
	converter  *CurrencyConverter
	composer   *Composer

	variants       []model.CampaignVariant
	resolveTimeout time.Duration
	callTimeout    time.Duration
	log            *zerolog.Logger
}

func NewPipeline(
	extractor *LinkExtractor,
	resolver *Resolver,
	affiliates *AffiliateService,
	converter *CurrencyConverter,
	composer *Composer,
	resolveTimeout, callTimeout time.Duration,
	log *zerolog.Logger,
) *Pipeline {
	return &Pipeline{
		extractor:      extractor,
		resolver:       resolver,
		affiliates:     affiliates,
		converter:      converter,
		composer:       composer,
		variants:       model.Variants(),
		resolveTimeout: resolveTimeout,
		callTimeout:    callTimeout,
		log:            log,
	}
}

// Handle runs the full pipeline for one message text and returns the
// composed terminal reply. Terminal failures short-circuit; every other
// failure degrades the reply instead of aborting it.
func (p *Pipeline) Handle(ctx context.Context, text string) model.Reply {
	reply := p.composer.Compose(p.run(ctx, text))
	metrics.IncReplyShape(shapeLabel(reply.Kind))
	return reply
}

func (p *Pipeline) run(ctx context.Context, text string) Outcome {
	link, ok := p.extractor.Extract(text)
	if !ok || !acceptableLink(link, text) {
		return Outcome{Err: domain.ErrExtractionFailed}
	}

	resolveCtx, cancel := context.WithTimeout(ctx, p.resolveTimeout)
	resolved, err := p.resolver.Resolve(resolveCtx, link)
	cancel()
	if err != nil {
		return Outcome{Err: err}
	}

	productID, err := ExtractProductID(resolved)
	if err != nil {
		return Outcome{Err: err}
	}
	ctx = logging.WithProductID(ctx, productID)

	// Variant and details calls are mutually independent; issue them
	// concurrently with isolated failures and per-call timeouts.
	var (
		wg      sync.WaitGroup
		results = make([]*model.AffiliateLink, len(p.variants))
		details *model.ProductDetails
	)
	for i, v := range p.variants {
		wg.Add(1)
		go func(i int, v model.CampaignVariant) {
			defer wg.Done()
			callCtx, cancel := context.WithTimeout(ctx, p.callTimeout)
			defer cancel()
			if link, ok := p.affiliates.GenerateLink(callCtx, productID, resolved, v); ok {
				results[i] = &link
			}
		}(i, v)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		callCtx, cancel := context.WithTimeout(ctx, p.callTimeout)
		defer cancel()
		if d, ok := p.affiliates.FetchDetails(callCtx, productID); ok {
			details = d
		}
	}()
	wg.Wait()

	links := make([]model.AffiliateLink, 0, len(results))
	for _, r := range results {
		if r != nil {
			links = append(links, *r)
		}
	}

	out := Outcome{Details: details, Links: links, Currency: p.converter.Target()}
	if details != nil {
		rateCtx, cancel := context.WithTimeout(ctx, p.callTimeout)
		out.Rate, out.HasRate = p.converter.Rate(rateCtx)
		cancel()
	}
	return out
}

// acceptableLink applies the marketplace pre-filter: the link must point at
// the marketplace, and shopping-cart share messages are rejected outright
// (the cart flow is not supported).
func acceptableLink(link, fullText string) bool {
	if !strings.Contains(link, "aliexpress.com") {
		return false
	}
	lower := strings.ToLower(fullText)
	if strings.Contains(lower, "p/shoppingcart") {
		return false
	}
	if strings.Contains(lower, strings.ToLower("availableProductShopcartIds")) {
		return false
	}
	return true
}

func shapeLabel(k model.ReplyKind) string {
	switch k {
	case model.ReplyPhoto:
		return "photo"
	case model.ReplyText:
		return "text"
	default:
		return "error"
	}
}

package resolve

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"telegram-affiliate-bot/internal/domain/ports/adapter"
	"telegram-affiliate-bot/internal/infra/metrics"
)

var _ adapter.RedirectFollower = (*ChainFollower)(nil)

// browserHeaders identify the client as a desktop browser. The marketplace's
// redirect servers vary behaviour by client identification, so a bare Go
// user agent lands on the wrong pages.
var browserHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/58.0.3029.110 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.8,ar;q=0.6",
}

// ChainFollower performs a GET that follows all redirects and reports the
// terminal URL. A cookie jar is required: the marketplace sets session
// cookies mid-chain and loops without them.
type ChainFollower struct {
	httpClient *http.Client
}

func NewChainFollower(timeout time.Duration) *ChainFollower {
	jar, _ := cookiejar.New(nil)
	return &ChainFollower{
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}
}

// Follow returns the URL the chain terminated at.
func (f *ChainFollower) Follow(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	metrics.ObserveExternalCall("resolve", float64(time.Since(start).Milliseconds()), err == nil)
	if err != nil {
		return "", fmt.Errorf("follow redirects: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	return resp.Request.URL.String(), nil
}

package usecase

import (
	"net/url"
	"regexp"

	"telegram-affiliate-bot/internal/domain"
)

var itemIDPattern = regexp.MustCompile(`/item/(\d+)\.html`)

// ExtractProductID derives the canonical product id from a resolved URL.
// Rule order: the /item/<digits>.html path segment first, then a productId
// query parameter. Neither matching is terminal for the message.
func ExtractProductID(resolvedURL string) (string, error) {
	if m := itemIDPattern.FindStringSubmatch(resolvedURL); m != nil {
		return m[1], nil
	}

	u, err := url.Parse(resolvedURL)
	if err != nil {
		return "", domain.ErrIdentifierNotFound
	}
	if id := u.Query().Get("productId"); id != "" {
		return id, nil
	}
	return "", domain.ErrIdentifierNotFound
}

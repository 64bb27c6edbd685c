package usecase

import "regexp"

// linkPattern is a lexical URL scan: an http(s) URL or a www. token up to
// the next whitespace. First match wins, no ranking.
var linkPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)

// LinkExtractor scans free-form text for the first URL-like token.
type LinkExtractor struct{}

func NewLinkExtractor() *LinkExtractor { return &LinkExtractor{} }

// Extract returns the first URL-like substring of text, or false when the
// text carries none.
func (e *LinkExtractor) Extract(text string) (string, bool) {
	link := linkPattern.FindString(text)
	if link == "" {
		return "", false
	}
	return link, true
}

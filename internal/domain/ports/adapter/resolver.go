package adapter

import "context"

// RedirectFollower follows a URL's redirect chain to completion and returns
// the terminal URL. Unwrapping of gateway parameters is not its concern.
type RedirectFollower interface {
	Follow(ctx context.Context, rawURL string) (string, error)
}

package model

// IncomingMessage is one inbound chat event. It lives for exactly one
// pipeline invocation and is never stored.
type IncomingMessage struct {
	ChatID    int64
	MessageID int
	Text      string
}

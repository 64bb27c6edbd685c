package model

// ReplyKind selects the shape of the terminal reply for one message.
type ReplyKind int

const (
	ReplyError ReplyKind = iota
	ReplyText
	ReplyPhoto
)

// Reply is the composed user-facing result of one pipeline run. Text carries
// HTML markup for ReplyPhoto captions and ReplyText bodies; ImageURL is set
// only for ReplyPhoto.
type Reply struct {
	Kind     ReplyKind
	Text     string
	ImageURL string
}

func ErrorReply(text string) Reply {
	return Reply{Kind: ReplyError, Text: text}
}

func TextReply(text string) Reply {
	return Reply{Kind: ReplyText, Text: text}
}

func PhotoReply(imageURL, caption string) Reply {
	return Reply{Kind: ReplyPhoto, Text: caption, ImageURL: imageURL}
}

package core

import "strings"

const (
	AppName    = "chatlog"
	AppVersion = "0.1.0"
)

type Sender string

const (
	SenderUser   Sender = "user"
	SenderBot    Sender = "bot"
	SenderSystem Sender = "system"
)

// IsSystem reports whether s marks a transient UI entry. Comparison is
// case-insensitive since stored values may come from older writers.
func (s Sender) IsSystem() bool {
	return strings.EqualFold(string(s), string(SenderSystem))
}

// ContentType tags how PersistedMessage.Content must be read back.
type ContentType string

const (
	ContentString ContentType = "string"
	ContentObject ContentType = "object"
)

// Message is a live conversation entry. Rich content takes precedence over
// Text when non-nil.
type Message struct {
	ID     string
	Sender Sender
	Text   string
	Rich   []Node
	// Component names the UI collaborator a system entry stands for, such as
	// the loading indicator or the history separator.
	Component string
}

func (m Message) IsRich() bool {
	return m.Rich != nil
}

// PersistedMessage is the storage form of a Message.
type PersistedMessage struct {
	Content string      `json:"content"`
	Type    ContentType `json:"type"`
	Sender  Sender      `json:"sender"`
}

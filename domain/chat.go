package domain

type ChatID int

// Chat is one conversation with its hydration payload: the peer, the unread
// counter and the upstream-ordered message history.
type Chat struct {
	ID          ChatID    `json:"id"`
	User        User      `json:"user"`
	UnreadCount int       `json:"unreadCount"`
	Messages    []Message `json:"messages"`
}

// LastMessage returns the most recent message of the chat, or false when the
// history is empty. Used by the chat-list summary view.
func (c Chat) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

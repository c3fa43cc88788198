// Package domain contains core concepts of the chat client.
// This file defines Message records as received from upstream sources.
// Messages are immutable once accepted into a session; sessions are append-only.
package domain

// SenderMe is the sentinel sender value for locally authored messages.
// Any other value is an opaque participant identifier.
const SenderMe = "me"

// Status reflects delivery state for display purposes only.
// No state machine is enforced client-side.
type Status string

const (
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusRead      Status = "read"
)

// Message represents one chat message.
//
// Timestamp is kept as the raw serialized value (RFC 3339 in the normal
// case). Upstream data has shipped malformed timestamps before, so parsing
// and validation happen downstream in the format package rather than at
// construction time.
type Message struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Sender    string `json:"sender"`
	Status    Status `json:"status,omitempty"`
}

// FromMe reports whether the message was authored on this device.
func (m Message) FromMe() bool {
	return m.Sender == SenderMe
}

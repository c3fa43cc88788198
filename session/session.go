// Package session holds the in-memory message list of one open conversation
// and its renderable projection. One session per opened chat; single-writer,
// event-loop access, no internal locking.
package session

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"chat-client/domain"
	"chat-client/format"
	"chat-client/projection"
)

// Session owns the ordered message history of a single chat. Lifecycle:
// created on conversation open, hydrated once from the data source, mutated
// only by appending locally authored messages, garbage-collected when the
// view is torn down. Calling Append before Hydrate is a caller bug; the
// session does not defend against it.
type Session struct {
	chatID  domain.ChatID
	clock   format.Clock
	grouper *projection.Grouper
	log     *slog.Logger

	messages []domain.Message
	entries  []projection.Entry
	stale    bool
}

func New(chatID domain.ChatID, clock format.Clock, grouper *projection.Grouper, log *slog.Logger) *Session {
	if clock == nil {
		clock = format.SystemClock()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		chatID:  chatID,
		clock:   clock,
		grouper: grouper,
		log:     log,
	}
}

// Hydrate replaces the message list wholesale. Called once when the
// conversation is opened, with history in upstream order.
func (s *Session) Hydrate(initial []domain.Message) {
	s.messages = make([]domain.Message, len(initial))
	copy(s.messages, initial)
	s.stale = true
	s.log.Debug("Session hydrated", "chat", s.chatID, "messages", len(initial))
}

// Append records a locally authored message (local echo) with the current
// instant as timestamp and a freshly generated UUID.
//
// Whitespace-only content is silently rejected, mirroring a send press on an
// empty input box: no mutation, no error, ok is false.
func (s *Session) Append(content string) (domain.Message, bool) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return domain.Message{}, false
	}

	msg := domain.Message{
		ID:        uuid.NewString(),
		Content:   trimmed,
		Timestamp: s.clock.Now().Format(time.RFC3339Nano),
		Sender:    domain.SenderMe,
	}
	s.messages = append(s.messages, msg)
	s.stale = true
	return msg, true
}

// Entries returns the renderable feed for the current message list. The
// projection is recomputed after every mutation and cached in between, so
// repeated renders of unchanged data are free.
func (s *Session) Entries() []projection.Entry {
	if s.stale {
		s.entries = s.grouper.Group(s.messages)
		s.stale = false
	}
	return s.entries
}

// Messages returns a copy of the raw history, in session order.
func (s *Session) Messages() []domain.Message {
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of raw messages held, valid or not.
func (s *Session) Len() int {
	return len(s.messages)
}

// Last returns the most recent raw message, for the chat-list summary row.
func (s *Session) Last() (domain.Message, bool) {
	if len(s.messages) == 0 {
		return domain.Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// ChatID identifies the conversation this session belongs to.
func (s *Session) ChatID() domain.ChatID {
	return s.chatID
}

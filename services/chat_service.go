//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"chat-client/domain"
	"chat-client/errors"
	"chat-client/format"
	"chat-client/projection"
	"chat-client/search"
	"chat-client/session"
)

// DataSource supplies conversation hydration payloads. The shipped
// implementation is the fixtures package; a production build plugs a
// network or persistence layer in here.
type DataSource interface {
	Chats() []domain.Chat
	ChatByID(id domain.ChatID) (domain.Chat, bool)
}

// ChatSummary is one row of the chat list screen.
type ChatSummary struct {
	ChatID      domain.ChatID `json:"chat_id"`
	Name        string        `json:"name"`
	Avatar      string        `json:"avatar,omitempty"`
	Online      bool          `json:"online"`
	LastMessage string        `json:"last_message,omitempty"`
	LastTime    string        `json:"last_time,omitempty"`
	UnreadCount int           `json:"unread_count"`
}

// MessageView is a message entry ready for rendering.
type MessageView struct {
	ID      string        `json:"id"`
	Content string        `json:"content"`
	Time    string        `json:"time"`
	Sender  string        `json:"sender"`
	FromMe  bool          `json:"from_me"`
	Status  domain.Status `json:"status,omitempty"`
}

// FeedItem is one renderable row of a conversation feed: either a date
// separator with its label or a message view.
type FeedItem struct {
	Kind    projection.EntryKind `json:"kind"`
	Key     string               `json:"key"`
	Label   string               `json:"label,omitempty"`
	Message *MessageView         `json:"message,omitempty"`
}

type IChatService interface {
	Summaries() []ChatSummary
	Feed(chatID domain.ChatID) ([]FeedItem, error)
	Post(chatID domain.ChatID, content string) (domain.Message, bool, error)
	Search(ctx context.Context, chatID domain.ChatID, terms string, limit int) ([]string, error)
}

// ChatService owns the open conversation sessions and turns their
// projections into rendering DTOs. Sessions themselves are single-writer
// with no locking, so the service serializes all access through one mutex.
type ChatService struct {
	mu        sync.Mutex
	source    DataSource
	sessions  map[domain.ChatID]*session.Session
	grouper   *projection.Grouper
	formatter *format.Formatter
	clock     format.Clock
	index     *search.Index
	log       *slog.Logger
}

func NewChatService(
	source DataSource,
	grouper *projection.Grouper,
	formatter *format.Formatter,
	clock format.Clock,
	index *search.Index,
	log *slog.Logger,
) *ChatService {
	if clock == nil {
		clock = format.SystemClock()
	}
	if log == nil {
		log = slog.Default()
	}
	return &ChatService{
		source:    source,
		sessions:  make(map[domain.ChatID]*session.Session),
		grouper:   grouper,
		formatter: formatter,
		clock:     clock,
		index:     index,
		log:       log,
	}
}

// open returns the session of a chat, hydrating it from the data source on
// first access. Callers must hold the mutex.
func (s *ChatService) open(chatID domain.ChatID) (*session.Session, error) {
	if sess, ok := s.sessions[chatID]; ok {
		return sess, nil
	}

	chat, found := s.source.ChatByID(chatID)
	if !found {
		return nil, errors.ErrChatNotFound
	}

	sess := session.New(chatID, s.clock, s.grouper, s.log)
	sess.Hydrate(chat.Messages)
	s.sessions[chatID] = sess

	if s.index != nil {
		if err := s.index.IndexChat(chat); err != nil {
			s.log.Warn("Failed to index chat history", "chat", chatID, "err", err)
		}
	}
	return sess, nil
}

// Summaries builds the chat list: peer info plus the last message preview
// with its formatted send time. Open sessions win over the static source so
// a just-sent message shows up immediately.
func (s *ChatService) Summaries() []ChatSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	chats := s.source.Chats()
	summaries := make([]ChatSummary, 0, len(chats))
	for _, chat := range chats {
		summary := ChatSummary{
			ChatID:      chat.ID,
			Name:        chat.User.Name,
			Avatar:      chat.User.Avatar,
			Online:      chat.User.Online,
			UnreadCount: chat.UnreadCount,
		}

		last, ok := chat.LastMessage()
		if sess, open := s.sessions[chat.ID]; open {
			last, ok = sess.Last()
		}
		if ok {
			summary.LastMessage = last.Content
			summary.LastTime = s.formatter.FormatTime(last.Timestamp)
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// Feed returns the renderable rows of one conversation, labels formatted
// against the render-time clock.
func (s *ChatService) Feed(chatID domain.ChatID) ([]FeedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.open(chatID)
	if err != nil {
		return nil, err
	}

	entries := sess.Entries()
	items := make([]FeedItem, 0, len(entries))
	for _, entry := range entries {
		switch entry.Kind {
		case projection.KindDate:
			items = append(items, FeedItem{
				Kind:  entry.Kind,
				Key:   entry.Key,
				Label: s.formatter.HeaderLabel(entry.Separator.At),
			})
		case projection.KindMessage:
			msg := entry.Message
			items = append(items, FeedItem{
				Kind: entry.Kind,
				Key:  entry.Key,
				Message: &MessageView{
					ID:      msg.ID,
					Content: msg.Content,
					Time:    s.formatter.FormatTime(msg.Timestamp),
					Sender:  msg.Sender,
					FromMe:  msg.FromMe(),
					Status:  msg.Status,
				},
			})
		}
	}
	return items, nil
}

// Post appends a locally authored message (local echo). The boolean is
// false when the content was whitespace-only and nothing was appended.
func (s *ChatService) Post(chatID domain.ChatID, content string) (domain.Message, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.open(chatID)
	if err != nil {
		return domain.Message{}, false, err
	}

	msg, ok := sess.Append(content)
	if !ok {
		return domain.Message{}, false, nil
	}

	if s.index != nil {
		if err = s.index.IndexMessage(chatID, msg); err != nil {
			s.log.Warn("Failed to index message", "id", msg.ID, "err", err)
		}
	}
	return msg, true, nil
}

// Search runs a full-text query scoped to one conversation.
func (s *ChatService) Search(ctx context.Context, chatID domain.ChatID, terms string, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index == nil {
		return nil, fmt.Errorf("search index not configured")
	}
	if _, err := s.open(chatID); err != nil {
		return nil, err
	}
	return s.index.Search(ctx, chatID, terms, limit)
}

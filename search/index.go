// Package search provides full-text lookup over hydrated conversations,
// backing the in-conversation search box. The index lives in memory and is
// rebuilt from session data; it is a projection, never a source of truth.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/blugelabs/bluge"

	"chat-client/domain"
)

// Index wraps a Bluge writer holding one document per message, tagged with
// its chat so queries stay scoped to a single conversation.
type Index struct {
	writer *bluge.Writer
	log    *slog.Logger
}

// NewInMemoryIndex opens a session-scoped index. Callers own Close.
func NewInMemoryIndex(log *slog.Logger) (*Index, error) {
	if log == nil {
		log = slog.Default()
	}
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("opening search index: %w", err)
	}
	return &Index{writer: writer, log: log}, nil
}

func (i *Index) Close() error {
	return i.writer.Close()
}

func chatKey(id domain.ChatID) string {
	return strconv.Itoa(int(id))
}

// IndexChat adds or refreshes every message of a hydrated chat. Message IDs
// double as document IDs, so re-indexing after hydration is idempotent.
func (i *Index) IndexChat(chat domain.Chat) error {
	for _, msg := range chat.Messages {
		if err := i.IndexMessage(chat.ID, msg); err != nil {
			return err
		}
	}
	return nil
}

// IndexMessage upserts a single message document, e.g. after a local echo.
func (i *Index) IndexMessage(chatID domain.ChatID, msg domain.Message) error {
	doc := bluge.NewDocument(msg.ID).
		AddField(bluge.NewTextField("content", msg.Content).StoreValue()).
		AddField(bluge.NewKeywordField("chat", chatKey(chatID)).StoreValue()).
		AddField(bluge.NewKeywordField("sender", msg.Sender))

	if err := i.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("indexing message %s: %w", msg.ID, err)
	}
	return nil
}

// Search returns the IDs of the chat's messages matching terms, best score
// first. An empty terms string matches nothing.
func (i *Index) Search(ctx context.Context, chatID domain.ChatID, terms string, limit int) ([]string, error) {
	if terms == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(terms).SetField("content")).
		AddMust(bluge.NewTermQuery(chatKey(chatID)).SetField("chat"))

	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("opening index reader: %w", err)
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			i.log.Warn("Failed to close index reader", "err", closeErr)
		}
	}()

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", terms, err)
	}

	var ids []string
	match, err := iterator.Next()
	for err == nil && match != nil {
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, string(value))
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}

package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"chat-client/domain"
)

func testChat() domain.Chat {
	return domain.Chat{
		ID: 1,
		Messages: []domain.Message{
			{ID: "m1", Content: "the invoice is ready", Timestamp: "2024-03-14T10:00:00Z", Sender: "7"},
			{ID: "m2", Content: "thanks, sending the payment", Timestamp: "2024-03-14T10:05:00Z", Sender: domain.SenderMe},
			{ID: "m3", Content: "see you at the meeting", Timestamp: "2024-03-15T09:00:00Z", Sender: "7"},
		},
	}
}

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewInMemoryIndex(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func TestIndex_SearchFindsContent(t *testing.T) {
	req := require.New(t)
	idx := openTestIndex(t)
	req.NoError(idx.IndexChat(testChat()))

	ids, err := idx.Search(context.Background(), 1, "invoice", 10)
	req.NoError(err)
	req.Equal([]string{"m1"}, ids)
}

func TestIndex_SearchScopedToChat(t *testing.T) {
	req := require.New(t)
	idx := openTestIndex(t)
	req.NoError(idx.IndexChat(testChat()))
	req.NoError(idx.IndexMessage(2, domain.Message{
		ID: "other-1", Content: "another invoice elsewhere",
		Timestamp: "2024-03-15T10:00:00Z", Sender: "9",
	}))

	ids, err := idx.Search(context.Background(), 1, "invoice", 10)
	req.NoError(err)
	req.Equal([]string{"m1"}, ids)

	ids, err = idx.Search(context.Background(), 2, "invoice", 10)
	req.NoError(err)
	req.Equal([]string{"other-1"}, ids)
}

func TestIndex_SearchNoMatch(t *testing.T) {
	req := require.New(t)
	idx := openTestIndex(t)
	req.NoError(idx.IndexChat(testChat()))

	ids, err := idx.Search(context.Background(), 1, "helicopter", 10)
	req.NoError(err)
	req.Empty(ids)
}

func TestIndex_SearchEmptyTerms(t *testing.T) {
	req := require.New(t)
	idx := openTestIndex(t)
	req.NoError(idx.IndexChat(testChat()))

	ids, err := idx.Search(context.Background(), 1, "", 10)
	req.NoError(err)
	req.Empty(ids)
}

func TestIndex_ReindexIsIdempotent(t *testing.T) {
	req := require.New(t)
	idx := openTestIndex(t)

	chat := testChat()
	req.NoError(idx.IndexChat(chat))
	req.NoError(idx.IndexChat(chat))

	ids, err := idx.Search(context.Background(), 1, "invoice", 10)
	req.NoError(err)
	req.Equal([]string{"m1"}, ids)
}

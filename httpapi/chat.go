package httpapi

import (
	goerrors "errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chat-client/domain"
	"chat-client/errors"
	"chat-client/moderation"
	"chat-client/services"
)

// ChatHandler serves the chat list and the per-conversation feed.
type ChatHandler struct {
	svc    services.IChatService
	masker *moderation.Masker // nil disables masking
	log    *slog.Logger
}

func NewChatHandler(svc services.IChatService, masker *moderation.Masker, log *slog.Logger) *ChatHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ChatHandler{svc: svc, masker: masker, log: log}
}

func chatIDParam(c *gin.Context) (domain.ChatID, bool) {
	id, err := strconv.Atoi(c.Param("chat_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return 0, false
	}
	return domain.ChatID(id), true
}

// ListChats returns the chat list rows with formatted last-message times.
func (h *ChatHandler) ListChats(c *gin.Context) {
	summaries := h.svc.Summaries()
	if h.masker != nil {
		for i := range summaries {
			summaries[i].LastMessage = h.masker.Mask(summaries[i].LastMessage)
		}
	}
	c.JSON(http.StatusOK, gin.H{"chats": summaries})
}

// GetFeed returns the renderable rows of one conversation, date separators
// included.
func (h *ChatHandler) GetFeed(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	items, err := h.svc.Feed(chatID)
	if err != nil {
		if goerrors.Is(err, errors.ErrChatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "chat not found"})
			return
		}
		h.log.Error("Failed to build feed", "chat", chatID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build feed"})
		return
	}

	if h.masker != nil {
		for i := range items {
			if items[i].Message != nil {
				items[i].Message.Content = h.masker.Mask(items[i].Message.Content)
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"feed": items})
}

// PostMessage appends a locally authored message. Whitespace-only content is
// a silent no-op and answers 204.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, appended, err := h.svc.Post(chatID, req.Content)
	if err != nil {
		if goerrors.Is(err, errors.ErrChatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "chat not found"})
			return
		}
		h.log.Error("Failed to post message", "chat", chatID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not post message"})
		return
	}
	if !appended {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// SearchMessages runs a full-text query scoped to one conversation and
// returns matching message ids.
func (h *ChatHandler) SearchMessages(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	terms := c.Query("q")
	if terms == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query"})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	ids, err := h.svc.Search(c.Request.Context(), chatID, terms, limit)
	if err != nil {
		if goerrors.Is(err, errors.ErrChatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "chat not found"})
			return
		}
		h.log.Error("Search failed", "chat", chatID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ids": ids})
}

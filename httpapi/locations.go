package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-client/domain"
	"chat-client/services"
)

// LocationsHandler serves the country and state pickers of the profile
// setup screen.
type LocationsHandler struct {
	svc *services.LocationsService
	log *slog.Logger
}

func NewLocationsHandler(svc *services.LocationsService, log *slog.Logger) *LocationsHandler {
	if log == nil {
		log = slog.Default()
	}
	return &LocationsHandler{svc: svc, log: log}
}

func (h *LocationsHandler) Countries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"countries": h.svc.Countries(c.Request.Context())})
}

func (h *LocationsHandler) States(c *gin.Context) {
	country := c.Query("country")
	if country == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing country"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"states": h.svc.States(c.Request.Context(), country)})
}

// ContactsHandler syncs and serves the cached device address book.
type ContactsHandler struct {
	svc *services.ContactsService
	log *slog.Logger
}

func NewContactsHandler(svc *services.ContactsService, log *slog.Logger) *ContactsHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ContactsHandler{svc: svc, log: log}
}

func (h *ContactsHandler) Sync(c *gin.Context) {
	var req struct {
		Contacts []domain.Contact `json:"contacts"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	synced, err := h.svc.Sync(c.Request.Context(), req.Contacts)
	if err != nil {
		h.log.Error("Contact sync failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "contact sync failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": synced})
}

func (h *ContactsHandler) List(c *gin.Context) {
	contacts, err := h.svc.Cached()
	if err != nil {
		h.log.Error("Failed to load cached contacts", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load contacts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

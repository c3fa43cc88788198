// Package httpapi is the HTTP facade over the client core: the chat list,
// conversation feeds, the login flow and the profile pickers, served with gin.
package httpapi

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"chat-client/moderation"
	"chat-client/services"
)

// Deps bundles everything the router needs wired.
type Deps struct {
	Auth      services.IAuthService
	Chats     services.IChatService
	Contacts  *services.ContactsService
	Locations *services.LocationsService
	Masker    *moderation.Masker
	Log       *slog.Logger
	Debug     bool
}

// NewRouter builds the full route table. Everything under /api except the
// login flow and the pickers requires a valid session token.
func NewRouter(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	authHandler := NewAuthHandler(deps.Auth, deps.Log)
	chatHandler := NewChatHandler(deps.Chats, deps.Masker, deps.Log)
	locationsHandler := NewLocationsHandler(deps.Locations, deps.Log)
	contactsHandler := NewContactsHandler(deps.Contacts, deps.Log)

	api := router.Group("/api")
	{
		api.POST("/auth/otp", authHandler.RequestOTP)
		api.POST("/auth/verify", authHandler.VerifyOTP)
		api.GET("/auth/state", authHandler.State)
		api.POST("/auth/onboarding/seen", authHandler.MarkOnboardingSeen)

		api.GET("/locations/countries", locationsHandler.Countries)
		api.GET("/locations/states", locationsHandler.States)
	}

	authed := api.Group("")
	authed.Use(RequireAuth())
	{
		authed.POST("/auth/profile", authHandler.CompleteProfile)
		authed.POST("/auth/logout", authHandler.Logout)

		authed.GET("/chats", chatHandler.ListChats)
		authed.GET("/chats/:chat_id/feed", chatHandler.GetFeed)
		authed.POST("/chats/:chat_id/messages", chatHandler.PostMessage)
		authed.GET("/chats/:chat_id/search", chatHandler.SearchMessages)

		authed.POST("/contacts/sync", contactsHandler.Sync)
		authed.GET("/contacts", contactsHandler.List)
	}

	RegisterDebugRoutes(router, deps.Debug)
	return router
}

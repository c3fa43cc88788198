package httpapi

import (
	goerrors "errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-client/auth"
	"chat-client/errors"
	"chat-client/services"
)

// AuthHandler exposes the phone-login flow over HTTP.
type AuthHandler struct {
	svc services.IAuthService
	log *slog.Logger
}

func NewAuthHandler(svc services.IAuthService, log *slog.Logger) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{svc: svc, log: log}
}

// RequestOTP starts a verification challenge for a phone number.
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.RequestOTP(c.Request.Context(), req.Phone); err != nil {
		if goerrors.Is(err, errors.ErrInvalidPhone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid phone number"})
			return
		}
		h.log.Error("Failed to issue verification code", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue verification code"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "sent"})
}

// VerifyOTP confirms a submitted code and returns the session token.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" binding:"required"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.svc.VerifyOTP(c.Request.Context(), req.Phone, req.Code)
	switch {
	case err == nil:
	case goerrors.Is(err, errors.ErrOTPNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no pending verification"})
		return
	case goerrors.Is(err, errors.ErrOTPExpired):
		c.JSON(http.StatusGone, gin.H{"error": "verification code expired"})
		return
	case goerrors.Is(err, errors.ErrTooManyAttempts):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many attempts"})
		return
	case goerrors.Is(err, errors.ErrOTPMismatch):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong code"})
		return
	default:
		h.log.Error("Verification failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// CompleteProfile records the profile setup form.
func (h *AuthHandler) CompleteProfile(c *gin.Context) {
	var req auth.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.CompleteProfile(c.Request.Context(), req); err != nil {
		switch {
		case goerrors.Is(err, errors.ErrInvalidProfile):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile"})
		case goerrors.Is(err, errors.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		default:
			h.log.Error("Failed to save profile", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save profile"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// State returns the persisted auth snapshot the app routes on at startup.
func (h *AuthHandler) State(c *gin.Context) {
	state, found, err := h.svc.CurrentState()
	if err != nil {
		h.log.Error("Failed to load auth state", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load auth state"})
		return
	}

	// The token never goes back out in the snapshot.
	state.Token = ""
	c.JSON(http.StatusOK, gin.H{
		"found": found,
		"state": state,
	})
}

// MarkOnboardingSeen remembers that the intro carousel was dismissed.
func (h *AuthHandler) MarkOnboardingSeen(c *gin.Context) {
	if err := h.svc.MarkOnboardingSeen(); err != nil {
		h.log.Error("Failed to record onboarding", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record onboarding"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Logout wipes the persisted auth state.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(); err != nil {
		h.log.Error("Failed to log out", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package api

import (
	"net/http"

	"github.com/Travel-Muslim/Frontend-sub000/internal/session"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessions session.Store
}

type setTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

func NewSessionHandler(sessions session.Store) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) Register(router *gin.RouterGroup) {
	router.PUT("/token", h.setToken)
	router.DELETE("", h.logout)
}

func (h *SessionHandler) setToken(c *gin.Context) {
	var req setTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sessions.SetToken(c.Request.Context(), req.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// logout clears every session key in one shot.
func (h *SessionHandler) logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"log/slog"
	"net/http"

	"pilgrimpal/internal/metrics"
	"pilgrimpal/internal/models"
	"pilgrimpal/internal/session"

	"github.com/gin-gonic/gin"
)

// Sessions handlers

// StartSession - POST /api/sessions
// Начать сессию и резолвить идентичность через auth gateway
func (h *Handlers) StartSession(c *gin.Context) {
	token, state, authErr := h.sessions.StartSession(c.Request.Context())

	resp := models.StartSessionResponse{
		SessionToken: token,
		AuthStatus:   string(state.AuthStatus),
		UserID:       state.UserID,
	}
	if authErr != nil {
		// The session still resolved (to Unauthenticated); the failure is
		// display data, not a request failure.
		resp.AuthError = authErr.Error()
		slog.Warn("Session started unauthenticated", "session_token", token, "error", authErr)
	}

	metrics.SessionsStarted.WithLabelValues(resp.AuthStatus).Inc()
	c.JSON(http.StatusCreated, resp)
}

// GetSession - GET /api/sessions/current
// Получить данные для рендеринга текущего экрана
func (h *Handlers) GetSession(c *gin.Context) {
	state, ok := h.sessionState(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.sessionView(state))
}

// Navigate - POST /api/sessions/navigate
// Применить навигационный intent; выбор храма и переход атомарны
func (h *Handlers) Navigate(c *gin.Context) {
	var req models.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	screen, ok := session.ParseScreen(req.Screen)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown screen"})
		return
	}

	var intent session.Intent
	switch {
	case req.TempleName != "" && screen == session.ScreenBooking:
		if h.services.Temples.Get(req.TempleName) == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Temple not found"})
			return
		}
		intent = session.SelectTempleForBooking{TempleName: req.TempleName}
	case req.TempleName != "" && screen == session.ScreenDirections:
		if h.services.Temples.Get(req.TempleName) == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Temple not found"})
			return
		}
		intent = session.SelectTempleForDirections{TempleName: req.TempleName}
	default:
		intent = session.Navigate{Screen: screen}
	}

	state, err := h.sessions.Dispatch(sessionToken(c), intent)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.sessionView(state))
}

// SignOut - POST /api/sessions/signout
// Выйти из сессии; локальный переход происходит даже при сбое gateway
func (h *Handlers) SignOut(c *gin.Context) {
	state, err := h.sessions.SignOut(c.Request.Context(), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.sessionView(state))
}

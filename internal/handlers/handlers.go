package handlers

import (
	"errors"
	"net/http"

	apperrors "pilgrimpal/internal/errors"
	"pilgrimpal/internal/external"
	"pilgrimpal/internal/models"
	"pilgrimpal/internal/service"
	"pilgrimpal/internal/session"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	services *service.Services
	sessions *session.Manager
}

func NewHandlers(services *service.Services, sessions *session.Manager) *Handlers {
	return &Handlers{
		services: services,
		sessions: sessions,
	}
}

// sessionToken returns the token placed by the SessionAuth middleware.
func sessionToken(c *gin.Context) string {
	return c.GetString("session_token")
}

// sessionState resolves the caller's navigation state or aborts with 401.
func (h *Handlers) sessionState(c *gin.Context) (session.State, bool) {
	state, err := h.sessions.State(sessionToken(c))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown session"})
		return session.State{}, false
	}
	return state, true
}

// sessionView assembles the per-screen render data for a state snapshot.
func (h *Handlers) sessionView(state session.State) models.SessionView {
	view := models.SessionView{
		AuthStatus:    string(state.AuthStatus),
		UserID:        state.UserID,
		CurrentScreen: string(state.CurrentScreen),
		Notice:        state.Notice,
	}
	if state.BookingTemple != "" {
		view.BookingTemple = h.services.Temples.Get(state.BookingTemple)
	}
	if state.DirectionsTemple != "" {
		view.DirectionsTemple = h.services.Temples.Get(state.DirectionsTemple)
	}
	if state.Authenticated() {
		view.TicketCount = h.services.Bookings.TicketCount(state.UserID)
	}
	return view
}

// respondError maps domain errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
	case errors.Is(err, apperrors.ErrTempleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Temple not found"})
	case errors.Is(err, apperrors.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown session"})
	case errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in required"})
	case errors.Is(err, apperrors.ErrQueueNumberExhausted):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No queue numbers available, please retry", "retryable": true})
	case errors.Is(err, external.ErrChargeDeclined):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Donation was declined, please retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

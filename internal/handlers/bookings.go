package handlers

import (
	"log/slog"
	"net/http"

	"pilgrimpal/internal/models"
	"pilgrimpal/internal/session"

	"github.com/gin-gonic/gin"
)

// Bookings handlers

// SubmitBooking - POST /api/bookings
// Оформить darshan pass
func (h *Handlers) SubmitBooking(c *gin.Context) {
	state, ok := h.sessionState(c)
	if !ok {
		return
	}
	if !state.Authenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in required"})
		return
	}

	var req models.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.services.Bookings.SubmitBooking(c.Request.Context(), state.UserID, &req)
	if err != nil {
		slog.Error("Failed to submit booking", "error", err, "temple", req.TempleName)
		respondError(c, err)
		return
	}

	// Issuance lands the session on the ticket list with the booking
	// context cleared, like the booking screen's confirm flow.
	if _, err := h.sessions.Dispatch(sessionToken(c), session.BookingCompleted{}); err != nil {
		slog.Error("Failed to advance session after booking", "error", err)
	}

	c.JSON(http.StatusCreated, models.SubmitBookingResponse{Ticket: ticket})
}

// ListTickets - GET /api/tickets
// Получить список билетов пользователя, новые первыми
func (h *Handlers) ListTickets(c *gin.Context) {
	state, ok := h.sessionState(c)
	if !ok {
		return
	}
	if !state.Authenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in required"})
		return
	}

	var tickets []models.Ticket
	if temple := c.Query("temple"); temple != "" {
		tickets = h.services.Bookings.FindTicketsByTemple(state.UserID, temple)
	} else {
		tickets = h.services.Bookings.ListTickets(state.UserID)
	}

	c.JSON(http.StatusOK, models.ListTicketsResponse(tickets))
}

// GetTicket - GET /api/tickets/:queueNumber
// Получить один билет для показа на входе (QR pass)
func (h *Handlers) GetTicket(c *gin.Context) {
	state, ok := h.sessionState(c)
	if !ok {
		return
	}
	if !state.Authenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in required"})
		return
	}

	ticket := h.services.Bookings.GetTicket(c.Param("queueNumber"))
	if ticket == nil || ticket.UserID != state.UserID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}

	c.JSON(http.StatusOK, ticket)
}

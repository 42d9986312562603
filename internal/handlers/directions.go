package handlers

import (
	"log/slog"
	"net/http"

	"pilgrimpal/internal/models"
	"pilgrimpal/internal/service"

	"github.com/gin-gonic/gin"
)

// Directions handlers

// EstimateTravel - POST /api/directions/estimate
// Получить детерминированную оценку времени в пути
func (h *Handlers) EstimateTravel(c *gin.Context) {
	var req models.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode, ok := service.ParseTransportMode(req.Mode)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be one of Car, Train, Walk"})
		return
	}

	estimate, err := h.services.Directions.Estimate(req.TempleName, mode)
	if err != nil {
		slog.Error("Failed to estimate travel", "error", err, "temple", req.TempleName)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, estimate)
}

// Donations handlers

// Donate - POST /api/donations
// Провести пожертвование через симулированный платежный шлюз
func (h *Handlers) Donate(c *gin.Context) {
	var req models.DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.services.Donations.Donate(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to process donation", "error", err, "amount", req.Amount)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

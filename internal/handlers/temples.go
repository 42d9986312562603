package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Temples handlers

// ListTemples - GET /api/temples
// Получить список храмов с поиском и фильтром по категории
func (h *Handlers) ListTemples(c *gin.Context) {
	query := c.Query("query")
	category := c.DefaultQuery("category", "All")

	temples := h.services.Temples.List(query, category)
	c.JSON(http.StatusOK, gin.H{
		"temples":    temples,
		"categories": h.services.Temples.Categories(),
	})
}

// FeaturedTemple - GET /api/temples/featured
// Получить храм для главного экрана
func (h *Handlers) FeaturedTemple(c *gin.Context) {
	temple := h.services.Temples.Featured()
	if temple == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Temple not found"})
		return
	}
	c.JSON(http.StatusOK, temple)
}

// ListStreams - GET /api/streams
// Получить список live-трансляций
func (h *Handlers) ListStreams(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Streams.List())
}

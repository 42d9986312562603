package service

import (
	"pilgrimpal/internal/models"
)

// Live darshan listing is static display data.
var liveStreams = []models.Stream{
	{Temple: "Somnath Temple", Location: "Veraval", Viewers: "8,234", Status: "Live"},
	{Temple: "Dwarkadhish Temple", Location: "Dwarka", Viewers: "6,891", Status: "Live"},
	{Temple: "Ambaji Temple", Location: "Banaskantha", Viewers: "4,523", Status: "Live"},
	{Temple: "Akshardham", Location: "Gandhinagar", Viewers: "Starts in 20 min", Status: "Upcoming"},
	{Temple: "Shamlaji Temple", Location: "Aravalli", Viewers: "2,345", Status: "Live"},
}

type StreamService struct{}

func NewStreamService() *StreamService {
	return &StreamService{}
}

// List returns the live darshan streams.
func (s *StreamService) List() []models.Stream {
	out := make([]models.Stream, len(liveStreams))
	copy(out, liveStreams)
	return out
}

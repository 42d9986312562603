package service

import (
	"fmt"
	"math"

	"pilgrimpal/internal/catalog"
	apperrors "pilgrimpal/internal/errors"
	"pilgrimpal/internal/models"
)

// EstimateMinutes maps distance and transport mode to travel minutes,
// rounded up to the next whole minute. Pure function.
//
// Car averages 40 km/h, walking 5 km/h. Train models a fixed boarding and
// transfer overhead on longer inter-city legs: under 10 km it is 4 min/km,
// from 10 km it is 120 min plus 2 min/km.
func EstimateMinutes(distanceKm float64, mode models.TransportMode) int {
	var minutes float64
	switch mode {
	case models.ModeCar:
		minutes = distanceKm / 40 * 60
	case models.ModeTrain:
		if distanceKm < 10 {
			minutes = distanceKm * 4
		} else {
			minutes = 120 + distanceKm*2
		}
	default:
		// Walk, and the fallback for anything unrecognized.
		minutes = distanceKm / 5 * 60
	}
	return int(math.Ceil(minutes))
}

// FormatMinutes renders "H hr M min" once the estimate reaches an hour,
// "M min" below that.
func FormatMinutes(totalMinutes int) string {
	hours := totalMinutes / 60
	if hours > 0 {
		return fmt.Sprintf("%d hr %d min", hours, totalMinutes%60)
	}
	return fmt.Sprintf("%d min", totalMinutes)
}

// ParseTransportMode maps a request tag to a transport mode.
func ParseTransportMode(tag string) (models.TransportMode, bool) {
	switch models.TransportMode(tag) {
	case models.ModeCar:
		return models.ModeCar, true
	case models.ModeTrain:
		return models.ModeTrain, true
	case models.ModeWalk:
		return models.ModeWalk, true
	}
	return "", false
}

// DirectionsService resolves a temple and produces its travel estimate.
type DirectionsService struct {
	catalog *catalog.Catalog
}

func NewDirectionsService(cat *catalog.Catalog) *DirectionsService {
	return &DirectionsService{catalog: cat}
}

// Estimate computes the deterministic travel estimate to the named temple.
func (s *DirectionsService) Estimate(templeName string, mode models.TransportMode) (*models.EstimateResponse, error) {
	temple := s.catalog.GetByName(templeName)
	if temple == nil {
		return nil, apperrors.ErrTempleNotFound
	}

	minutes := EstimateMinutes(temple.DistanceKm, mode)
	return &models.EstimateResponse{
		TempleName: temple.Name,
		City:       temple.City,
		Mode:       string(mode),
		DistanceKm: temple.DistanceKm,
		Minutes:    minutes,
		Formatted:  FormatMinutes(minutes),
	}, nil
}

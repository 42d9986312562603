package service

import (
	"pilgrimpal/internal/catalog"
	"pilgrimpal/internal/models"
)

// TempleService exposes the immutable temple catalog.
type TempleService struct {
	catalog *catalog.Catalog
}

func NewTempleService(cat *catalog.Catalog) *TempleService {
	return &TempleService{catalog: cat}
}

// List filters the catalog by search query and category tab.
func (s *TempleService) List(query, category string) []models.Temple {
	return s.catalog.Search(query, category)
}

// Get returns one temple by name, or nil.
func (s *TempleService) Get(name string) *models.Temple {
	return s.catalog.GetByName(name)
}

// Featured returns the temple surfaced on the Home screen.
func (s *TempleService) Featured() *models.Temple {
	return s.catalog.Featured()
}

// Categories returns the fixed filter tabs.
func (s *TempleService) Categories() []string {
	out := make([]string, len(catalog.Categories))
	copy(out, catalog.Categories)
	return out
}

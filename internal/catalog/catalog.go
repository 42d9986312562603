package catalog

import (
	"strconv"
	"strings"

	"pilgrimpal/internal/models"
)

// DefaultDistanceKm is used when a raw catalog distance cannot be parsed.
const DefaultDistanceKm = 15.0

// Categories are the fixed filter tabs, "All" included.
var Categories = []string{"All", "Shiva", "Krishna", "Shakti", "Swaminarayan", "Jain"}

// rawTemple is a catalog source row. Distances arrive as display strings
// like "2.1 km"; a rating of 0 means unrated.
type rawTemple struct {
	name     string
	city     string
	deity    string
	dist     string
	rating   float64
	category string
}

var sourceRows = []rawTemple{
	{"Somnath Temple", "Veraval", "Lord Shiva", "2.1 km", 4.8, "Shiva"},
	{"Dwarkadhish Temple", "Dwarka", "Lord Krishna", "3.2 km", 4.9, "Krishna"},
	{"Ambaji Temple", "Banaskantha", "Maa Ambaji", "5.8 km", 4.7, "Shakti"},
	{"Akshardham", "Gandhinagar", "Swaminarayan", "8.1 km", 4.9, "Swaminarayan"},
	{"Shamlaji Temple", "Aravalli", "Lord Vishnu", "12.4 km", 4.6, "Krishna"},
	{"Palitana Temples", "Bhavnagar", "Jain Tirthankaras", "18.7 km", 0, "Jain"},
	{"Becharaji Temple", "Mehsana", "Bahucharaji", "22.3 km", 4.5, "Shakti"},
}

// Catalog holds the immutable temple reference data. Safe for concurrent
// reads; never mutated after Load.
type Catalog struct {
	temples []models.Temple
	byName  map[string]*models.Temple
}

// Load builds the catalog from the static source rows.
func Load() *Catalog {
	c := &Catalog{
		temples: make([]models.Temple, 0, len(sourceRows)),
		byName:  make(map[string]*models.Temple, len(sourceRows)),
	}
	for _, row := range sourceRows {
		t := models.Temple{
			Name:       row.name,
			City:       row.city,
			Deity:      row.deity,
			Category:   row.category,
			DistanceKm: ParseDistanceKm(row.dist),
		}
		if row.rating > 0 {
			r := row.rating
			t.Rating = &r
		}
		c.temples = append(c.temples, t)
	}
	for i := range c.temples {
		c.byName[c.temples[i].Name] = &c.temples[i]
	}
	return c
}

// ParseDistanceKm parses a raw distance like "2.1 km". Unparsable values
// fall back to DefaultDistanceKm rather than failing.
func ParseDistanceKm(raw string) float64 {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "km"))
	km, err := strconv.ParseFloat(s, 64)
	if err != nil || km < 0 {
		return DefaultDistanceKm
	}
	return km
}

// All returns every temple in catalog order.
func (c *Catalog) All() []models.Temple {
	out := make([]models.Temple, len(c.temples))
	copy(out, c.temples)
	return out
}

// GetByName returns the temple with the given name, or nil.
func (c *Catalog) GetByName(name string) *models.Temple {
	return c.byName[name]
}

// Featured returns the temple surfaced on the Home screen.
func (c *Catalog) Featured() *models.Temple {
	if len(c.temples) == 0 {
		return nil
	}
	return &c.temples[0]
}

// Search filters by category tab and a case-insensitive query over name and
// city. An empty query or the "All" category matches everything.
func (c *Catalog) Search(query, category string) []models.Temple {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.Temple
	for _, t := range c.temples {
		if category != "" && category != "All" && t.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Name), q) &&
			!strings.Contains(strings.ToLower(t.City), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

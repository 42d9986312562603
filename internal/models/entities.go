package models

import (
	"strings"
	"time"
)

// Ticket status values. Tickets are issued as Confirmed; Pending and
// Cancelled exist for seeded data and future approval flows.
const (
	TicketStatusPending   = "Pending"
	TicketStatusConfirmed = "Confirmed"
	TicketStatusCancelled = "Cancelled"
)

// TransportMode is a mode of travel for the directions estimator.
type TransportMode string

const (
	ModeCar   TransportMode = "Car"
	ModeTrain TransportMode = "Train"
	ModeWalk  TransportMode = "Walk"
)

// TimeSlots are the fixed darshan slot labels a booking may target.
var TimeSlots = []string{
	"07:00 - 08:00 AM",
	"09:00 - 10:00 AM",
	"11:00 - 12:00 PM",
	"04:00 - 05:00 PM",
	"06:00 - 07:00 PM",
}

// ValidTimeSlot reports whether slot is one of the fixed labels.
func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Temple is immutable reference data loaded at process start.
type Temple struct {
	Name       string   `json:"name"`
	City       string   `json:"city"`
	Deity      string   `json:"deity"`
	Category   string   `json:"category"`
	DistanceKm float64  `json:"distance_km"`
	Rating     *float64 `json:"rating,omitempty"`
}

// Initial returns the uppercased first letter of the temple name, used as
// the queue number prefix.
func (t *Temple) Initial() string {
	if t.Name == "" {
		return ""
	}
	return strings.ToUpper(t.Name[:1])
}

// Ticket is a darshan pass. Immutable once issued except for status.
type Ticket struct {
	QueueNumber  string    `json:"queue_number"`
	TempleName   string    `json:"temple_name"`
	TempleCity   string    `json:"temple_city"`
	VisitDate    string    `json:"visit_date"`
	TimeSlot     string    `json:"time_slot"`
	PilgrimCount int       `json:"pilgrim_count"`
	BookedBy     string    `json:"booked_by"`
	BookedPhone  string    `json:"booked_phone"`
	Status       string    `json:"status"`
	UserID       string    `json:"user_id"`
	BookedAt     time.Time `json:"booked_at"`
}

// Stream is a static live-darshan stream listing entry.
type Stream struct {
	Temple   string `json:"temple"`
	Location string `json:"location"`
	Viewers  string `json:"viewers"`
	Status   string `json:"status"`
}

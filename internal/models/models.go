package models

import (
	"fmt"
)

// ValidationError reports which booking or donation field failed and why.
// Validation failures never mutate the ticket store and are never fatal.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SubmitBookingRequest carries the booking form for one darshan pass.
type SubmitBookingRequest struct {
	TempleName   string `json:"temple_name" binding:"required"`
	VisitDate    string `json:"visit_date" binding:"required"`
	TimeSlot     string `json:"time_slot" binding:"required"`
	PilgrimCount int    `json:"pilgrim_count" binding:"required"`
	BookedBy     string `json:"booked_by"`
	BookedPhone  string `json:"booked_phone"`
}

// SubmitBookingResponse returns the issued pass.
type SubmitBookingResponse struct {
	Ticket *Ticket `json:"ticket"`
}

// ListTicketsResponse is the ordered ticket listing, most recent first.
type ListTicketsResponse []Ticket

// ListTemplesResponse is the catalog listing after search/filter.
type ListTemplesResponse []Temple

// ListStreamsResponse is the static live-darshan listing.
type ListStreamsResponse []Stream

// EstimateRequest asks for a travel estimate to a temple.
type EstimateRequest struct {
	TempleName string `json:"temple_name" binding:"required"`
	Mode       string `json:"mode" binding:"required"`
}

// EstimateResponse carries the deterministic travel estimate.
type EstimateResponse struct {
	TempleName string  `json:"temple_name"`
	City       string  `json:"city"`
	Mode       string  `json:"mode"`
	DistanceKm float64 `json:"distance_km"`
	Minutes    int     `json:"minutes"`
	Formatted  string  `json:"formatted"`
}

// DonateRequest carries a donation through the simulated payment gateway.
type DonateRequest struct {
	Amount  int64  `json:"amount" binding:"required"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// DonateResponse reports the gateway outcome.
type DonateResponse struct {
	ReceiptID string `json:"receipt_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
}

// StartSessionResponse returns the session token and the resolved auth state.
// A gateway failure still yields a session, resolved to Unauthenticated.
type StartSessionResponse struct {
	SessionToken string `json:"session_token"`
	AuthStatus   string `json:"auth_status"`
	UserID       string `json:"user_id,omitempty"`
	AuthError    string `json:"auth_error,omitempty"`
}

// NavigateRequest moves the session to a screen, optionally selecting a
// temple context for Booking or Directions in the same intent.
type NavigateRequest struct {
	Screen     string `json:"screen" binding:"required"`
	TempleName string `json:"temple_name"`
}

// SessionView is the per-screen render data the presentation layer consumes.
type SessionView struct {
	AuthStatus       string  `json:"auth_status"`
	UserID           string  `json:"user_id,omitempty"`
	CurrentScreen    string  `json:"current_screen"`
	BookingTemple    *Temple `json:"booking_temple,omitempty"`
	DirectionsTemple *Temple `json:"directions_temple,omitempty"`
	Notice           string  `json:"notice,omitempty"`
	TicketCount      int     `json:"ticket_count"`
}

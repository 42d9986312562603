package models

import "time"

// NATS Event Types
const (
	EventTicketIssued      = "ticket.issued"
	EventSessionSignedIn   = "session.signed_in"
	EventSessionSignedOut  = "session.signed_out"
	EventDonationCompleted = "donation.completed"
	EventDonationFailed    = "donation.failed"
)

// TicketIssuedEvent represents a successful darshan pass issuance
type TicketIssuedEvent struct {
	QueueNumber  string    `json:"queue_number"`
	TempleName   string    `json:"temple_name"`
	VisitDate    string    `json:"visit_date"`
	TimeSlot     string    `json:"time_slot"`
	PilgrimCount int       `json:"pilgrim_count"`
	UserID       string    `json:"user_id"`
	Timestamp    time.Time `json:"timestamp"`
}

// SessionSignedInEvent represents a resolved sign-in
type SessionSignedInEvent struct {
	SessionToken string    `json:"session_token"`
	UserID       string    `json:"user_id"`
	Timestamp    time.Time `json:"timestamp"`
}

// SessionSignedOutEvent represents a sign-out
type SessionSignedOutEvent struct {
	SessionToken string    `json:"session_token"`
	UserID       string    `json:"user_id"`
	Timestamp    time.Time `json:"timestamp"`
}

// DonationCompletedEvent represents a successful simulated charge
type DonationCompletedEvent struct {
	ReceiptID string    `json:"receipt_id"`
	Amount    int64     `json:"amount"`
	Contact   string    `json:"contact"`
	Timestamp time.Time `json:"timestamp"`
}

// DonationFailedEvent represents a failed simulated charge
type DonationFailedEvent struct {
	Amount    int64     `json:"amount"`
	Contact   string    `json:"contact"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

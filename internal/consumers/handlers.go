package consumers

import (
	"encoding/json"
	"log/slog"

	"pilgrimpal/internal/metrics"
	"pilgrimpal/internal/models"

	"github.com/nats-io/stan.go"
)

// Handlers process the domain events the API publishes. They produce the
// audit trail and consumption metrics; nothing here feeds back into the
// booking path.
type Handlers struct{}

func NewHandlers() *Handlers {
	return &Handlers{}
}

func (h *Handlers) HandleTicketIssued(m *stan.Msg) {
	var event models.TicketIssuedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal ticket issued event", "error", err)
		return
	}

	slog.Info("Darshan pass issued",
		"queue_number", event.QueueNumber,
		"temple", event.TempleName,
		"visit_date", event.VisitDate,
		"pilgrims", event.PilgrimCount)

	metrics.EventsConsumed.WithLabelValues(models.EventTicketIssued).Inc()
	m.Ack()
}

func (h *Handlers) HandleSessionSignedIn(m *stan.Msg) {
	var event models.SessionSignedInEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal session signed in event", "error", err)
		return
	}

	slog.Info("Session signed in", "session_token", event.SessionToken, "user_id", event.UserID)

	metrics.EventsConsumed.WithLabelValues(models.EventSessionSignedIn).Inc()
	m.Ack()
}

func (h *Handlers) HandleSessionSignedOut(m *stan.Msg) {
	var event models.SessionSignedOutEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal session signed out event", "error", err)
		return
	}

	slog.Info("Session signed out", "session_token", event.SessionToken, "user_id", event.UserID)

	metrics.EventsConsumed.WithLabelValues(models.EventSessionSignedOut).Inc()
	m.Ack()
}

func (h *Handlers) HandleDonationCompleted(m *stan.Msg) {
	var event models.DonationCompletedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal donation completed event", "error", err)
		return
	}

	slog.Info("Donation completed",
		"receipt_id", event.ReceiptID,
		"amount", event.Amount)

	metrics.EventsConsumed.WithLabelValues(models.EventDonationCompleted).Inc()
	m.Ack()
}

func (h *Handlers) HandleDonationFailed(m *stan.Msg) {
	var event models.DonationFailedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal donation failed event", "error", err)
		return
	}

	slog.Warn("Donation failed",
		"amount", event.Amount,
		"reason", event.Reason)

	metrics.EventsConsumed.WithLabelValues(models.EventDonationFailed).Inc()
	m.Ack()
}

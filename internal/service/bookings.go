package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"pilgrimpal/internal/catalog"
	apperrors "pilgrimpal/internal/errors"
	"pilgrimpal/internal/logger"
	"pilgrimpal/internal/messaging"
	"pilgrimpal/internal/metrics"
	"pilgrimpal/internal/models"
	"pilgrimpal/internal/repository"
)

// Queue numbers draw from the 100-999 space per temple initial, the format
// presented at the physical gate.
const (
	queueNumberMin   = 100
	queueNumberMax   = 999
	maxIssueAttempts = queueNumberMax - queueNumberMin + 1
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

const visitDateLayout = "2006-01-02"

// BookingService turns a booking request into a stored ticket or rejects
// it. Issuance is atomic: either a valid ticket with a unique queue number
// lands in the store, or nothing does.
type BookingService struct {
	catalog    *catalog.Catalog
	tickets    *repository.TicketStore
	natsClient *messaging.NATSClient

	// now is swappable for date-boundary tests.
	now func() time.Time

	// cursor proposes the next queue number per temple initial. The store
	// still rejects duplicates, so a stale cursor only costs a retry.
	mu     sync.Mutex
	cursor map[string]int
}

func NewBookingService(cat *catalog.Catalog, tickets *repository.TicketStore, natsClient *messaging.NATSClient) *BookingService {
	return &BookingService{
		catalog:    cat,
		tickets:    tickets,
		natsClient: natsClient,
		now:        time.Now,
		cursor:     make(map[string]int),
	}
}

// SubmitBooking validates the request and issues a darshan pass. Checks run
// in a fixed order and the first failure wins; a validation failure never
// touches the ticket store.
func (s *BookingService) SubmitBooking(ctx context.Context, userID string, req *models.SubmitBookingRequest) (*models.Ticket, error) {
	temple := s.catalog.GetByName(req.TempleName)
	if temple == nil {
		return nil, s.reject("temple_name", "unknown temple")
	}
	if strings.TrimSpace(req.BookedBy) == "" {
		return nil, s.reject("booked_by", "lead pilgrim name is required")
	}
	if !phonePattern.MatchString(req.BookedPhone) {
		return nil, s.reject("booked_phone", "phone must be exactly 10 digits")
	}
	if req.PilgrimCount < 1 || req.PilgrimCount > 5 {
		return nil, s.reject("pilgrim_count", "pilgrim count must be between 1 and 5")
	}
	visit, err := time.Parse(visitDateLayout, req.VisitDate)
	if err != nil {
		return nil, s.reject("visit_date", "visit date must be YYYY-MM-DD")
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if visit.Before(today) {
		return nil, s.reject("visit_date", "visit date cannot be in the past")
	}
	if !models.ValidTimeSlot(req.TimeSlot) {
		return nil, s.reject("time_slot", "unknown darshan time slot")
	}

	ticket, err := s.issue(temple, userID, req, now)
	if err != nil {
		return nil, err
	}

	event := models.TicketIssuedEvent{
		QueueNumber:  ticket.QueueNumber,
		TempleName:   ticket.TempleName,
		VisitDate:    ticket.VisitDate,
		TimeSlot:     ticket.TimeSlot,
		PilgrimCount: ticket.PilgrimCount,
		UserID:       userID,
		Timestamp:    now,
	}
	if err := s.natsClient.Publish(models.EventTicketIssued, event); err != nil {
		// Log error but don't fail the issuance
		logger.WithContext(ctx).Error("Failed to publish ticket issued event",
			"error", err,
			"queue_number", ticket.QueueNumber,
			"event_type", models.EventTicketIssued)
	}

	metrics.TicketsIssued.Inc()
	return ticket, nil
}

// issue proposes queue numbers until the store accepts one. The store
// rejects duplicates under its own lock, so concurrent issuance for the
// same initial resolves to exactly one winner per number; losers retry
// with the next candidate.
func (s *BookingService) issue(temple *models.Temple, userID string, req *models.SubmitBookingRequest, now time.Time) (*models.Ticket, error) {
	initial := temple.Initial()

	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		ticket := &models.Ticket{
			QueueNumber:  fmt.Sprintf("%s-%03d", initial, s.nextNumber(initial)),
			TempleName:   temple.Name,
			TempleCity:   temple.City,
			VisitDate:    req.VisitDate,
			TimeSlot:     req.TimeSlot,
			PilgrimCount: req.PilgrimCount,
			BookedBy:     strings.TrimSpace(req.BookedBy),
			BookedPhone:  req.BookedPhone,
			Status:       models.TicketStatusConfirmed,
			UserID:       userID,
			BookedAt:     now,
		}

		err := s.tickets.Add(ticket)
		if err == nil {
			return ticket, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicateQueueNumber) {
			return nil, fmt.Errorf("failed to store ticket: %w", err)
		}
	}

	return nil, apperrors.ErrQueueNumberExhausted
}

func (s *BookingService) nextNumber(initial string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.cursor[initial]
	if n < queueNumberMin || n > queueNumberMax {
		n = queueNumberMin
	}
	s.cursor[initial] = n + 1
	return n
}

func (s *BookingService) reject(field, message string) error {
	metrics.BookingRejections.WithLabelValues(field).Inc()
	return &models.ValidationError{Field: field, Message: message}
}

// ListTickets returns the user's passes, most recent first.
func (s *BookingService) ListTickets(userID string) []models.Ticket {
	return s.tickets.All(userID)
}

// FindTicketsByTemple returns the user's passes for one temple, most recent
// first, used to resume a Directions flow from the ticket list.
func (s *BookingService) FindTicketsByTemple(userID, templeName string) []models.Ticket {
	return s.tickets.FindByTempleName(userID, templeName)
}

// GetTicket fetches one pass by queue number for gate presentation.
func (s *BookingService) GetTicket(queueNumber string) *models.Ticket {
	return s.tickets.GetByQueueNumber(queueNumber)
}

// TicketCount returns how many passes the user holds.
func (s *BookingService) TicketCount(userID string) int {
	return s.tickets.Count(userID)
}

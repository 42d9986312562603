package repository

import (
	"sync"

	"pilgrimpal/internal/errors"
	"pilgrimpal/internal/models"
)

// TicketStore is the in-memory collection of issued darshan passes.
// Tickets live for the process lifetime; there is no deletion.
//
// All mutation happens under one mutex, so a duplicate queue number can
// never be inserted even under concurrent issuance: Add is the
// serialization point the booking engine retries against.
type TicketStore struct {
	mu      sync.Mutex
	byQueue map[string]*models.Ticket
	byUser  map[string][]*models.Ticket
}

func NewTicketStore() *TicketStore {
	return &TicketStore{
		byQueue: make(map[string]*models.Ticket),
		byUser:  make(map[string][]*models.Ticket),
	}
}

// Add inserts the ticket at the front of its user's list. It returns
// errors.ErrDuplicateQueueNumber without inserting when the queue number
// is already taken.
func (s *TicketStore) Add(ticket *models.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byQueue[ticket.QueueNumber]; taken {
		return errors.ErrDuplicateQueueNumber
	}

	s.byQueue[ticket.QueueNumber] = ticket
	s.byUser[ticket.UserID] = append([]*models.Ticket{ticket}, s.byUser[ticket.UserID]...)
	return nil
}

// All returns the user's tickets, most recent first.
func (s *TicketStore) All(userID string) []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets := s.byUser[userID]
	out := make([]models.Ticket, len(tickets))
	for i, t := range tickets {
		out[i] = *t
	}
	return out
}

// FindByTempleName returns the user's tickets for the named temple, most
// recent first. Used to resume a Directions flow from the ticket list.
func (s *TicketStore) FindByTempleName(userID, templeName string) []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Ticket
	for _, t := range s.byUser[userID] {
		if t.TempleName == templeName {
			out = append(out, *t)
		}
	}
	return out
}

// GetByQueueNumber returns the ticket with the given queue number, or nil.
func (s *TicketStore) GetByQueueNumber(queueNumber string) *models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byQueue[queueNumber]
	if !ok {
		return nil
	}
	copied := *t
	return &copied
}

// Count returns the user's ticket count.
func (s *TicketStore) Count(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byUser[userID])
}

// Size returns the total number of tickets ever issued.
func (s *TicketStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byQueue)
}

package session

import (
	"context"
	"sync"
	"time"

	"pilgrimpal/internal/errors"
	"pilgrimpal/internal/external"
	"pilgrimpal/internal/logger"
	"pilgrimpal/internal/messaging"
	"pilgrimpal/internal/models"

	"github.com/google/uuid"
)

// Manager owns the per-session navigation states. Sessions are independent
// and share no mutable state, so each one carries its own lock; the outer
// map lock only guards registration and lookup.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*managedSession

	gateway external.AuthGateway
	nats    *messaging.NATSClient
}

type managedSession struct {
	mu    sync.Mutex
	state State
}

func NewManager(gateway external.AuthGateway, nats *messaging.NATSClient) *Manager {
	return &Manager{
		sessions: make(map[string]*managedSession),
		gateway:  gateway,
		nats:     nats,
	}
}

// Run consumes the gateway's identity change feed until ctx is done.
// A signed-out change revokes every session bound to that user, the
// server-side equivalent of the provider reporting a null identity.
func (m *Manager) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-m.gateway.Changes():
			if !ok {
				return
			}
			if !change.SignedIn && change.UserID != "" {
				m.revokeUser(change.UserID)
			}
		}
	}
}

func (m *Manager) revokeUser(userID string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for token, ms := range m.sessions {
		ms.mu.Lock()
		if ms.state.UserID == userID {
			ms.state = Apply(ms.state, AuthResolved{})
			logger.Get().Info("Session revoked by identity provider",
				"session_token", token, "user_id", userID)
		}
		ms.mu.Unlock()
	}
}

// StartSession creates a session and resolves its identity through the
// gateway. The session always leaves Initializing before this returns: a
// gateway failure resolves it to Unauthenticated and the error is returned
// for display, not as a failure of the session itself.
func (m *Manager) StartSession(ctx context.Context) (string, State, error) {
	token := uuid.New().String()
	ms := &managedSession{state: NewState()}

	m.mu.Lock()
	m.sessions[token] = ms
	m.mu.Unlock()

	userID, err := m.gateway.SignIn(ctx)
	if err != nil {
		logger.WithContext(ctx).Warn("Sign-in failed, session resolves unauthenticated",
			"session_token", token, "error", err)
		userID = ""
	}

	ms.mu.Lock()
	ms.state = Apply(ms.state, AuthResolved{UserID: userID})
	state := ms.state
	ms.mu.Unlock()

	if userID != "" {
		m.publish(models.EventSessionSignedIn, models.SessionSignedInEvent{
			SessionToken: token,
			UserID:       userID,
			Timestamp:    time.Now(),
		})
	}

	return token, state, err
}

// State returns a snapshot of the session's navigation state.
func (m *Manager) State(token string) (State, error) {
	ms, err := m.lookup(token)
	if err != nil {
		return State{}, err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.state, nil
}

// Dispatch applies one intent atomically and returns the resulting state.
func (m *Manager) Dispatch(token string, intent Intent) (State, error) {
	ms, err := m.lookup(token)
	if err != nil {
		return State{}, err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.state = Apply(ms.state, intent)
	return ms.state, nil
}

// SignOut tells the gateway to drop the identity and transitions the
// session to Unauthenticated. A gateway failure is surfaced but the local
// transition happens regardless, so a session can always sign out.
func (m *Manager) SignOut(ctx context.Context, token string) (State, error) {
	ms, err := m.lookup(token)
	if err != nil {
		return State{}, err
	}

	if gwErr := m.gateway.SignOut(ctx); gwErr != nil {
		logger.WithContext(ctx).Warn("Gateway sign-out failed, dropping session anyway",
			"session_token", token, "error", gwErr)
	}

	ms.mu.Lock()
	userID := ms.state.UserID
	ms.state = Apply(ms.state, SignOut{})
	state := ms.state
	ms.mu.Unlock()

	m.publish(models.EventSessionSignedOut, models.SessionSignedOutEvent{
		SessionToken: token,
		UserID:       userID,
		Timestamp:    time.Now(),
	})

	return state, nil
}

func (m *Manager) lookup(token string) (*managedSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ms, ok := m.sessions[token]
	if !ok {
		return nil, errors.ErrSessionNotFound
	}
	return ms, nil
}

func (m *Manager) publish(subject string, data interface{}) {
	if m.nats == nil {
		return
	}
	if err := m.nats.Publish(subject, data); err != nil {
		logger.Get().Error("Failed to publish session event",
			"error", err, "event_type", subject)
	}
}

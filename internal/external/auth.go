package external

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ErrSignInFailed is reported when the identity provider rejects a sign-in.
var ErrSignInFailed = errors.New("identity provider rejected sign-in")

// ErrSignOutFailed is reported when the identity provider rejects a sign-out.
var ErrSignOutFailed = errors.New("identity provider rejected sign-out")

// AuthChange is one entry of the identity change feed. SignedIn false with
// a user id means that identity was revoked by the provider.
type AuthChange struct {
	UserID   string
	SignedIn bool
}

// AuthGateway is the identity provider boundary. The core only interprets
// whether a user id is present, never its contents.
type AuthGateway interface {
	SignIn(ctx context.Context) (string, error)
	SignOut(ctx context.Context) error
	Changes() <-chan AuthChange
}

type AuthConfig struct {
	Latency     time.Duration
	FailureRate float64
}

// SimulatedAuthGateway stands in for the real identity provider: it answers
// after a configurable latency and fails a configurable fraction of calls.
type SimulatedAuthGateway struct {
	cfg     AuthConfig
	changes chan AuthChange
}

func NewSimulatedAuthGateway(cfg AuthConfig) *SimulatedAuthGateway {
	return &SimulatedAuthGateway{
		cfg:     cfg,
		changes: make(chan AuthChange, 16),
	}
}

// SignIn issues an anonymous identity. The call resolves within the
// configured latency or when ctx is cancelled, never later.
func (g *SimulatedAuthGateway) SignIn(ctx context.Context) (string, error) {
	if err := g.wait(ctx); err != nil {
		return "", err
	}
	if rand.Float64() < g.cfg.FailureRate {
		return "", ErrSignInFailed
	}

	userID := uuid.New().String()
	g.emit(AuthChange{UserID: userID, SignedIn: true})
	return userID, nil
}

func (g *SimulatedAuthGateway) SignOut(ctx context.Context) error {
	if err := g.wait(ctx); err != nil {
		return err
	}
	if rand.Float64() < g.cfg.FailureRate {
		return ErrSignOutFailed
	}
	return nil
}

// Changes returns the identity change feed.
func (g *SimulatedAuthGateway) Changes() <-chan AuthChange {
	return g.changes
}

// Revoke simulates the provider invalidating an identity out-of-band.
func (g *SimulatedAuthGateway) Revoke(userID string) {
	g.emit(AuthChange{UserID: userID, SignedIn: false})
}

func (g *SimulatedAuthGateway) wait(ctx context.Context) error {
	if g.cfg.Latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(g.cfg.Latency):
		return nil
	}
}

func (g *SimulatedAuthGateway) emit(change AuthChange) {
	select {
	case g.changes <- change:
	default:
		// Feed consumer is behind; identity state is still resolved by the
		// direct call result, so dropping the change is safe.
	}
}

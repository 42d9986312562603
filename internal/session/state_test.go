package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func authenticatedState() State {
	return Apply(NewState(), AuthResolved{UserID: "user-1"})
}

func TestNewStateWaitsOnIdentity(t *testing.T) {
	s := NewState()
	assert.Equal(t, AuthInitializing, s.AuthStatus)
	assert.Equal(t, ScreenAuth, s.CurrentScreen)
	assert.False(t, s.Authenticated())
}

func TestAuthResolvedBindsIdentity(t *testing.T) {
	s := Apply(NewState(), AuthResolved{UserID: "user-1"})
	assert.Equal(t, AuthAuthenticated, s.AuthStatus)
	assert.Equal(t, "user-1", s.UserID)
	assert.Equal(t, ScreenHome, s.CurrentScreen)
}

func TestAuthResolvedEmptyMeansUnauthenticated(t *testing.T) {
	s := Apply(NewState(), AuthResolved{})
	assert.Equal(t, AuthUnauthenticated, s.AuthStatus)
	assert.Equal(t, ScreenAuth, s.CurrentScreen)
	assert.Empty(t, s.UserID)
}

func TestUnauthenticatedNavigationCoercedToAuth(t *testing.T) {
	s := Apply(NewState(), AuthResolved{})

	for _, screen := range []Screen{ScreenHome, ScreenTempleList, ScreenBooking, ScreenProfile} {
		next := Apply(s, Navigate{Screen: screen})
		assert.Equal(t, ScreenAuth, next.CurrentScreen, "screen %s", screen)
		assert.Equal(t, AuthUnauthenticated, next.AuthStatus)
	}

	next := Apply(s, SelectTempleForBooking{TempleName: "Somnath Temple"})
	assert.Equal(t, ScreenAuth, next.CurrentScreen)
	assert.Empty(t, next.BookingTemple)
}

func TestNavigateToPlainScreens(t *testing.T) {
	s := authenticatedState()

	for _, screen := range []Screen{ScreenTempleList, ScreenTicketList, ScreenLiveList, ScreenDonate, ScreenProfile, ScreenHome} {
		next := Apply(s, Navigate{Screen: screen})
		assert.Equal(t, screen, next.CurrentScreen)
		assert.Empty(t, next.Notice)
	}
}

func TestAuthScreenResolvesToHomeWhenSignedIn(t *testing.T) {
	s := Apply(authenticatedState(), Navigate{Screen: ScreenAuth})
	assert.Equal(t, ScreenHome, s.CurrentScreen)
	assert.Equal(t, AuthAuthenticated, s.AuthStatus)
}

func TestBookingWithoutSelectionRaisesNotice(t *testing.T) {
	s := Apply(authenticatedState(), Navigate{Screen: ScreenBooking})
	assert.Equal(t, ScreenBooking, s.CurrentScreen)
	assert.Equal(t, NoticeNoSelection, s.Notice)

	s = Apply(authenticatedState(), Navigate{Screen: ScreenDirections})
	assert.Equal(t, ScreenDirections, s.CurrentScreen)
	assert.Equal(t, NoticeNoSelection, s.Notice)
}

func TestSelectTempleEntersScreenWithContext(t *testing.T) {
	s := Apply(authenticatedState(), SelectTempleForBooking{TempleName: "Somnath Temple"})
	assert.Equal(t, ScreenBooking, s.CurrentScreen)
	assert.Equal(t, "Somnath Temple", s.BookingTemple)
	assert.Empty(t, s.Notice)

	// Re-entering Booking with the context set raises no notice.
	s = Apply(s, Navigate{Screen: ScreenHome})
	s = Apply(s, Navigate{Screen: ScreenBooking})
	assert.Equal(t, ScreenBooking, s.CurrentScreen)
	assert.Empty(t, s.Notice)
}

func TestNoticeClearsOnNextIntent(t *testing.T) {
	s := Apply(authenticatedState(), Navigate{Screen: ScreenBooking})
	assert.Equal(t, NoticeNoSelection, s.Notice)

	s = Apply(s, Navigate{Screen: ScreenHome})
	assert.Empty(t, s.Notice)
}

func TestBookingCompletedLandsOnTicketList(t *testing.T) {
	s := Apply(authenticatedState(), SelectTempleForBooking{TempleName: "Akshardham"})
	s = Apply(s, BookingCompleted{})

	assert.Equal(t, ScreenTicketList, s.CurrentScreen)
	assert.Empty(t, s.BookingTemple)
}

func TestDirectionsContextSurvivesBooking(t *testing.T) {
	s := Apply(authenticatedState(), SelectTempleForDirections{TempleName: "Dwarkadhish Temple"})
	s = Apply(s, SelectTempleForBooking{TempleName: "Akshardham"})
	s = Apply(s, BookingCompleted{})

	assert.Equal(t, "Dwarkadhish Temple", s.DirectionsTemple)
}

func TestSignOutClearsEverything(t *testing.T) {
	s := Apply(authenticatedState(), SelectTempleForBooking{TempleName: "Akshardham"})
	s = Apply(s, SelectTempleForDirections{TempleName: "Dwarkadhish Temple"})
	s = Apply(s, SignOut{})

	assert.Equal(t, AuthUnauthenticated, s.AuthStatus)
	assert.Equal(t, ScreenAuth, s.CurrentScreen)
	assert.Empty(t, s.UserID)
	assert.Empty(t, s.BookingTemple)
	assert.Empty(t, s.DirectionsTemple)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := authenticatedState()
	_ = Apply(s, SelectTempleForBooking{TempleName: "Akshardham"})

	assert.Empty(t, s.BookingTemple)
	assert.Equal(t, ScreenHome, s.CurrentScreen)
}

func TestParseScreen(t *testing.T) {
	screen, ok := ParseScreen("temples")
	assert.True(t, ok)
	assert.Equal(t, ScreenTempleList, screen)

	_, ok = ParseScreen("settings")
	assert.False(t, ok)
}

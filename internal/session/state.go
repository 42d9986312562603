package session

// AuthStatus is the identity state of one session.
type AuthStatus string

const (
	AuthInitializing    AuthStatus = "Initializing"
	AuthUnauthenticated AuthStatus = "Unauthenticated"
	AuthAuthenticated   AuthStatus = "Authenticated"
)

// Screen is the closed set of screen contexts a session can occupy.
type Screen string

const (
	ScreenHome       Screen = "home"
	ScreenTempleList Screen = "temples"
	ScreenTicketList Screen = "tickets"
	ScreenLiveList   Screen = "live"
	ScreenDonate     Screen = "donate"
	ScreenProfile    Screen = "profile"
	ScreenBooking    Screen = "booking"
	ScreenDirections Screen = "directions"
	ScreenAuth       Screen = "auth"
)

var screens = map[Screen]bool{
	ScreenHome:       true,
	ScreenTempleList: true,
	ScreenTicketList: true,
	ScreenLiveList:   true,
	ScreenDonate:     true,
	ScreenProfile:    true,
	ScreenBooking:    true,
	ScreenDirections: true,
	ScreenAuth:       true,
}

// ParseScreen maps a request tag to a Screen; ok is false for unknown tags.
func ParseScreen(tag string) (Screen, bool) {
	s := Screen(tag)
	return s, screens[s]
}

// NoticeNoSelection is raised when Booking or Directions is entered without
// a selected temple. User-recoverable, not an error.
const NoticeNoSelection = "no temple selected"

// State is the immutable navigation state of one session. Every transition
// goes through Apply; the state is never mutated in place.
type State struct {
	AuthStatus       AuthStatus
	UserID           string
	CurrentScreen    Screen
	BookingTemple    string
	DirectionsTemple string
	Notice           string
}

// NewState is the state of a freshly started session, waiting on the
// identity provider.
func NewState() State {
	return State{
		AuthStatus:    AuthInitializing,
		CurrentScreen: ScreenAuth,
	}
}

// Authenticated reports whether the session has a bound user id.
func (s State) Authenticated() bool {
	return s.AuthStatus == AuthAuthenticated
}

// Intent is a user or gateway input to the navigation reducer.
type Intent interface {
	isIntent()
}

// AuthResolved is delivered when the identity provider answers: a non-empty
// UserID binds the session, an empty one resolves it to Unauthenticated.
// Either way the session leaves Initializing.
type AuthResolved struct {
	UserID string
}

// Navigate moves the session to a screen.
type Navigate struct {
	Screen Screen
}

// SelectTempleForBooking sets the booking context and enters Booking in one
// step, so there is no intermediate state with the screen set but the
// context missing.
type SelectTempleForBooking struct {
	TempleName string
}

// SelectTempleForDirections sets the directions context and enters
// Directions in one step.
type SelectTempleForDirections struct {
	TempleName string
}

// BookingCompleted clears the booking context and lands on the ticket
// list, the post-issuance flow of the booking screen.
type BookingCompleted struct{}

// SignOut drops the identity and clears both temple contexts.
type SignOut struct{}

func (AuthResolved) isIntent()              {}
func (Navigate) isIntent()                  {}
func (SelectTempleForBooking) isIntent()    {}
func (SelectTempleForDirections) isIntent() {}
func (BookingCompleted) isIntent()          {}
func (SignOut) isIntent()                   {}

// Apply is the pure transition function. Unauthenticated sessions are
// coerced to the Auth screen on every navigation intent; screen-default
// resolution happens here, never while rendering.
func Apply(s State, intent Intent) State {
	s.Notice = ""

	switch in := intent.(type) {
	case AuthResolved:
		if in.UserID == "" {
			return State{
				AuthStatus:    AuthUnauthenticated,
				CurrentScreen: ScreenAuth,
			}
		}
		s.AuthStatus = AuthAuthenticated
		s.UserID = in.UserID
		s.CurrentScreen = ScreenHome
		return s

	case Navigate:
		if !s.Authenticated() {
			s.CurrentScreen = ScreenAuth
			return s
		}
		switch in.Screen {
		case ScreenAuth:
			// Already signed in: the auth screen resolves to Home.
			s.CurrentScreen = ScreenHome
		case ScreenBooking:
			s.CurrentScreen = ScreenBooking
			if s.BookingTemple == "" {
				s.Notice = NoticeNoSelection
			}
		case ScreenDirections:
			s.CurrentScreen = ScreenDirections
			if s.DirectionsTemple == "" {
				s.Notice = NoticeNoSelection
			}
		default:
			s.CurrentScreen = in.Screen
		}
		return s

	case SelectTempleForBooking:
		if !s.Authenticated() {
			s.CurrentScreen = ScreenAuth
			return s
		}
		s.BookingTemple = in.TempleName
		s.CurrentScreen = ScreenBooking
		return s

	case SelectTempleForDirections:
		if !s.Authenticated() {
			s.CurrentScreen = ScreenAuth
			return s
		}
		s.DirectionsTemple = in.TempleName
		s.CurrentScreen = ScreenDirections
		return s

	case BookingCompleted:
		if !s.Authenticated() {
			s.CurrentScreen = ScreenAuth
			return s
		}
		s.BookingTemple = ""
		s.CurrentScreen = ScreenTicketList
		return s

	case SignOut:
		return State{
			AuthStatus:    AuthUnauthenticated,
			CurrentScreen: ScreenAuth,
		}
	}

	return s
}

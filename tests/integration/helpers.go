package integration

import (
	"net/http/httptest"
	"testing"
	"time"

	"pilgrimpal/internal/api"
	"pilgrimpal/internal/config"
	"pilgrimpal/internal/external"
	"pilgrimpal/internal/messaging"
	"pilgrimpal/internal/models"
)

// StartTestServer boots the full API in-process with messaging disabled and
// deterministic gateways, and returns a client pointed at it.
func StartTestServer(t *testing.T) *TestClient {
	t.Helper()

	cfg := &config.Config{
		Port:           "0",
		GinMode:        "test",
		LogLevel:       "error",
		LogFormat:      "json",
		RequestTimeout: 30 * time.Second,
		NATS:           messaging.Config{Enabled: false},
		Auth:           external.AuthConfig{FailureRate: 0},
		Payment:        external.PaymentConfig{FailureRate: 0},
	}

	server := api.NewServer(cfg)
	ts := httptest.NewServer(server.GetRouter())
	t.Cleanup(func() {
		ts.Close()
		if err := server.Cleanup(); err != nil {
			t.Logf("Server cleanup failed: %v", err)
		}
	})

	return NewTestClient(ts.URL)
}

// ValidBookingRequest returns a booking the engine accepts as-is
func ValidBookingRequest() models.SubmitBookingRequest {
	return models.SubmitBookingRequest{
		TempleName:   "Somnath Temple",
		VisitDate:    time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		TimeSlot:     models.TimeSlots[0],
		PilgrimCount: 2,
		BookedBy:     "Ramesh Patel",
		BookedPhone:  "9876543210",
	}
}

// AssertTicketListed checks that a queue number appears in the ticket list
func AssertTicketListed(t *testing.T, tickets []models.Ticket, queueNumber string) {
	for _, ticket := range tickets {
		if ticket.QueueNumber == queueNumber {
			return
		}
	}
	t.Fatalf("Ticket %s not found in tickets list, %+v", queueNumber, tickets)
}

// LogTestStep logs a test step for better debugging
func LogTestStep(t *testing.T, step string, args ...interface{}) {
	t.Logf("🔹 "+step, args...)
}

// LogTestResult logs a test result
func LogTestResult(t *testing.T, result string, args ...interface{}) {
	t.Logf("✅ "+result, args...)
}

package integration

import (
	"regexp"
	"testing"
)

var queueNumberFormat = regexp.MustCompile(`^[A-Z]-\d{3}$`)

// TestBooking_FullFlow tests the complete select-book-present flow
func TestBooking_FullFlow(t *testing.T) {
	client := StartTestServer(t)
	client.StartSession(t)

	LogTestStep(t, "Selecting a temple for booking")
	view := client.Navigate(t, "booking", "Somnath Temple")
	if view.BookingTemple == nil || view.BookingTemple.Name != "Somnath Temple" {
		t.Fatalf("Expected Somnath Temple selected, got %+v", view.BookingTemple)
	}

	LogTestStep(t, "Submitting the booking")
	ticket := client.SubmitBooking(t, ValidBookingRequest())
	if !queueNumberFormat.MatchString(ticket.QueueNumber) {
		t.Fatalf("Queue number %s does not match the gate format", ticket.QueueNumber)
	}
	if ticket.Status != "Confirmed" {
		t.Fatalf("Expected Confirmed ticket, got %s", ticket.Status)
	}
	LogTestResult(t, "Issued pass %s", ticket.QueueNumber)

	LogTestStep(t, "Verifying the session landed on the ticket list")
	sessionView := client.GetSession(t)
	if sessionView.CurrentScreen != "tickets" {
		t.Fatalf("Expected tickets screen after issuance, got %s", sessionView.CurrentScreen)
	}
	if sessionView.TicketCount != 1 {
		t.Fatalf("Expected ticket count 1, got %d", sessionView.TicketCount)
	}

	LogTestStep(t, "Fetching the pass for gate presentation")
	fetched := client.GetTicket(t, ticket.QueueNumber)
	if fetched.TempleName != "Somnath Temple" {
		t.Fatalf("Expected Somnath Temple on the pass, got %s", fetched.TempleName)
	}
	LogTestResult(t, "Pass %s presentable at the gate", fetched.QueueNumber)
}

// TestBooking_QueueNumbersUnique tests that repeated bookings never collide
func TestBooking_QueueNumbersUnique(t *testing.T) {
	client := StartTestServer(t)
	client.StartSession(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		ticket := client.SubmitBooking(t, ValidBookingRequest())
		if seen[ticket.QueueNumber] {
			t.Fatalf("Duplicate queue number issued: %s", ticket.QueueNumber)
		}
		seen[ticket.QueueNumber] = true
	}
	LogTestResult(t, "Issued %d unique queue numbers", len(seen))

	tickets := client.ListTickets(t)
	if len(tickets) != 20 {
		t.Fatalf("Expected 20 tickets, got %d", len(tickets))
	}
}

// TestBooking_ValidationRejections tests that invalid bookings are rejected
// without issuing anything
func TestBooking_ValidationRejections(t *testing.T) {
	client := StartTestServer(t)
	client.StartSession(t)

	LogTestStep(t, "Submitting a booking with a bad phone number")
	req := ValidBookingRequest()
	req.BookedPhone = "12345"
	field := client.SubmitBookingExpectingRejection(t, req)
	if field != "booked_phone" {
		t.Fatalf("Expected booked_phone rejection, got %s", field)
	}

	LogTestStep(t, "Submitting a booking with too many pilgrims")
	req = ValidBookingRequest()
	req.PilgrimCount = 9
	field = client.SubmitBookingExpectingRejection(t, req)
	if field != "pilgrim_count" {
		t.Fatalf("Expected pilgrim_count rejection, got %s", field)
	}

	LogTestStep(t, "Submitting a booking for an unknown temple")
	req = ValidBookingRequest()
	req.TempleName = "Atlantis Mandir"
	field = client.SubmitBookingExpectingRejection(t, req)
	if field != "temple_name" {
		t.Fatalf("Expected temple_name rejection, got %s", field)
	}

	tickets := client.ListTickets(t)
	if len(tickets) != 0 {
		t.Fatalf("Rejected bookings must not issue tickets, found %d", len(tickets))
	}
	LogTestResult(t, "All invalid bookings rejected without issuance")
}

// TestBooking_TicketsScopedToUser tests that sessions never see each other's
// passes
func TestBooking_TicketsScopedToUser(t *testing.T) {
	client := StartTestServer(t)
	owner := client
	owner.StartSession(t)

	ticket := owner.SubmitBooking(t, ValidBookingRequest())
	AssertTicketListed(t, owner.ListTickets(t), ticket.QueueNumber)

	other := NewTestClient(owner.BaseURL)
	other.StartSession(t)

	if len(other.ListTickets(t)) != 0 {
		t.Fatal("A fresh session must not see another user's tickets")
	}
	LogTestResult(t, "Ticket listing is scoped per user")
}

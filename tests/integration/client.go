package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"pilgrimpal/internal/models"
)

// SessionTokenHeader duplicates the middleware constant so the client reads
// like an external consumer of the API.
const SessionTokenHeader = "X-Session-Token"

// TestClient provides methods for testing the API
type TestClient struct {
	BaseURL      string
	SessionToken string
	HTTPClient   *http.Client
}

// NewTestClient creates a new test client
func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// makeRequest makes an HTTP request and returns the response
func (c *TestClient) makeRequest(t *testing.T, method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.SessionToken != "" {
		req.Header.Set(SessionTokenHeader, c.SessionToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}

	return resp
}

// StartSession starts a session and stores the token on the client
func (c *TestClient) StartSession(t *testing.T) *models.StartSessionResponse {
	resp := c.makeRequest(t, "POST", "/api/sessions", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 201, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var session models.StartSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		t.Fatalf("Failed to decode session response: %v", err)
	}

	c.SessionToken = session.SessionToken
	return &session
}

// GetSession fetches the current session view
func (c *TestClient) GetSession(t *testing.T) *models.SessionView {
	resp := c.makeRequest(t, "GET", "/api/sessions/current", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var view models.SessionView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("Failed to decode session view: %v", err)
	}

	return &view
}

// Navigate applies a navigation intent
func (c *TestClient) Navigate(t *testing.T, screen, templeName string) *models.SessionView {
	req := models.NavigateRequest{
		Screen:     screen,
		TempleName: templeName,
	}

	resp := c.makeRequest(t, "POST", "/api/sessions/navigate", req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var view models.SessionView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("Failed to decode session view: %v", err)
	}

	return &view
}

// SignOut signs the session out
func (c *TestClient) SignOut(t *testing.T) *models.SessionView {
	resp := c.makeRequest(t, "POST", "/api/sessions/signout", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var view models.SessionView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("Failed to decode session view: %v", err)
	}

	return &view
}

// ListTemples lists temples with optional search query and category
func (c *TestClient) ListTemples(t *testing.T, query, category string) []models.Temple {
	path := "/api/temples"
	if query != "" || category != "" {
		path = fmt.Sprintf("/api/temples?query=%s&category=%s", query, category)
	}

	resp := c.makeRequest(t, "GET", path, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var listing struct {
		Temples    []models.Temple `json:"temples"`
		Categories []string        `json:"categories"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		t.Fatalf("Failed to decode temples response: %v", err)
	}

	return listing.Temples
}

// SubmitBooking submits a booking and returns the issued ticket
func (c *TestClient) SubmitBooking(t *testing.T, req models.SubmitBookingRequest) *models.Ticket {
	resp := c.makeRequest(t, "POST", "/api/bookings", req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 201, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var booking models.SubmitBookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		t.Fatalf("Failed to decode booking response: %v", err)
	}

	return booking.Ticket
}

// SubmitBookingExpectingRejection submits an invalid booking and returns the
// rejected field name
func (c *TestClient) SubmitBookingExpectingRejection(t *testing.T, req models.SubmitBookingRequest) string {
	resp := c.makeRequest(t, "POST", "/api/bookings", req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 400, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var rejection struct {
		Error string `json:"error"`
		Field string `json:"field"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rejection); err != nil {
		t.Fatalf("Failed to decode rejection response: %v", err)
	}

	return rejection.Field
}

// ListTickets lists the session user's tickets
func (c *TestClient) ListTickets(t *testing.T) []models.Ticket {
	resp := c.makeRequest(t, "GET", "/api/tickets", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var tickets []models.Ticket
	if err := json.NewDecoder(resp.Body).Decode(&tickets); err != nil {
		t.Fatalf("Failed to decode tickets response: %v", err)
	}

	return tickets
}

// GetTicket fetches one ticket by queue number
func (c *TestClient) GetTicket(t *testing.T, queueNumber string) *models.Ticket {
	resp := c.makeRequest(t, "GET", "/api/tickets/"+queueNumber, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var ticket models.Ticket
	if err := json.NewDecoder(resp.Body).Decode(&ticket); err != nil {
		t.Fatalf("Failed to decode ticket response: %v", err)
	}

	return &ticket
}

// EstimateTravel requests a travel estimate
func (c *TestClient) EstimateTravel(t *testing.T, templeName, mode string) *models.EstimateResponse {
	req := models.EstimateRequest{
		TempleName: templeName,
		Mode:       mode,
	}

	resp := c.makeRequest(t, "POST", "/api/directions/estimate", req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var estimate models.EstimateResponse
	if err := json.NewDecoder(resp.Body).Decode(&estimate); err != nil {
		t.Fatalf("Failed to decode estimate response: %v", err)
	}

	return &estimate
}

// Donate sends a donation through the simulated gateway
func (c *TestClient) Donate(t *testing.T, amount int64, name, contact string) *models.DonateResponse {
	req := models.DonateRequest{
		Amount:  amount,
		Name:    name,
		Contact: contact,
	}

	resp := c.makeRequest(t, "POST", "/api/donations", req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var donation models.DonateResponse
	if err := json.NewDecoder(resp.Body).Decode(&donation); err != nil {
		t.Fatalf("Failed to decode donation response: %v", err)
	}

	return &donation
}

// ListStreams lists the live darshan streams
func (c *TestClient) ListStreams(t *testing.T) []models.Stream {
	resp := c.makeRequest(t, "GET", "/api/streams", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var streams []models.Stream
	if err := json.NewDecoder(resp.Body).Decode(&streams); err != nil {
		t.Fatalf("Failed to decode streams response: %v", err)
	}

	return streams
}

// HealthCheck checks if the API is healthy
func (c *TestClient) HealthCheck(t *testing.T) {
	resp := c.makeRequest(t, "GET", "/health", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Health check failed with status %d", resp.StatusCode)
	}
}

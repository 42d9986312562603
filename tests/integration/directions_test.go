package integration

import (
	"testing"
)

// TestDirections_Estimates tests the deterministic travel estimates
func TestDirections_Estimates(t *testing.T) {
	client := StartTestServer(t)
	client.StartSession(t)

	LogTestStep(t, "Estimating a short car ride")
	estimate := client.EstimateTravel(t, "Somnath Temple", "Car")
	if estimate.Minutes != 4 {
		t.Fatalf("Expected 4 minutes by car to Somnath, got %d", estimate.Minutes)
	}
	if estimate.Formatted != "4 min" {
		t.Fatalf("Expected '4 min', got %q", estimate.Formatted)
	}

	LogTestStep(t, "Estimating a long train leg")
	estimate = client.EstimateTravel(t, "Palitana Temples", "Train")
	if estimate.Minutes != 158 {
		t.Fatalf("Expected 158 minutes by train to Palitana, got %d", estimate.Minutes)
	}
	if estimate.Formatted != "2 hr 38 min" {
		t.Fatalf("Expected '2 hr 38 min', got %q", estimate.Formatted)
	}
	LogTestResult(t, "Estimates match the fixed formulas")
}

// TestDirections_EstimatesAreStable tests that repeated estimates never vary
func TestDirections_EstimatesAreStable(t *testing.T) {
	client := StartTestServer(t)
	client.StartSession(t)

	first := client.EstimateTravel(t, "Akshardham", "Walk")
	for i := 0; i < 5; i++ {
		again := client.EstimateTravel(t, "Akshardham", "Walk")
		if again.Minutes != first.Minutes || again.Formatted != first.Formatted {
			t.Fatalf("Estimate changed between calls: %+v vs %+v", first, again)
		}
	}
	LogTestResult(t, "Walking estimate stable at %s", first.Formatted)
}

// TestDonation_Completes tests a donation through the simulated gateway
func TestDonation_Completes(t *testing.T) {
	client := StartTestServer(t)
	client.StartSession(t)

	LogTestStep(t, "Donating through the simulated gateway")
	donation := client.Donate(t, 501, "Ramesh Patel", "9876543210")
	if donation.Status != "Completed" {
		t.Fatalf("Expected Completed donation, got %s", donation.Status)
	}
	if donation.ReceiptID == "" {
		t.Fatal("Expected a receipt id on the completed donation")
	}
	LogTestResult(t, "Donation completed with receipt %s", donation.ReceiptID)
}

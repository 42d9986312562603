package service

import (
	"context"
	"strings"
	"time"

	"pilgrimpal/internal/external"
	"pilgrimpal/internal/logger"
	"pilgrimpal/internal/messaging"
	"pilgrimpal/internal/metrics"
	"pilgrimpal/internal/models"
)

// DonationService charges offerings through the simulated payment gateway.
// Donations are independent of darshan bookings, which are free.
type DonationService struct {
	paymentClient *external.PaymentClient
	natsClient    *messaging.NATSClient
}

func NewDonationService(paymentClient *external.PaymentClient, natsClient *messaging.NATSClient) *DonationService {
	return &DonationService{
		paymentClient: paymentClient,
		natsClient:    natsClient,
	}
}

// Donate validates the offering and runs the charge. A declined charge is
// reported to the caller and published; it never crashes the session.
func (s *DonationService) Donate(ctx context.Context, req *models.DonateRequest) (*models.DonateResponse, error) {
	if req.Amount <= 0 {
		return nil, &models.ValidationError{Field: "amount", Message: "amount must be positive"}
	}
	contact := strings.TrimSpace(req.Contact)
	if contact == "" {
		return nil, &models.ValidationError{Field: "contact", Message: "contact is required for the receipt"}
	}

	result, err := s.paymentClient.Charge(ctx, req.Amount, contact)
	if err != nil {
		metrics.Donations.WithLabelValues("failed").Inc()
		s.publish(ctx, models.EventDonationFailed, models.DonationFailedEvent{
			Amount:    req.Amount,
			Contact:   contact,
			Reason:    err.Error(),
			Timestamp: time.Now(),
		})
		return nil, err
	}

	metrics.Donations.WithLabelValues("completed").Inc()
	s.publish(ctx, models.EventDonationCompleted, models.DonationCompletedEvent{
		ReceiptID: result.ReceiptID,
		Amount:    result.Amount,
		Contact:   contact,
		Timestamp: result.ChargedAt,
	})

	return &models.DonateResponse{
		ReceiptID: result.ReceiptID,
		Amount:    result.Amount,
		Status:    "Completed",
	}, nil
}

func (s *DonationService) publish(ctx context.Context, subject string, data interface{}) {
	if err := s.natsClient.Publish(subject, data); err != nil {
		// Log error but don't fail the operation
		logger.WithContext(ctx).Error("Failed to publish donation event",
			"error", err,
			"event_type", subject)
	}
}

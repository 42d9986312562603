package service

import (
	"context"
	"testing"

	"pilgrimpal/internal/external"
	"pilgrimpal/internal/messaging"
	"pilgrimpal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDonationService(t *testing.T, failureRate float64) *DonationService {
	t.Helper()

	natsClient, err := messaging.NewNATSClient(messaging.Config{Enabled: false})
	require.NoError(t, err)

	paymentClient := external.NewPaymentClient(external.PaymentConfig{FailureRate: failureRate})
	return NewDonationService(paymentClient, natsClient)
}

func TestDonateCompletes(t *testing.T) {
	svc := newDonationService(t, 0)

	resp, err := svc.Donate(context.Background(), &models.DonateRequest{
		Amount:  501,
		Contact: "9876543210",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ReceiptID)
	assert.Equal(t, int64(501), resp.Amount)
	assert.Equal(t, "Completed", resp.Status)
}

func TestDonateDeclined(t *testing.T) {
	svc := newDonationService(t, 1)

	_, err := svc.Donate(context.Background(), &models.DonateRequest{
		Amount:  501,
		Contact: "9876543210",
	})
	assert.ErrorIs(t, err, external.ErrChargeDeclined)
}

func TestDonateValidation(t *testing.T) {
	svc := newDonationService(t, 0)

	_, err := svc.Donate(context.Background(), &models.DonateRequest{Amount: 0, Contact: "x"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Field)

	_, err = svc.Donate(context.Background(), &models.DonateRequest{Amount: 101, Contact: "   "})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "contact", verr.Field)
}

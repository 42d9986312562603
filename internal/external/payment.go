package external

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ErrChargeDeclined is reported when the simulated gateway declines a charge.
var ErrChargeDeclined = errors.New("payment gateway declined the charge")

type PaymentConfig struct {
	Latency     time.Duration
	FailureRate float64
}

// ChargeResult is the gateway receipt for a completed charge.
type ChargeResult struct {
	ReceiptID string
	Amount    int64
	ChargedAt time.Time
}

// PaymentClient simulates the donation payment gateway. Charges complete
// after a configurable latency and decline a configurable fraction of the
// time; darshan passes themselves are free and never touch this client.
type PaymentClient struct {
	cfg PaymentConfig
}

func NewPaymentClient(cfg PaymentConfig) *PaymentClient {
	return &PaymentClient{cfg: cfg}
}

// Charge processes a donation. Amount must already be validated positive
// and contact non-empty by the caller; the gateway only simulates the
// transaction outcome.
func (pc *PaymentClient) Charge(ctx context.Context, amount int64, contact string) (*ChargeResult, error) {
	if pc.cfg.Latency > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pc.cfg.Latency):
		}
	}

	if rand.Float64() < pc.cfg.FailureRate {
		return nil, ErrChargeDeclined
	}

	return &ChargeResult{
		ReceiptID: uuid.New().String(),
		Amount:    amount,
		ChargedAt: time.Now(),
	}, nil
}

package consumers

import (
	"context"
	"fmt"
	"log/slog"

	"pilgrimpal/internal/config"
	"pilgrimpal/internal/messaging"
	"pilgrimpal/internal/models"

	"github.com/nats-io/stan.go"
)

const queueGroup = "consumers"

// ConsumerService подписывается на доменные события и ведет аудит
type ConsumerService struct {
	nats     *messaging.NATSClient
	handlers *Handlers
	subs     []stan.Subscription
}

// NewConsumerService создает сервис консьюмеров
func NewConsumerService(cfg *config.Config) (*ConsumerService, error) {
	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &ConsumerService{
		nats:     natsClient,
		handlers: NewHandlers(),
	}, nil
}

// Start подписывается на все subjects
func (s *ConsumerService) Start() error {
	subscriptions := []struct {
		subject string
		handler stan.MsgHandler
	}{
		{models.EventTicketIssued, s.handlers.HandleTicketIssued},
		{models.EventSessionSignedIn, s.handlers.HandleSessionSignedIn},
		{models.EventSessionSignedOut, s.handlers.HandleSessionSignedOut},
		{models.EventDonationCompleted, s.handlers.HandleDonationCompleted},
		{models.EventDonationFailed, s.handlers.HandleDonationFailed},
	}

	for _, sub := range subscriptions {
		subscription, err := s.nats.SubscribeQueue(sub.subject, queueGroup, sub.handler)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", sub.subject, err)
		}
		s.subs = append(s.subs, subscription)
	}

	slog.Info("Consumer service started", "subjects", len(subscriptions))
	return nil
}

// Shutdown останавливает подписки и закрывает соединение
func (s *ConsumerService) Shutdown(ctx context.Context) error {
	for _, sub := range s.subs {
		if err := sub.Close(); err != nil {
			slog.Error("Failed to close subscription", "error", err)
		}
	}

	if err := s.nats.Close(); err != nil {
		return fmt.Errorf("failed to close NATS connection: %w", err)
	}

	slog.Info("Consumer service stopped")
	return nil
}

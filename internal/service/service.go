package service

import (
	"pilgrimpal/internal/catalog"
	"pilgrimpal/internal/external"
	"pilgrimpal/internal/messaging"
	"pilgrimpal/internal/repository"
)

type Services struct {
	Temples    *TempleService
	Bookings   *BookingService
	Directions *DirectionsService
	Donations  *DonationService
	Streams    *StreamService
}

func NewServices(cat *catalog.Catalog, repos *repository.Repositories, paymentClient *external.PaymentClient, natsClient *messaging.NATSClient) *Services {
	return &Services{
		Temples:    NewTempleService(cat),
		Bookings:   NewBookingService(cat, repos.Tickets, natsClient),
		Directions: NewDirectionsService(cat),
		Donations:  NewDonationService(paymentClient, natsClient),
		Streams:    NewStreamService(),
	}
}

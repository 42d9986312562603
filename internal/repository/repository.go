package repository

// Repositories holds the process-lifetime stores.
type Repositories struct {
	Tickets *TicketStore
}

func NewRepositories() *Repositories {
	return &Repositories{
		Tickets: NewTicketStore(),
	}
}

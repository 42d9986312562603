package repository

import (
	"testing"

	apperrors "pilgrimpal/internal/errors"
	"pilgrimpal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ticket(queueNumber, templeName, userID string) *models.Ticket {
	return &models.Ticket{
		QueueNumber: queueNumber,
		TempleName:  templeName,
		UserID:      userID,
		Status:      models.TicketStatusConfirmed,
	}
}

func TestAddAndGet(t *testing.T) {
	store := NewTicketStore()

	require.NoError(t, store.Add(ticket("S-100", "Somnath Temple", "user-1")))

	found := store.GetByQueueNumber("S-100")
	require.NotNil(t, found)
	assert.Equal(t, "Somnath Temple", found.TempleName)

	assert.Nil(t, store.GetByQueueNumber("S-101"))
	assert.Equal(t, 1, store.Size())
}

func TestAddRejectsDuplicateQueueNumber(t *testing.T) {
	store := NewTicketStore()

	require.NoError(t, store.Add(ticket("S-100", "Somnath Temple", "user-1")))

	err := store.Add(ticket("S-100", "Shamlaji Temple", "user-2"))
	assert.ErrorIs(t, err, apperrors.ErrDuplicateQueueNumber)

	// The losing insert must not leak into any index.
	assert.Equal(t, 1, store.Size())
	assert.Zero(t, store.Count("user-2"))
	assert.Equal(t, "Somnath Temple", store.GetByQueueNumber("S-100").TempleName)
}

func TestAllMostRecentFirst(t *testing.T) {
	store := NewTicketStore()

	require.NoError(t, store.Add(ticket("S-100", "Somnath Temple", "user-1")))
	require.NoError(t, store.Add(ticket("A-100", "Akshardham", "user-1")))
	require.NoError(t, store.Add(ticket("D-100", "Dwarkadhish Temple", "user-1")))

	all := store.All("user-1")
	require.Len(t, all, 3)
	assert.Equal(t, "D-100", all[0].QueueNumber)
	assert.Equal(t, "A-100", all[1].QueueNumber)
	assert.Equal(t, "S-100", all[2].QueueNumber)
}

func TestAllScopedToUser(t *testing.T) {
	store := NewTicketStore()

	require.NoError(t, store.Add(ticket("S-100", "Somnath Temple", "user-1")))
	require.NoError(t, store.Add(ticket("S-101", "Somnath Temple", "user-2")))

	assert.Len(t, store.All("user-1"), 1)
	assert.Len(t, store.All("user-2"), 1)
	assert.Empty(t, store.All("user-3"))
}

func TestFindByTempleName(t *testing.T) {
	store := NewTicketStore()

	require.NoError(t, store.Add(ticket("S-100", "Somnath Temple", "user-1")))
	require.NoError(t, store.Add(ticket("A-100", "Akshardham", "user-1")))
	require.NoError(t, store.Add(ticket("S-101", "Somnath Temple", "user-1")))

	matches := store.FindByTempleName("user-1", "Somnath Temple")
	require.Len(t, matches, 2)
	assert.Equal(t, "S-101", matches[0].QueueNumber)
	assert.Equal(t, "S-100", matches[1].QueueNumber)

	assert.Empty(t, store.FindByTempleName("user-2", "Somnath Temple"))
}

func TestGetByQueueNumberReturnsCopy(t *testing.T) {
	store := NewTicketStore()

	require.NoError(t, store.Add(ticket("S-100", "Somnath Temple", "user-1")))

	first := store.GetByQueueNumber("S-100")
	first.TempleName = "mutated"

	assert.Equal(t, "Somnath Temple", store.GetByQueueNumber("S-100").TempleName)
}

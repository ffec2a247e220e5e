package datastore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aleister1102/discordmsg/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *DeliveryStore {
	t.Helper()

	store, err := NewDeliveryStore(filepath.Join(t.TempDir(), "nested", "deliveries.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestDeliveryStore_RecordAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	sentAt := time.Date(2024, 3, 4, 5, 6, 7, 890, time.UTC)

	firstID, err := store.RecordDelivery(ctx, models.Delivery{
		Transport:   models.DeliveryTransportWebhook,
		Destination: "https://discord.com/api/webhooks/1/REDACTED",
		Payload:     `{"content":"one"}`,
		StatusCode:  204,
		SentAt:      sentAt,
	})
	require.NoError(t, err)

	secondID, err := store.RecordDelivery(ctx, models.Delivery{
		Transport:   models.DeliveryTransportChannel,
		Destination: "123",
		Payload:     `{"content":"two"}`,
		Error:       "HTTP 403 Forbidden",
		StatusCode:  403,
		SentAt:      sentAt.Add(time.Minute),
	})
	require.NoError(t, err)
	assert.Greater(t, secondID, firstID)

	deliveries, err := store.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, deliveries, 2)

	assert.Equal(t, secondID, deliveries[0].ID)
	assert.Equal(t, models.DeliveryTransportChannel, deliveries[0].Transport)
	assert.Equal(t, "HTTP 403 Forbidden", deliveries[0].Error)
	assert.False(t, deliveries[0].Succeeded())

	assert.Equal(t, firstID, deliveries[1].ID)
	assert.Equal(t, `{"content":"one"}`, deliveries[1].Payload)
	assert.Empty(t, deliveries[1].Error)
	assert.True(t, deliveries[1].Succeeded())
	assert.True(t, sentAt.Equal(deliveries[1].SentAt))
}

func TestDeliveryStore_ListRecentLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.RecordDelivery(ctx, models.Delivery{Transport: models.DeliveryTransportWebhook, Destination: "d", Payload: "{}", StatusCode: 200})
		require.NoError(t, err)
	}

	deliveries, err := store.ListRecent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, deliveries, 3)

	deliveries, err = store.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, deliveries, 5)
}

func TestDeliveryStore_EmptyJournal(t *testing.T) {
	deliveries, err := newTestStore(t).ListRecent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, deliveries)
}

func TestDeliveryStore_ReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deliveries.db")

	store, err := NewDeliveryStore(path, zerolog.Nop())
	require.NoError(t, err)
	_, err = store.RecordDelivery(context.Background(), models.Delivery{Transport: models.DeliveryTransportWebhook, Destination: "d", Payload: "{}"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewDeliveryStore(path, zerolog.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	deliveries, err := reopened.ListRecent(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, deliveries, 1)
}

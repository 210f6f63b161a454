package history

import (
	"testing"

	"furniture_store/internal/models"

	"github.com/stretchr/testify/require"
)

func TestRecordAndGet(t *testing.T) {
	log := NewLog()

	entry := log.Record(1, "ORD-AAAA1111", models.OrderPending, models.OrderToShip)
	require.NotZero(t, entry.ID)
	require.Equal(t, uint(1), entry.OrderID)
	require.Equal(t, "ORD-AAAA1111", entry.OrderCode)
	require.Equal(t, models.OrderPending, entry.From)
	require.Equal(t, models.OrderToShip, entry.To)
	require.False(t, entry.Timestamp.IsZero())

	got, ok := log.Get(entry.ID)
	require.True(t, ok)
	require.Equal(t, entry, got)

	_, ok = log.Get(entry.ID + 999)
	require.False(t, ok)
}

func TestEntryIDsAreUniqueAndIncreasing(t *testing.T) {
	log := NewLog()

	var lastID int64
	for i := 0; i < 100; i++ {
		entry := log.Record(uint(i), "ORD-X", models.OrderPending, models.OrderToShip)
		require.Greater(t, entry.ID, lastID)
		lastID = entry.ID
	}
	require.Equal(t, 100, log.Len())
}

func TestRemove(t *testing.T) {
	log := NewLog()

	first := log.Record(1, "ORD-A", models.OrderPending, models.OrderToShip)
	second := log.Record(2, "ORD-B", models.OrderToShip, models.OrderToReceive)

	require.True(t, log.Remove(first.ID))
	require.False(t, log.Remove(first.ID))
	require.Equal(t, 1, log.Len())

	_, ok := log.Get(first.ID)
	require.False(t, ok)
	_, ok = log.Get(second.ID)
	require.True(t, ok)
}

func TestEntriesNewestFirst(t *testing.T) {
	log := NewLog()

	a := log.Record(1, "ORD-A", models.OrderPending, models.OrderToShip)
	b := log.Record(2, "ORD-B", models.OrderPending, models.OrderCancelled)
	c := log.Record(3, "ORD-C", models.OrderToShip, models.OrderToReceive)

	entries := log.Entries()
	require.Len(t, entries, 3)
	require.Equal(t, c.ID, entries[0].ID)
	require.Equal(t, b.ID, entries[1].ID)
	require.Equal(t, a.ID, entries[2].ID)

	// Returned slice is a copy
	entries[0].OrderCode = "mutated"
	got, ok := log.Get(c.ID)
	require.True(t, ok)
	require.Equal(t, "ORD-C", got.OrderCode)
}

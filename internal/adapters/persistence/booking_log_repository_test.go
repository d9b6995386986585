package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborlane/freightflow-go/internal/adapters/persistence"
	"github.com/harborlane/freightflow-go/internal/application/common"
	"github.com/harborlane/freightflow-go/test/helpers"
)

func entryAt(ref string, createdAt time.Time) *common.BookingLogEntry {
	return &common.BookingLogEntry{
		QuoteID:     "q-" + ref,
		Origin:      "Shanghai",
		Destination: "Rotterdam",
		CarrierName: "Maersk",
		Price:       2150.50,
		Currency:    "USD",
		BookingRef:  ref,
		CreatedAt:   createdAt,
	}
}

func TestBookingLogRepository_AppendAndList(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormBookingLogRepository(db)

	entry := entryAt("BKG-1001", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	err := repo.Append(context.Background(), entry)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)

	entries, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "BKG-1001", entries[0].BookingRef)
	assert.Equal(t, 2150.50, entries[0].Price)
	assert.Equal(t, "Shanghai", entries[0].Origin)
}

func TestBookingLogRepository_ListNewestFirstWithLimit(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormBookingLogRepository(db)

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	for i, ref := range []string{"BKG-1", "BKG-2", "BKG-3"} {
		require.NoError(t, repo.Append(context.Background(), entryAt(ref, base.Add(time.Duration(i)*time.Hour))))
	}

	entries, err := repo.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "BKG-3", entries[0].BookingRef)
	assert.Equal(t, "BKG-2", entries[1].BookingRef)
}

func TestBookingLogRepository_DuplicateBookingRefRejected(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormBookingLogRepository(db)

	ts := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(context.Background(), entryAt("BKG-1001", ts)))
	err := repo.Append(context.Background(), entryAt("BKG-1001", ts))
	assert.Error(t, err)
}

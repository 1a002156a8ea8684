package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelreserve/internal/domain"
)

func TestConnect_SQLite(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err, "sqlite driver must be registered")
	require.NoError(t, Migrate(db))

	// EnsureBookingExclusion is a no-op off postgres
	require.NoError(t, EnsureBookingExclusion(db))

	hotel := domain.Hotel{Name: "Roundtrip Inn", Location: "Addis Ababa, Ethiopia", IsActive: true}
	require.NoError(t, db.Create(&hotel).Error)

	var got domain.Hotel
	require.NoError(t, db.First(&got, hotel.ID).Error)
	assert.Equal(t, "Roundtrip Inn", got.Name)
}

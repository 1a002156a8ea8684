package booking

import (
	"context"
	"time"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/repository"
)

// BookingRepository is the durable booking store.
type BookingRepository interface {
	HasOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error)
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetUserBookingsWithDetails(ctx context.Context, userID int64, limit, offset int) ([]repository.UserBookingDetails, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus, cancelledAt *time.Time) error
}

// Catalog resolves rooms and answers whether one may be sold at all,
// independent of date conflicts.
type Catalog interface {
	GetRoom(ctx context.Context, roomID int64) (*domain.Room, error)
	IsBookable(ctx context.Context, room *domain.Room) (bool, error)
}

package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/repository"
)

type Service struct {
	bookings BookingRepository
	catalog  Catalog
	locks    *roomLocks

	// now is replaceable in tests; defaults to time.Now.
	now func() time.Time
}

func NewService(bookings BookingRepository, catalog Catalog) *Service {
	return &Service{
		bookings: bookings,
		catalog:  catalog,
		locks:    newRoomLocks(),
		now:      time.Now,
	}
}

// truncateToDate drops the time-of-day part, keeping a midnight-UTC date.
func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CreateBooking admits a reservation request. Checks run in order: date
// range, past date, room bookable, no overlap. The overlap check and the
// insert hold the room's lock, so of two racing requests for intersecting
// ranges exactly one is admitted; the PostgreSQL exclusion constraint
// idx_no_overbooking backstops multi-process deployments and its violation
// maps to the same rejection.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn := truncateToDate(req.CheckIn)
	checkOut := truncateToDate(req.CheckOut)

	if !checkOut.After(checkIn) {
		return nil, ErrInvalidRange
	}

	today := truncateToDate(s.now())
	if checkIn.Before(today) {
		return nil, ErrPastDate
	}

	room, err := s.catalog.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotBookable
		}
		return nil, err
	}

	ok, err := s.catalog.IsBookable(ctx, room)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRoomNotBookable
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	total := room.PricePerNight * float64(nights)
	total = math.Round(total*100) / 100

	lock := s.locks.get(req.RoomID)
	lock.Lock()
	defer lock.Unlock()

	overlap, err := s.bookings.HasOverlap(ctx, req.RoomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrDateConflict
	}

	b := &domain.Booking{
		HotelID:    room.HotelID,
		RoomID:     room.ID,
		UserID:     req.UserID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: total,
		Status:     domain.BookingPending,
		CreatedAt:  s.now().UTC(),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		// 23P01 is what the GiST EXCLUDE constraint raises; 23505 covers a
		// plain unique index carrying the same name.
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if (pgErr.Code == "23P01" || pgErr.Code == "23505") && pgErr.ConstraintName == "idx_no_overbooking" {
				return nil, ErrDateConflict
			}
		}
		return nil, err
	}

	return b, nil
}

func (s *Service) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) GetMyBookings(ctx context.Context, userID int64, limit, offset int) ([]repository.UserBookingDetails, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.bookings.GetUserBookingsWithDetails(ctx, userID, limit, offset)
}

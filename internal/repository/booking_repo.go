package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelreserve/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	HotelID     int64      `gorm:"column:hotel_id"`
	RoomID      int64      `gorm:"column:room_id;index"`
	UserID      int64      `gorm:"column:user_id;index"`
	CheckIn     time.Time  `gorm:"column:check_in"`
	CheckOut    time.Time  `gorm:"column:check_out"`
	TotalPrice  float64    `gorm:"column:total_price"`
	Status      string     `gorm:"column:status"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
	CancelledAt *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:          m.ID,
		HotelID:     m.HotelID,
		RoomID:      m.RoomID,
		UserID:      m.UserID,
		CheckIn:     m.CheckIn,
		CheckOut:    m.CheckOut,
		TotalPrice:  m.TotalPrice,
		Status:      domain.BookingStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CancelledAt: m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:          b.ID,
		HotelID:     b.HotelID,
		RoomID:      b.RoomID,
		UserID:      b.UserID,
		CheckIn:     b.CheckIn,
		CheckOut:    b.CheckOut,
		TotalPrice:  b.TotalPrice,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		CancelledAt: b.CancelledAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// HasOverlap reports whether any pending or completed booking on the room
// intersects [checkIn, checkOut). Half-open rule: [a,b) and [c,d) overlap
// iff a < d AND c < b, so back-to-back stays do not collide.
func (r *BookingRepository) HasOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings
WHERE room_id = ?
  AND status IN ('pending', 'completed')
  AND check_in < ?
  AND ? < check_out
`
	tx := r.db.WithContext(ctx).Raw(q, roomID, checkOut, checkIn).Scan(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// UserBookingDetails is the denormalized row for booking listings.
type UserBookingDetails struct {
	ID         int64     `gorm:"column:id"`
	Status     string    `gorm:"column:status"`
	CheckIn    time.Time `gorm:"column:check_in"`
	CheckOut   time.Time `gorm:"column:check_out"`
	TotalPrice float64   `gorm:"column:total_price"`
	RoomID     int64     `gorm:"column:room_id"`
	RoomName   string    `gorm:"column:room_name"`
	HotelID    int64     `gorm:"column:hotel_id"`
	HotelName  string    `gorm:"column:hotel_name"`
}

func (r *BookingRepository) GetUserBookingsWithDetails(ctx context.Context, userID int64, limit, offset int) ([]UserBookingDetails, error) {
	var rows []UserBookingDetails
	q := `
SELECT b.id, b.status, b.check_in, b.check_out, b.total_price,
       b.room_id, r.name AS room_name,
       b.hotel_id, h.name AS hotel_name
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN hotels h ON h.id = b.hotel_id
WHERE b.user_id = ?
ORDER BY b.created_at DESC, b.id DESC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, userID, limit, offset).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus, cancelledAt *time.Time) error {
	updates := map[string]any{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}
	if cancelledAt != nil {
		updates["cancelled_at"] = *cancelledAt
	}
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(updates).Error
}

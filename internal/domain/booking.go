package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking holds a half-open [CheckIn, CheckOut) stay. CheckIn and CheckOut
// are calendar dates stored at midnight UTC; checkout day does not block a
// new check-in on the same day.
type Booking struct {
	ID          int64         `json:"id"`
	HotelID     int64         `json:"hotel_id"`
	RoomID      int64         `json:"room_id" validate:"required"`
	UserID      int64         `json:"user_id" validate:"required"`
	CheckIn     time.Time     `json:"check_in" validate:"required"`
	CheckOut    time.Time     `json:"check_out" validate:"required"`
	TotalPrice  float64       `json:"total_price" validate:"gte=0"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

// Nights returns the whole-day length of the stay.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

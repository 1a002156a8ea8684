package booking

import "time"

// CreateBookingRequest is the admission input after HTTP parsing; dates
// carry no meaningful time-of-day.
type CreateBookingRequest struct {
	RoomID   int64
	UserID   int64
	CheckIn  time.Time
	CheckOut time.Time
}

// createBookingPayload is the wire form; dates are "2006-01-02".
type createBookingPayload struct {
	RoomID   int64  `json:"room_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

type BookingResponse struct {
	ID         int64   `json:"id"`
	HotelID    int64   `json:"hotel_id"`
	RoomID     int64   `json:"room_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
}

type BookingDetails struct {
	ID         int64   `json:"id"`
	Status     string  `json:"status"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	TotalPrice float64 `json:"total_price"`

	RoomID   int64  `json:"room_id"`
	RoomName string `json:"room_name"`

	HotelID   int64  `json:"hotel_id"`
	HotelName string `json:"hotel_name"`
}

package booking

import "errors"

var (
	// ErrInvalidRange rejects check_in >= check_out.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrPastDate rejects check-in dates before today.
	ErrPastDate = errors.New("check-in date is in the past")
	// ErrRoomNotBookable: unknown room, withdrawn room, or inactive hotel.
	// Reported to clients as ROOM_UNAVAILABLE, same as ErrDateConflict.
	ErrRoomNotBookable = errors.New("room is not bookable")
	// ErrDateConflict: an overlapping pending or completed booking exists.
	ErrDateConflict = errors.New("room already booked for these dates")

	ErrNotFound          = errors.New("booking not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
)

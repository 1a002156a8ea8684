package booking

import (
	"context"
	"time"

	"hotelreserve/internal/domain"
)

// Transition moves a booking to target. Allowed moves:
//
//	pending   -> completed | cancelled
//	completed -> cancelled            (refund)
//	completed -> completed            (idempotent no-op)
//
// cancelled is terminal and nothing returns to pending. A cancelled booking
// stops blocking its room's dates because the overlap scan skips cancelled
// rows.
func (s *Service) Transition(ctx context.Context, bookingID int64, target domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.Status == domain.BookingCompleted && target == domain.BookingCompleted {
		return b, nil
	}

	if !transitionAllowed(b.Status, target) {
		return nil, ErrInvalidTransition
	}

	var cancelledAt *time.Time
	if target == domain.BookingCancelled {
		now := s.now().UTC()
		cancelledAt = &now
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, target, cancelledAt); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, bookingID)
}

func transitionAllowed(from, to domain.BookingStatus) bool {
	switch from {
	case domain.BookingPending:
		return to == domain.BookingCompleted || to == domain.BookingCancelled
	case domain.BookingCompleted:
		return to == domain.BookingCancelled
	default:
		return false
	}
}

// CancelBooking is the user-facing cancellation: only the booking's owner
// may cancel, and only via the regular transition rules.
func (s *Service) CancelBooking(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	b, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return s.Transition(ctx, bookingID, domain.BookingCancelled)
}

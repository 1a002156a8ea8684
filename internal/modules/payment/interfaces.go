package payment

import (
	"context"

	"hotelreserve/internal/domain"
)

type paymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
}

type bookingReader interface {
	GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error)
}

// bookingTransitioner advances the booking lifecycle when a payment
// outcome arrives.
type bookingTransitioner interface {
	Transition(ctx context.Context, bookingID int64, target domain.BookingStatus) (*domain.Booking, error)
}

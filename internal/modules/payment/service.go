package payment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotelreserve/internal/domain"
)

type Service struct {
	payments  paymentRepo
	bookings  bookingReader
	lifecycle bookingTransitioner
	loggerf   func(format string, args ...interface{})
}

func NewService(payments paymentRepo, bookings bookingReader, lifecycle bookingTransitioner, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		payments:  payments,
		bookings:  bookings,
		lifecycle: lifecycle,
		loggerf:   loggerf,
	}
}

// Initiate opens a pending payment for a pending booking. The amount is
// snapshotted from the booking's total; the transaction ID is what the
// external gateway will echo back on its webhook.
func (s *Service) Initiate(ctx context.Context, userID int64, req InitiatePaymentRequest) (*domain.Payment, error) {
	gatewayStr := req.Gateway
	if gatewayStr == "" {
		gatewayStr = string(domain.GatewayTelebirr)
	}
	gateway, err := domain.ParsePaymentGateway(gatewayStr)
	if err != nil {
		return nil, ErrInvalidGateway
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, ErrBookingGone
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingPending {
		return nil, ErrNotPayable
	}

	p := &domain.Payment{
		UserID:        userID,
		BookingID:     b.ID,
		Amount:        b.TotalPrice,
		Gateway:       gateway,
		Status:        domain.PaymentPending,
		TransactionID: uuid.NewString(),
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Verify records a payment outcome reported by the paying user's client.
func (s *Service) Verify(ctx context.Context, userID int64, req VerifyPaymentRequest) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, req.PaymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrForbidden
	}

	status := domain.PaymentFailed
	if req.Success {
		status = domain.PaymentSuccess
	}
	return s.applyOutcome(ctx, p, status)
}

// HandleNotification processes the gateway webhook. Replays of an already
// recorded outcome are no-ops.
func (s *Service) HandleNotification(ctx context.Context, n WebhookNotification) (*domain.Payment, error) {
	p, err := s.payments.GetByTransactionID(ctx, n.TransactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	status := domain.PaymentStatus(n.Status)
	return s.applyOutcome(ctx, p, status)
}

func (s *Service) applyOutcome(ctx context.Context, p *domain.Payment, status domain.PaymentStatus) (*domain.Payment, error) {
	if p.Status == status {
		s.loggerf("level=info msg=idempotent payment outcome payment_id=%d status=%s", p.ID, status)
		return p, nil
	}

	if err := s.payments.UpdateStatus(ctx, p.ID, status); err != nil {
		return nil, err
	}
	p.Status = status

	target := domain.BookingCancelled
	if status == domain.PaymentSuccess {
		target = domain.BookingCompleted
	}
	if _, err := s.lifecycle.Transition(ctx, p.BookingID, target); err != nil {
		// The payment outcome is recorded either way; a rejected transition
		// here means the booking already moved (replayed or manually
		// cancelled) and is only worth a log line.
		s.loggerf("level=error msg=failed to transition booking after payment booking_id=%d target=%s err=%v", p.BookingID, target, err)
	}

	return p, nil
}

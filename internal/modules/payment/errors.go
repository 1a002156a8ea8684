package payment

import "errors"

var (
	ErrNotFound       = errors.New("payment not found")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidGateway = errors.New("unknown payment gateway")
	ErrBookingGone    = errors.New("booking not found")
	ErrNotPayable     = errors.New("booking is not awaiting payment")
)

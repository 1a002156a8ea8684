package domain

import (
	"errors"
	"time"
)

type PaymentGateway string

const (
	GatewayPaypal   PaymentGateway = "paypal"
	GatewayStripe   PaymentGateway = "stripe"
	GatewayCbeBirr  PaymentGateway = "cbebirr"
	GatewayTelebirr PaymentGateway = "telebirr"
)

func ParsePaymentGateway(s string) (PaymentGateway, error) {
	switch PaymentGateway(s) {
	case GatewayPaypal, GatewayStripe, GatewayCbeBirr, GatewayTelebirr:
		return PaymentGateway(s), nil
	}
	return "", errors.New("unknown payment gateway")
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

type Payment struct {
	ID            int64          `json:"id"`
	UserID        int64          `json:"user_id"`
	BookingID     int64          `json:"booking_id"`
	Amount        float64        `json:"amount"`
	Gateway       PaymentGateway `json:"gateway"`
	Status        PaymentStatus  `json:"status"`
	TransactionID string         `json:"transaction_id" gorm:"uniqueIndex"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

package payment

type InitiatePaymentRequest struct {
	BookingID int64  `json:"booking_id" binding:"required"`
	Gateway   string `json:"gateway"`
}

type InitiatePaymentResponse struct {
	PaymentID     int64   `json:"payment_id"`
	BookingID     int64   `json:"booking_id"`
	Amount        float64 `json:"amount"`
	Gateway       string  `json:"gateway"`
	Status        string  `json:"status"`
	TransactionID string  `json:"transaction_id"`
}

type VerifyPaymentRequest struct {
	PaymentID int64 `json:"payment_id" binding:"required"`
	Success   bool  `json:"success"`
}

// WebhookNotification is the gateway callback body: which transaction,
// and whether it succeeded.
type WebhookNotification struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	Status        string `json:"status" binding:"required,oneof=success failed"`
}

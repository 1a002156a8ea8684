package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelreserve/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	UserID        int64     `gorm:"column:user_id;index"`
	BookingID     int64     `gorm:"column:booking_id;index"`
	Amount        float64   `gorm:"column:amount"`
	Gateway       string    `gorm:"column:gateway"`
	Status        string    `gorm:"column:status"`
	TransactionID string    `gorm:"column:transaction_id;uniqueIndex"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) *domain.Payment {
	return &domain.Payment{
		ID:            m.ID,
		UserID:        m.UserID,
		BookingID:     m.BookingID,
		Amount:        m.Amount,
		Gateway:       domain.PaymentGateway(m.Gateway),
		Status:        domain.PaymentStatus(m.Status),
		TransactionID: m.TransactionID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	m := paymentModel{
		UserID:        p.UserID,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		Gateway:       string(p.Gateway),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPayment(m)
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var m paymentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPayment(m), nil
}

func (r *PaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	var m paymentModel
	tx := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPayment(m), nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	return r.db.WithContext(ctx).
		Model(&paymentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		}).Error
}

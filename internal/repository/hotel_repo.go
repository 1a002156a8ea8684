package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelreserve/internal/domain"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

type hotelModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Location    string    `gorm:"column:location"`
	Description string    `gorm:"column:description"`
	HasPool     bool      `gorm:"column:has_pool"`
	HasGym      bool      `gorm:"column:has_gym"`
	Price       float64   `gorm:"column:price"`
	IsActive    bool      `gorm:"column:is_active"`
	ImageURL    string    `gorm:"column:image_url"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (hotelModel) TableName() string { return "hotels" }

func toDomainHotel(m hotelModel) *domain.Hotel {
	return &domain.Hotel{
		ID:          m.ID,
		Name:        m.Name,
		Location:    m.Location,
		Description: m.Description,
		HasPool:     m.HasPool,
		HasGym:      m.HasGym,
		Price:       m.Price,
		IsActive:    m.IsActive,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toHotelModel(h *domain.Hotel) hotelModel {
	return hotelModel{
		ID:          h.ID,
		Name:        h.Name,
		Location:    h.Location,
		Description: h.Description,
		HasPool:     h.HasPool,
		HasGym:      h.HasGym,
		Price:       h.Price,
		IsActive:    h.IsActive,
		ImageURL:    h.ImageURL,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

// HotelFilter narrows List results. Nil fields are not applied.
type HotelFilter struct {
	Location *string
	HasPool  *bool
	HasGym   *bool
	MinPrice *float64
	MaxPrice *float64
	Search   *string
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	m := toHotelModel(h)
	m.ID = 0
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*h = *toDomainHotel(m)
	return nil
}

func (r *HotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	m := toHotelModel(h)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var m hotelModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainHotel(m), nil
}

func (r *HotelRepository) List(ctx context.Context, f HotelFilter) ([]domain.Hotel, error) {
	q := r.db.WithContext(ctx).Model(&hotelModel{}).Where("is_active = ?", true)

	if f.Location != nil {
		q = q.Where("location = ?", *f.Location)
	}
	if f.HasPool != nil {
		q = q.Where("has_pool = ?", *f.HasPool)
	}
	if f.HasGym != nil {
		q = q.Where("has_gym = ?", *f.HasGym)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Search != nil {
		like := "%" + *f.Search + "%"
		q = q.Where("name LIKE ? OR location LIKE ?", like, like)
	}

	var rows []hotelModel
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Hotel, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainHotel(m))
	}
	return out, nil
}

package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelreserve/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	HotelID       int64     `gorm:"column:hotel_id;index"`
	Name          string    `gorm:"column:name"`
	RoomType      string    `gorm:"column:room_type"`
	PricePerNight float64   `gorm:"column:price_per_night"`
	Capacity      int       `gorm:"column:capacity"`
	IsAvailable   bool      `gorm:"column:is_available"`
	Description   string    `gorm:"column:description"`
	ImageURL      string    `gorm:"column:image_url"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:            m.ID,
		HotelID:       m.HotelID,
		Name:          m.Name,
		RoomType:      domain.RoomType(m.RoomType),
		PricePerNight: m.PricePerNight,
		Capacity:      m.Capacity,
		IsAvailable:   m.IsAvailable,
		Description:   m.Description,
		ImageURL:      m.ImageURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toRoomModel(rm *domain.Room) roomModel {
	return roomModel{
		ID:            rm.ID,
		HotelID:       rm.HotelID,
		Name:          rm.Name,
		RoomType:      string(rm.RoomType),
		PricePerNight: rm.PricePerNight,
		Capacity:      rm.Capacity,
		IsAvailable:   rm.IsAvailable,
		Description:   rm.Description,
		ImageURL:      rm.ImageURL,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, rm *domain.Room) error {
	m := toRoomModel(rm)
	m.ID = 0
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rm = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *domain.Room) error {
	m := toRoomModel(rm)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) GetByHotelID(ctx context.Context, hotelID int64, onlyAvailable bool) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Where("hotel_id = ?", hotelID)
	if onlyAvailable {
		q = q.Where("is_available = ?", true)
	}

	var rows []roomModel
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

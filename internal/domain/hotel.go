package domain

import "time"

type Hotel struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Location    string    `json:"location" validate:"required"` // "Country, City"
	Description string    `json:"description,omitempty"`
	HasPool     bool      `json:"has_pool"`
	HasGym      bool      `json:"has_gym"`
	Price       float64   `json:"price" validate:"gte=0"`
	IsActive    bool      `json:"is_active"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
}

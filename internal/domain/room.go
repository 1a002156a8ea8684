package domain

import (
	"errors"
	"time"
)

type RoomType string

const (
	RoomSingle RoomType = "SINGLE"
	RoomDouble RoomType = "DOUBLE"
	RoomSuite  RoomType = "SUITE"
)

func ParseRoomType(s string) (RoomType, error) {
	switch RoomType(s) {
	case RoomSingle, RoomDouble, RoomSuite:
		return RoomType(s), nil
	}
	return "", errors.New("unknown room type")
}

type Room struct {
	ID            int64     `json:"id"`
	HotelID       int64     `json:"hotel_id"`
	Name          string    `json:"name" validate:"required"`
	RoomType      RoomType  `json:"room_type" validate:"required"`
	PricePerNight float64   `json:"price_per_night" validate:"required,gte=0"`
	Capacity      int       `json:"capacity" validate:"required,gt=0"`
	IsAvailable   bool      `json:"is_available"`
	Description   string    `json:"description,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

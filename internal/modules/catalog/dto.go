package catalog

type CreateHotelRequest struct {
	Name        string  `json:"name" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Description string  `json:"description"`
	HasPool     bool    `json:"has_pool"`
	HasGym      bool    `json:"has_gym"`
	Price       float64 `json:"price" binding:"gte=0"`
	ImageURL    string  `json:"image_url"`
}

type UpdateHotelRequest struct {
	Name        *string  `json:"name,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Description *string  `json:"description,omitempty"`
	HasPool     *bool    `json:"has_pool,omitempty"`
	HasGym      *bool    `json:"has_gym,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

type CreateRoomRequest struct {
	Name          string  `json:"name" binding:"required"`
	RoomType      string  `json:"room_type" binding:"required"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gte=0"`
	Capacity      int     `json:"capacity" binding:"required,gt=0"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"image_url"`
}

type UpdateRoomRequest struct {
	Name          *string  `json:"name,omitempty"`
	RoomType      *string  `json:"room_type,omitempty"`
	PricePerNight *float64 `json:"price_per_night,omitempty"`
	Capacity      *int     `json:"capacity,omitempty"`
	IsAvailable   *bool    `json:"is_available,omitempty"`
	Description   *string  `json:"description,omitempty"`
	ImageURL      *string  `json:"image_url,omitempty"`
}

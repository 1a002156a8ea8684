package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/repository"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidRoomType = errors.New("invalid room type")
)

type Service struct {
	hotelRepo *repository.HotelRepository
	roomRepo  *repository.RoomRepository
}

func NewService(hotelRepo *repository.HotelRepository, roomRepo *repository.RoomRepository) *Service {
	return &Service{hotelRepo: hotelRepo, roomRepo: roomRepo}
}

/* ---------- HOTELS ---------- */

func (s *Service) ListHotels(ctx context.Context, f repository.HotelFilter) ([]domain.Hotel, error) {
	return s.hotelRepo.List(ctx, f)
}

func (s *Service) GetHotel(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rooms, err := s.roomRepo.GetByHotelID(ctx, hotelID, false)
	if err != nil {
		return nil, err
	}
	hotel.Rooms = rooms
	return hotel, nil
}

func (s *Service) CreateHotel(ctx context.Context, req CreateHotelRequest) (*domain.Hotel, error) {
	hotel := &domain.Hotel{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		HasPool:     req.HasPool,
		HasGym:      req.HasGym,
		Price:       req.Price,
		IsActive:    true,
		ImageURL:    req.ImageURL,
	}
	if err := s.hotelRepo.Create(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *Service) UpdateHotel(ctx context.Context, hotelID int64, req UpdateHotelRequest) (*domain.Hotel, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		hotel.Name = *req.Name
	}
	if req.Location != nil {
		hotel.Location = *req.Location
	}
	if req.Description != nil {
		hotel.Description = *req.Description
	}
	if req.HasPool != nil {
		hotel.HasPool = *req.HasPool
	}
	if req.HasGym != nil {
		hotel.HasGym = *req.HasGym
	}
	if req.Price != nil && *req.Price >= 0 {
		hotel.Price = *req.Price
	}
	if req.IsActive != nil {
		hotel.IsActive = *req.IsActive
	}
	if req.ImageURL != nil {
		hotel.ImageURL = *req.ImageURL
	}

	if err := s.hotelRepo.Update(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

/* ---------- ROOMS ---------- */

func (s *Service) ListAvailableRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	if _, err := s.hotelRepo.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.roomRepo.GetByHotelID(ctx, hotelID, true)
}

func (s *Service) CreateRoom(ctx context.Context, hotelID int64, req CreateRoomRequest) (*domain.Room, error) {
	if _, err := s.hotelRepo.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rt, err := domain.ParseRoomType(req.RoomType)
	if err != nil {
		return nil, ErrInvalidRoomType
	}

	room := &domain.Room{
		HotelID:       hotelID,
		Name:          req.Name,
		RoomType:      rt,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
		IsAvailable:   true,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, roomID int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.RoomType != nil {
		rt, err := domain.ParseRoomType(*req.RoomType)
		if err != nil {
			return nil, ErrInvalidRoomType
		}
		room.RoomType = rt
	}
	if req.PricePerNight != nil && *req.PricePerNight >= 0 {
		room.PricePerNight = *req.PricePerNight
	}
	if req.Capacity != nil && *req.Capacity > 0 {
		room.Capacity = *req.Capacity
	}
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.ImageURL != nil {
		room.ImageURL = *req.ImageURL
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

/* ---------- BOOKING COLLABORATOR ---------- */

// GetRoom resolves a room for the admission engine.
func (s *Service) GetRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	return s.roomRepo.GetByID(ctx, roomID)
}

// IsBookable reports whether the room may be sold at all: not withdrawn,
// and belonging to an active hotel. Date conflicts are not its concern.
func (s *Service) IsBookable(ctx context.Context, room *domain.Room) (bool, error) {
	if room == nil || !room.IsAvailable {
		return false, nil
	}

	hotel, err := s.hotelRepo.GetByID(ctx, room.HotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return hotel.IsActive, nil
}

package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/repository"
)

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrNotFound       = errors.New("not_found")
)

type RoomGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type Service struct {
	reviews *repository.ReviewRepository
	rooms   RoomGate
}

func NewService(reviews *repository.ReviewRepository, rooms RoomGate) *Service {
	return &Service{reviews: reviews, rooms: rooms}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if userID <= 0 || req.RoomID <= 0 || req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	if _, err := s.rooms.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rv := &domain.Review{
		UserID:  userID,
		RoomID:  req.RoomID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) GetByRoom(ctx context.Context, roomID int64, limit, offset int) ([]domain.Review, error) {
	if roomID <= 0 {
		return nil, ErrInvalidRequest
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.reviews.GetByRoomID(ctx, roomID, limit, offset)
}

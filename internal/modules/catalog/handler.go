package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelreserve/internal/pkg/response"
	"hotelreserve/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/hotels", h.ListHotels)
	rg.GET("/hotels/:id", h.GetHotel)
	rg.GET("/hotels/:id/rooms", h.ListRooms)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/hotels", h.CreateHotel)
	rg.PUT("/hotels/:id", h.UpdateHotel)
	rg.POST("/hotels/:id/rooms", h.CreateRoom)
	rg.PUT("/rooms/:id", h.UpdateRoom)
}

// ListHotels supports ?location=&has_pool=&has_gym=&min_price=&max_price=&search=
func (h *Handler) ListHotels(c *gin.Context) {
	var f repository.HotelFilter

	if v := c.Query("location"); v != "" {
		f.Location = &v
	}
	if v := c.Query("has_pool"); v != "" {
		b := v == "true" || v == "1"
		f.HasPool = &b
	}
	if v := c.Query("has_gym"); v != "" {
		b := v == "true" || v == "1"
		f.HasGym = &b
	}
	if v := c.Query("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "min_price must be a number")
			return
		}
		f.MinPrice = &p
	}
	if v := c.Query("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "max_price must be a number")
			return
		}
		f.MaxPrice = &p
	}
	if v := c.Query("search"); v != "" {
		f.Search = &v
	}

	hotels, err := h.service.ListHotels(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list hotels")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) GetHotel(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hotel ID")
		return
	}

	hotel, err := h.service.GetHotel(c.Request.Context(), hotelID)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load hotel")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotel": hotel})
}

func (h *Handler) ListRooms(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hotel ID")
		return
	}

	rooms, err := h.service.ListAvailableRooms(c.Request.Context(), hotelID)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rooms")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) CreateHotel(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	hotel, err := h.service.CreateHotel(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create hotel")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"hotel": hotel})
}

func (h *Handler) UpdateHotel(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hotel ID")
		return
	}

	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	hotel, err := h.service.UpdateHotel(c.Request.Context(), hotelID, req)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update hotel")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotel": hotel})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hotel ID")
		return
	}

	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), hotelID, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
		case ErrInvalidRoomType:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "room_type must be SINGLE, DOUBLE or SUITE")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create room")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room ID")
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), roomID, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case ErrInvalidRoomType:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "room_type must be SINGLE, DOUBLE or SUITE")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update room")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

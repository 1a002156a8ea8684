package review

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelreserve/internal/pkg/response"
)

type CreateReviewRequest struct {
	RoomID  int64  `json:"room_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms/:id/reviews", h.ListByRoom)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrInvalidRequest:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review data")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create review")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": rv})
}

func (h *Handler) ListByRoom(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room ID")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := h.service.GetByRoom(c.Request.Context(), roomID, limit, offset)
	if err != nil {
		if err == ErrInvalidRequest {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room ID")
		} else {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reviews")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

package booking

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/pkg/response"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("/me", h.GetMyBookings)
		bookings.POST("/:id/cancel", h.CancelBooking)
	}
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	checkIn, err := time.Parse(dateLayout, payload.CheckIn)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse(dateLayout, payload.CheckOut)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be YYYY-MM-DD")
		return
	}

	req := CreateBookingRequest{
		RoomID:   payload.RoomID,
		UserID:   c.GetInt64("user_id"),
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidRange:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be after check_in")
		case ErrPastDate:
			response.Error(c, http.StatusBadRequest, "PAST_DATE", "check_in date is in the past")
		case ErrRoomNotBookable, ErrDateConflict:
			response.Error(c, http.StatusConflict, "ROOM_UNAVAILABLE", "Room is not available for the selected dates")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"booking": toBookingResponse(b),
	})
}

func (h *Handler) GetMyBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rows, err := h.service.GetMyBookings(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}

	out := make([]BookingDetails, 0, len(rows))
	for _, r := range rows {
		out = append(out, BookingDetails{
			ID:         r.ID,
			Status:     r.Status,
			CheckIn:    r.CheckIn.Format(dateLayout),
			CheckOut:   r.CheckOut.Format(dateLayout),
			TotalPrice: r.TotalPrice,
			RoomID:     r.RoomID,
			RoomName:   r.RoomName,
			HotelID:    r.HotelID,
			HotelName:  r.HotelName,
		})
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": out})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), bookingID, c.GetInt64("user_id"))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only cancel your own bookings")
		case ErrInvalidTransition:
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking cannot be cancelled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": toBookingResponse(b)})
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		HotelID:    b.HotelID,
		RoomID:     b.RoomID,
		CheckIn:    b.CheckIn.Format(dateLayout),
		CheckOut:   b.CheckOut.Format(dateLayout),
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
	}
}

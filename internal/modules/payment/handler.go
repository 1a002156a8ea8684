package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.POST("/initiate", h.Initiate)
		payments.POST("/verify", h.Verify)
	}
}

// RegisterWebhookRoutes registers the unauthenticated gateway callback.
func (h *Handler) RegisterWebhookRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/webhook", h.Webhook)
}

func (h *Handler) Initiate(c *gin.Context) {
	var req InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Initiate(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrInvalidGateway:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown payment gateway")
		case ErrBookingGone:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only pay for your own bookings")
		case ErrNotPayable:
			response.Error(c, http.StatusConflict, "NOT_PAYABLE", "Booking is not awaiting payment")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to initiate payment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"payment": toInitiateResponse(p),
	})
}

func (h *Handler) Verify(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Verify(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only verify your own payments")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to verify payment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": p.Status})
}

func (h *Handler) Webhook(c *gin.Context) {
	var n WebhookNotification
	if err := c.ShouldBindJSON(&n); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid notification body")
		return
	}

	p, err := h.service.HandleNotification(c.Request.Context(), n)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Transaction not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process notification")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": p.Status})
}

func toInitiateResponse(p *domain.Payment) InitiatePaymentResponse {
	return InitiatePaymentResponse{
		PaymentID:     p.ID,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		Gateway:       string(p.Gateway),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
	}
}

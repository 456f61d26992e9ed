package handler

import (
	"net/http"

	"github.com/vivekmohanraj/EventSphere/internal/domain"
	"github.com/vivekmohanraj/EventSphere/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) InitiatePayment(c *ginext.Context) {
	var req dto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.payments.Initiate(c.Request.Context(), callerID(c), callerRole(c), domain.InitiatePaymentInput{
		EventID:      c.Param("id"),
		Amount:       req.Amount,
		VenueID:      req.VenueID,
		BookingHours: req.BookingHours,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *Handler) ConfirmPayment(c *ginext.Context) {
	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.payments.Confirm(c.Request.Context(), c.Param("id"), domain.ConfirmPaymentInput{
		PaymentRef: req.RazorpayPaymentID,
		OrderRef:   req.RazorpayOrderID,
		Signature:  req.RazorpaySignature,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *Handler) FailPayment(c *ginext.Context) {
	if err := h.payments.Fail(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "failed"})
}

func (h *Handler) ListPayments(c *ginext.Context) {
	payments, err := h.payments.List(c.Request.Context(), callerRole(c), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.ToPaymentResponse(p))
	}

	c.JSON(http.StatusOK, out)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Khaled152/tutor-kashier-integration/internal/domain/checkout"
	"github.com/Khaled152/tutor-kashier-integration/internal/domain/gateway"
)

type CheckoutHandler struct {
	service *checkout.Service
}

func NewCheckoutHandler(s *checkout.Service) CheckoutHandler {
	return CheckoutHandler{service: s}
}

// Pay builds a signed redirect for the order payload and sends the buyer to
// the Kashier checkout page.
func (h *CheckoutHandler) Pay(c *gin.Context) {
	var order map[string]any
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order payload"})
		return
	}

	redirect, err := h.service.Pay(c.Request.Context(), c.Param("gateway"), order)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, redirect.URL)
}

// Renew builds a redirect from host-prepared renewal data for the order.
func (h *CheckoutHandler) Renew(c *gin.Context) {
	redirect, err := h.service.Renew(c.Request.Context(), c.Param("gateway"), c.Param("order_id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, redirect.URL)
}

func (h *CheckoutHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gateway.ErrUnknownGateway):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, gateway.ErrNotConfigured):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
	case errors.Is(err, checkout.ErrRenewalUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}

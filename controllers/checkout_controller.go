package controllers

import (
	"errors"

	"github.com/Sarvesh-GanesanW/enterprises/models"
	"github.com/Sarvesh-GanesanW/enterprises/services"
	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// @Summary Initiate payment
// @Description Initiate a UPI payment for the current cart total and return the deep link to encode as a QR code
// @Tags Checkout
// @Accept json
// @Produce json
// @Param body body models.InitiatePaymentRequest true "Payment method and UPI id"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /checkout/initiate [post]
func (ctrl *CheckoutController) Initiate(c *gin.Context) {
	var req models.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	link, total, err := ctrl.checkout.Initiate(c.Request.Context(), req.PaymentMethod, req.UpiID)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedMethod) {
			c.JSON(400, gin.H{"success": false, "message": "Payment method not supported yet"})
			return
		}
		if errors.Is(err, services.ErrPaymentRejected) {
			c.JSON(502, gin.H{"success": false, "message": "Failed to initiate payment. Please try again."})
			return
		}
		c.JSON(502, gin.H{"success": false, "message": "An error occurred. Please try again."})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Payment initiated", "data": models.CheckoutResponse{
		Status:     ctrl.checkout.Status(),
		Amount:     total.StringFixed(2),
		PaymentURL: link,
	}})
}

// @Summary Verify payment
// @Description Verify the pending payment after the user confirms the scan
// @Tags Checkout
// @Accept json
// @Produce json
// @Param body body models.VerifyPaymentRequest true "Payment method"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /checkout/verify [post]
func (ctrl *CheckoutController) Verify(c *gin.Context) {
	var req models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	amount, err := ctrl.checkout.Verify(c.Request.Context(), req.PaymentMethod)
	if err != nil {
		if errors.Is(err, services.ErrNoPendingPayment) {
			c.JSON(409, gin.H{"success": false, "message": "No payment awaiting verification"})
			return
		}
		if errors.Is(err, services.ErrPaymentRejected) {
			c.JSON(502, gin.H{"success": false, "message": "Payment verification failed. Please try again or contact support."})
			return
		}
		c.JSON(502, gin.H{"success": false, "message": "An error occurred. Please try again or contact support."})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Payment confirmed! Thank you for your purchase.", "data": models.CheckoutResponse{
		Status: ctrl.checkout.Status(),
		Amount: amount.StringFixed(2),
	}})
}

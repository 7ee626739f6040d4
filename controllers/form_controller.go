package controllers

import (
	"github.com/Sarvesh-GanesanW/enterprises/models"
	"github.com/Sarvesh-GanesanW/enterprises/services"
	"github.com/gin-gonic/gin"
)

type FormController struct {
	forms *services.FormService
}

func NewFormController(forms *services.FormService) *FormController {
	return &FormController{forms: forms}
}

// @Summary Submit contact form
// @Description Forward a contact enquiry to the backend
// @Tags Forms
// @Accept json
// @Produce json
// @Param body body models.ContactRequest true "Contact form"
// @Success 201 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /contact [post]
func (ctrl *FormController) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := ctrl.forms.SubmitContact(c.Request.Context(), req); err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to submit contact form"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Contact form submitted successfully"})
}

// @Summary Submit order form
// @Description Forward a wholesale order request to the backend. Requirements text is optional when a sample is requested.
// @Tags Forms
// @Accept json
// @Produce json
// @Param body body models.OrderRequest true "Order form"
// @Success 201 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /order [post]
func (ctrl *FormController) SubmitOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	if !req.NeedSample && req.Requirements == "" {
		c.JSON(400, gin.H{"success": false, "message": "Requirements are required unless a sample is requested"})
		return
	}

	if err := ctrl.forms.SubmitOrder(c.Request.Context(), req); err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to submit order"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Order submitted successfully"})
}

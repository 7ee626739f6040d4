package controllers

import (
	"context"
	"errors"
	"strconv"

	"github.com/Sarvesh-GanesanW/enterprises/models"
	"github.com/Sarvesh-GanesanW/enterprises/services"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

func (ctrl *CartController) cartResponse() (models.CartResponse, error) {
	total, err := ctrl.cart.Total()
	if err != nil {
		return models.CartResponse{}, err
	}
	return models.CartResponse{
		Items:   ctrl.cart.Entries(),
		Grouped: ctrl.cart.Grouped(),
		Total:   total.StringFixed(2),
	}, nil
}

// @Summary Get cart
// @Description Fetch the cart from the backend and return raw entries, grouped rows and the total
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	if err := ctrl.cart.Refresh(c.Request.Context()); err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to fetch cart"})
		return
	}

	data, err := ctrl.cartResponse()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": data})
}

// @Summary Add to cart
// @Description Add a tea to the cart; quantity is a delta and defaults to 1
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.AddToCartRequest true "Item"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	entry := models.CartEntry{
		Title:           req.Title,
		Description:     req.Description,
		RetailPrice:     req.RetailPrice,
		WholesalePrice:  req.WholesalePrice,
		Image:           req.Image,
		LongDescription: req.LongDescription,
		Quantity:        req.Quantity,
	}

	if err := ctrl.cart.Add(c.Request.Context(), entry); err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to add to cart"})
		return
	}

	data, err := ctrl.cartResponse()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Item added", "data": data})
}

// @Summary Remove from cart
// @Description Remove a cart line by its backend-assigned id
// @Tags Cart
// @Produce json
// @Param id path int true "Cart entry ID"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /cart/{id} [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid cart entry id"})
		return
	}

	if err := ctrl.cart.Remove(c.Request.Context(), id); err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to remove from cart"})
		return
	}

	data, respErr := ctrl.cartResponse()
	if respErr != nil {
		c.JSON(500, gin.H{"success": false, "message": respErr.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Item removed", "data": data})
}

// @Summary Set cart line quantity
// @Description Set an absolute quantity for a cart line
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Cart entry ID"
// @Param body body models.UpdateQuantityRequest true "Quantity"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /cart/{id} [put]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid cart entry id"})
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := ctrl.cart.SetQuantity(c.Request.Context(), id, req.Quantity); err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to update quantity"})
		return
	}

	data, respErr := ctrl.cartResponse()
	if respErr != nil {
		c.JSON(500, gin.H{"success": false, "message": respErr.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Quantity updated", "data": data})
}

// @Summary Increment grouped row
// @Description Add one unit to the grouped row with the given title
// @Tags Cart
// @Produce json
// @Param title path string true "Grouped row title"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /cart/grouped/{title}/increment [post]
func (ctrl *CartController) Increment(c *gin.Context) {
	ctrl.adjustGrouped(c, ctrl.cart.Increment, "Quantity incremented")
}

// @Summary Decrement grouped row
// @Description Remove one unit from the grouped row with the given title; removes the line at quantity one
// @Tags Cart
// @Produce json
// @Param title path string true "Grouped row title"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /cart/grouped/{title}/decrement [post]
func (ctrl *CartController) Decrement(c *gin.Context) {
	ctrl.adjustGrouped(c, ctrl.cart.Decrement, "Quantity decremented")
}

func (ctrl *CartController) adjustGrouped(c *gin.Context, op func(ctx context.Context, title string) error, message string) {
	title := c.Param("title")

	if err := ctrl.cart.Refresh(c.Request.Context()); err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to fetch cart"})
		return
	}

	if err := op(c.Request.Context(), title); err != nil {
		if errors.Is(err, services.ErrNotInCart) {
			c.JSON(404, gin.H{"success": false, "message": "No such item in cart"})
			return
		}
		c.JSON(502, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	data, err := ctrl.cartResponse()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": message, "data": data})
}

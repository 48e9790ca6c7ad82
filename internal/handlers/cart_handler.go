package handlers

import (
	"errors"
	"net/http"

	"restaurant_menu/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartHandler struct {
	cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := c.Param("session_id")

	view, err := h.cartService.GetCart(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req struct {
		ProductID  string              `json:"product_id" binding:"required"`
		Quantity   int                 `json:"quantity" binding:"required"`
		Selections map[string][]string `json:"selections"`
		Locale     string              `json:"locale"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.cartService.AddToCart(sessionID, req.ProductID, req.Quantity, req.Selections, req.Locale)
	if err != nil {
		var missing *services.MissingOptionsError
		switch {
		case errors.As(err, &missing):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":          "Required options not selected",
				"missing_groups": missing.Groups,
			})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	sessionID := c.Param("session_id")
	itemID := c.Param("item_id")

	var req struct {
		Quantity int `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.cartService.UpdateQuantity(sessionID, itemID, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quantity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := c.Param("session_id")
	itemID := c.Param("item_id")

	if err := h.cartService.RemoveItem(sessionID, itemID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := c.Param("session_id")

	if err := h.cartService.ClearCart(sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (h *CartHandler) SetCommission(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req struct {
		Percentage float64 `json:"percentage"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.cartService.SetCommission(sessionID, req.Percentage); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set commission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *CartHandler) GetTotal(c *gin.Context) {
	sessionID := c.Param("session_id")

	view, err := h.cartService.GetCart(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subtotal":          view.Subtotal,
		"commission_amount": view.CommissionAmount,
		"total_price":       view.TotalPrice,
	})
}

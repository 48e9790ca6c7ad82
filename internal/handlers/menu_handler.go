package handlers

import (
	"errors"
	"net/http"

	"restaurant_menu/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuHandler struct {
	menuService services.MenuService
}

func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

func localeFromQuery(c *gin.Context) string {
	locale := c.Query("locale")
	switch locale {
	case "en", "kz", "ru":
		return locale
	}
	return "en"
}

func (h *MenuHandler) GetMenu(c *gin.Context) {
	slug := c.Param("slug")

	menu, err := h.menuService.GetMenu(slug, localeFromQuery(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}

	c.JSON(http.StatusOK, menu)
}

func (h *MenuHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.menuService.GetProduct(id, localeFromQuery(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

package handlers

import (
	"errors"
	"net/http"

	"restaurant_menu/internal/models"
	"restaurant_menu/internal/repository"
	"restaurant_menu/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminHandler struct {
	restaurantRepo repository.RestaurantRepository
	categoryRepo   repository.CategoryRepository
	productRepo    repository.ProductRepository
	userService    services.UserService
	menuService    services.MenuService
}

func NewAdminHandler(
	restaurantRepo repository.RestaurantRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	userService services.UserService,
	menuService services.MenuService,
) *AdminHandler {
	return &AdminHandler{
		restaurantRepo: restaurantRepo,
		categoryRepo:   categoryRepo,
		productRepo:    productRepo,
		userService:    userService,
		menuService:    menuService,
	}
}

// Restaurants

func (h *AdminHandler) CreateRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := c.ShouldBindJSON(&restaurant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if restaurant.Slug == "" || restaurant.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug and name are required"})
		return
	}

	if err := h.restaurantRepo.Create(&restaurant); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

// UpdateSettings covers what a restaurant admin can change from the settings
// screen: commission, feedback chat, theme and colors.
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		CommissionPercentage *float64 `json:"commission_percentage"`
		TelegramChatID       *string  `json:"telegram_chat_id"`
		Theme                *string  `json:"theme"`
		PrimaryColor         *string  `json:"primary_color"`
		BackgroundColor      *string  `json:"background_color"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	fields := map[string]interface{}{}
	if req.CommissionPercentage != nil {
		if *req.CommissionPercentage < 0 || *req.CommissionPercentage > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Commission must be between 0 and 100"})
			return
		}
		fields["commission_percentage"] = *req.CommissionPercentage
	}
	if req.TelegramChatID != nil {
		fields["telegram_chat_id"] = *req.TelegramChatID
	}
	if req.Theme != nil {
		fields["theme"] = *req.Theme
	}
	if req.PrimaryColor != nil {
		fields["primary_color"] = *req.PrimaryColor
	}
	if req.BackgroundColor != nil {
		fields["background_color"] = *req.BackgroundColor
	}

	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := h.restaurantRepo.UpdateSettings(id, fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	h.invalidateMenuByID(id)
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// Categories

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.categoryRepo.Create(&category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	h.invalidateMenuByID(category.RestaurantID)
	c.JSON(http.StatusCreated, category)
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	category, err := h.categoryRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	if err := c.ShouldBindJSON(category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	category.ID = id

	if err := h.categoryRepo.Update(category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	h.invalidateMenuByID(category.RestaurantID)
	c.JSON(http.StatusOK, category)
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	category, err := h.categoryRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	if err := h.categoryRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	h.invalidateMenuByID(category.RestaurantID)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Kitchens

func (h *AdminHandler) CreateKitchen(c *gin.Context) {
	var kitchen models.Kitchen
	if err := c.ShouldBindJSON(&kitchen); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.categoryRepo.CreateKitchen(&kitchen); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create kitchen"})
		return
	}

	h.invalidateMenuByID(kitchen.RestaurantID)
	c.JSON(http.StatusCreated, kitchen)
}

func (h *AdminHandler) ListKitchens(c *gin.Context) {
	restaurantID := c.Query("restaurant_id")
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing restaurant ID"})
		return
	}

	kitchens, err := h.categoryRepo.GetKitchensByRestaurant(restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load kitchens"})
		return
	}

	c.JSON(http.StatusOK, kitchens)
}

func (h *AdminHandler) DeleteKitchen(c *gin.Context) {
	id := c.Param("id")

	if err := h.categoryRepo.DeleteKitchen(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete kitchen"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Products

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if product.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	if err := h.productRepo.Create(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	h.invalidateMenuByID(product.RestaurantID)
	c.JSON(http.StatusCreated, product)
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}

	if err := c.ShouldBindJSON(product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	product.ID = id

	if product.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	if err := h.productRepo.Update(product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	h.invalidateMenuByID(product.RestaurantID)
	c.JSON(http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.productRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if err := h.productRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	h.invalidateMenuByID(product.RestaurantID)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// SetRecommendations replaces the recommended products pitched on a
// product's detail page.
func (h *AdminHandler) SetRecommendations(c *gin.Context) {
	id := c.Param("id")

	product, err := h.productRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req struct {
		RecommendedProductIDs []string `json:"recommended_product_ids"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.productRepo.ReplaceRecommendations(id, req.RecommendedProductIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recommendations"})
		return
	}

	h.invalidateMenuByID(product.RestaurantID)
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// Users

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req struct {
		Email        string `json:"email" binding:"required"`
		Password     string `json:"password" binding:"required"`
		Role         string `json:"role"`
		RestaurantID string `json:"restaurant_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user := &models.User{
		Email:        req.Email,
		Role:         req.Role,
		RestaurantID: req.RestaurantID,
		IsActive:     true,
	}
	if user.Role == "" {
		user.Role = string(models.RestaurantAdmin)
	}

	if err := h.userService.CreateUser(user, req.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) UpdateUserPassword(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.userService.UpdatePassword(id, req.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	if err := h.userService.DeleteUser(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *AdminHandler) invalidateMenuByID(restaurantID string) {
	if restaurantID == "" {
		return
	}
	restaurant, err := h.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return
	}
	h.menuService.InvalidateMenu(restaurant.Slug)
}

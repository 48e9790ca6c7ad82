package services

import (
	"fmt"
	"log"
	"time"

	"restaurant_menu/internal/options"
	"restaurant_menu/internal/repository"
)

// MenuCache is the read cache in front of the menu queries.
type MenuCache interface {
	CacheMenu(key string, payload interface{}, ttl time.Duration) error
	GetCachedMenu(key string, dest interface{}) (bool, error)
	InvalidateMenu(key string) error
}

type RestaurantView struct {
	ID                   string  `json:"id"`
	Slug                 string  `json:"slug"`
	Name                 string  `json:"name"`
	LogoURL              string  `json:"logo_url,omitempty"`
	Theme                string  `json:"theme"`
	PrimaryColor         string  `json:"primary_color,omitempty"`
	BackgroundColor      string  `json:"background_color,omitempty"`
	CommissionPercentage float64 `json:"commission_percentage"`
}

type MenuProductView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"image_url,omitempty"`
	IsAvailable bool   `json:"is_available"`
	HasOptions  bool   `json:"has_options"`
}

type MenuCategoryView struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Products []MenuProductView `json:"products"`
}

type MenuView struct {
	Restaurant RestaurantView     `json:"restaurant"`
	Categories []MenuCategoryView `json:"categories"`
}

type ProductDetailView struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Description     string                `json:"description,omitempty"`
	Price           int64                 `json:"price"`
	ImageURL        string                `json:"image_url,omitempty"`
	IsAvailable     bool                  `json:"is_available"`
	Groups          []options.OptionGroup `json:"option_groups"`
	Recommendations []MenuProductView     `json:"recommendations"`
}

type MenuService interface {
	GetMenu(slug, locale string) (*MenuView, error)
	GetProduct(id, locale string) (*ProductDetailView, error)
	InvalidateMenu(slug string)
}

type menuService struct {
	restaurantRepo repository.RestaurantRepository
	categoryRepo   repository.CategoryRepository
	productRepo    repository.ProductRepository
	cache          MenuCache
	cacheTTL       time.Duration
}

func NewMenuService(
	restaurantRepo repository.RestaurantRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	cache MenuCache,
	cacheTTL time.Duration,
) MenuService {
	return &menuService{
		restaurantRepo: restaurantRepo,
		categoryRepo:   categoryRepo,
		productRepo:    productRepo,
		cache:          cache,
		cacheTTL:       cacheTTL,
	}
}

// GetMenu builds the public menu for one restaurant: its branding plus the
// available products grouped by category, localized. Results are cached per
// slug and locale.
func (s *menuService) GetMenu(slug, locale string) (*MenuView, error) {
	cacheKey := slug + ":" + locale

	if s.cache != nil {
		var cached MenuView
		if found, err := s.cache.GetCachedMenu(cacheKey, &cached); err != nil {
			log.Printf("Warning: menu cache read failed: %v", err)
		} else if found {
			return &cached, nil
		}
	}

	restaurant, err := s.restaurantRepo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurant: %w", err)
	}

	categories, err := s.categoryRepo.GetByRestaurant(restaurant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	products, err := s.productRepo.GetByRestaurant(restaurant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	menu := &MenuView{
		Categories: []MenuCategoryView{},
		Restaurant: RestaurantView{
			ID:                   restaurant.ID,
			Slug:                 restaurant.Slug,
			Name:                 restaurant.Name,
			LogoURL:              restaurant.LogoURL,
			Theme:                restaurant.Theme,
			PrimaryColor:         restaurant.PrimaryColor,
			BackgroundColor:      restaurant.BackgroundColor,
			CommissionPercentage: restaurant.CommissionPercentage,
		},
	}

	for _, category := range categories {
		view := MenuCategoryView{
			ID:       category.ID,
			Name:     category.LocalizedName(locale),
			Products: []MenuProductView{},
		}
		for _, product := range products {
			if product.CategoryID != category.ID || !product.IsAvailable {
				continue
			}
			groups := options.Normalize(product.Options, options.LegacyLabel(locale))
			view.Products = append(view.Products, MenuProductView{
				ID:          product.ID,
				Name:        product.LocalizedName(locale),
				Description: product.LocalizedDescription(locale),
				Price:       product.Price,
				ImageURL:    product.ImageURL,
				IsAvailable: product.IsAvailable,
				HasOptions:  len(groups) > 0,
			})
		}
		menu.Categories = append(menu.Categories, view)
	}

	if s.cache != nil {
		if err := s.cache.CacheMenu(cacheKey, menu, s.cacheTTL); err != nil {
			log.Printf("Warning: menu cache write failed: %v", err)
		}
	}

	return menu, nil
}

// GetProduct is the detail read used by the selection screen; it returns the
// normalized option groups so the UI never sees the raw stored shape.
func (s *menuService) GetProduct(id, locale string) (*ProductDetailView, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	groups := options.Normalize(product.Options, options.LegacyLabel(locale))

	recommended, err := s.productRepo.GetRecommendations(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load recommendations: %w", err)
	}

	recommendations := []MenuProductView{}
	for _, rec := range recommended {
		if !rec.IsAvailable {
			continue
		}
		recommendations = append(recommendations, MenuProductView{
			ID:          rec.ID,
			Name:        rec.LocalizedName(locale),
			Description: rec.LocalizedDescription(locale),
			Price:       rec.Price,
			ImageURL:    rec.ImageURL,
			IsAvailable: rec.IsAvailable,
			HasOptions:  len(options.Normalize(rec.Options, options.LegacyLabel(locale))) > 0,
		})
	}

	return &ProductDetailView{
		ID:              product.ID,
		Name:            product.LocalizedName(locale),
		Description:     product.LocalizedDescription(locale),
		Price:           product.Price,
		ImageURL:        product.ImageURL,
		IsAvailable:     product.IsAvailable,
		Groups:          groups,
		Recommendations: recommendations,
	}, nil
}

// InvalidateMenu drops every locale variant of a restaurant's cached menu.
func (s *menuService) InvalidateMenu(slug string) {
	if s.cache == nil {
		return
	}
	for _, locale := range []string{"en", "kz", "ru"} {
		if err := s.cache.InvalidateMenu(slug + ":" + locale); err != nil {
			log.Printf("Warning: menu cache invalidation failed: %v", err)
		}
	}
}

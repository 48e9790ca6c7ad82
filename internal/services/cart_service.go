package services

import (
	"fmt"
	"strings"

	"restaurant_menu/internal/cart"
	"restaurant_menu/internal/options"
	"restaurant_menu/internal/repository"
)

// CartPersistence hands out a durable persister bound to one session key.
type CartPersistence interface {
	CartPersister(sessionID string) cart.Persister
	DeleteCart(sessionID string) error
}

// MissingOptionsError reports required option groups the diner has not
// picked from. Handlers turn it into a 400 naming the groups.
type MissingOptionsError struct {
	Groups []string
}

func (e *MissingOptionsError) Error() string {
	return fmt.Sprintf("required options not selected: %s", strings.Join(e.Groups, ", "))
}

// CartView is the read model handed to the UI layer.
type CartView struct {
	Items                []cart.Item `json:"items"`
	Subtotal             int64       `json:"subtotal"`
	CommissionPercentage float64     `json:"commission_percentage"`
	CommissionAmount     int64       `json:"commission_amount"`
	TotalPrice           int64       `json:"total_price"`
}

type CartService interface {
	GetCart(sessionID string) (*CartView, error)
	AddToCart(sessionID, productID string, quantity int, selections map[string][]string, locale string) (*cart.Item, error)
	UpdateQuantity(sessionID, itemID string, quantity int) error
	RemoveItem(sessionID, itemID string) error
	ClearCart(sessionID string) error
	SetCommission(sessionID string, percentage float64) error
}

type cartService struct {
	productRepo repository.ProductRepository
	persistence CartPersistence
}

func NewCartService(productRepo repository.ProductRepository, persistence CartPersistence) CartService {
	return &cartService{productRepo: productRepo, persistence: persistence}
}

// store hydrates the session's cart from durable storage. Each request gets
// its own store; mutations write back through the persister.
func (s *cartService) store(sessionID string) *cart.Store {
	return cart.NewStore(s.persistence.CartPersister(sessionID))
}

func (s *cartService) GetCart(sessionID string) (*CartView, error) {
	store := s.store(sessionID)
	return &CartView{
		Items:                store.Items(),
		Subtotal:             store.Subtotal(),
		CommissionPercentage: store.CommissionPercentage(),
		CommissionAmount:     store.CommissionAmount(),
		TotalPrice:           store.TotalPrice(),
	}, nil
}

// AddToCart resolves the diner's selection against the product's option
// groups, validates required groups, and appends a line item. selections is
// keyed by group name with the chosen choice names in pick order.
func (s *cartService) AddToCart(sessionID, productID string, quantity int, selections map[string][]string, locale string) (*cart.Item, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	legacyLabel := options.LegacyLabel(locale)
	groups := options.Normalize(product.Options, legacyLabel)

	selection, err := resolveSelection(groups, selections)
	if err != nil {
		return nil, err
	}

	if result := options.Validate(groups, selection); !result.Valid() {
		return nil, &MissingOptionsError{Groups: result.MissingGroups}
	}

	selected := options.Flatten(groups, selection, legacyLabel)

	store := s.store(sessionID)
	item := store.AddItem(*product, quantity, selected)
	return &item, nil
}

func (s *cartService) UpdateQuantity(sessionID, itemID string, quantity int) error {
	s.store(sessionID).UpdateQuantity(itemID, quantity)
	return nil
}

func (s *cartService) RemoveItem(sessionID, itemID string) error {
	s.store(sessionID).RemoveItem(itemID)
	return nil
}

func (s *cartService) ClearCart(sessionID string) error {
	s.store(sessionID).ClearCart()
	return nil
}

func (s *cartService) SetCommission(sessionID string, percentage float64) error {
	s.store(sessionID).SetCommission(percentage)
	return nil
}

// resolveSelection maps chosen choice names back to the product's own
// choices so prices always come from stored data, never from the request.
func resolveSelection(groups []options.OptionGroup, selections map[string][]string) (options.Selection, error) {
	selection := options.Selection{}
	byGroup := make(map[string]options.OptionGroup, len(groups))
	for _, g := range groups {
		byGroup[g.Name] = g
	}

	for groupName, choiceNames := range selections {
		group, ok := byGroup[groupName]
		if !ok {
			return nil, fmt.Errorf("unknown option group %q", groupName)
		}
		for _, choiceName := range choiceNames {
			choice, ok := findChoice(group, choiceName)
			if !ok {
				return nil, fmt.Errorf("unknown choice %q in group %q", choiceName, groupName)
			}
			selection[groupName] = append(selection[groupName], choice)
		}
	}
	return selection, nil
}

func findChoice(group options.OptionGroup, name string) (options.Choice, bool) {
	for _, c := range group.Choices {
		if c.Name == name {
			return c, true
		}
	}
	return options.Choice{}, false
}

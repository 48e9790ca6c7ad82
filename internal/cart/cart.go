package cart

import (
	"log"

	"restaurant_menu/internal/models"
	"restaurant_menu/internal/options"

	"github.com/google/uuid"
)

// Item is one line entry in a cart. Product is a snapshot taken at add time,
// not a live reference; SelectedOptions are fixed at add time too. Only
// Quantity changes after creation.
type Item struct {
	ID              string                   `json:"id"`
	ProductID       string                   `json:"product_id"`
	Product         models.Product           `json:"product"`
	Quantity        int                      `json:"quantity"`
	SelectedOptions []options.SelectedOption `json:"selected_options"`
}

// State is the full serializable cart: line items plus the commission rate
// of the restaurant being browsed.
type State struct {
	Items                []Item  `json:"items"`
	CommissionPercentage float64 `json:"commission_percentage"`
}

// Persister is the durable store a cart writes through to. Load reports
// false when nothing has been persisted yet.
type Persister interface {
	Save(state State) error
	Load() (State, bool, error)
}

// Store is the cart state machine. It is constructed explicitly per session
// and passed to its consumers; there is no package-level cart. A nil
// persister gives a memory-only cart. Persistence is write-through but never
// authoritative: a failed write is logged and the in-memory state stands.
type Store struct {
	state   State
	persist Persister
}

func NewStore(p Persister) *Store {
	s := &Store{
		state:   State{Items: []Item{}},
		persist: p,
	}
	if p != nil {
		restored, ok, err := p.Load()
		if err != nil {
			log.Printf("Warning: failed to restore cart: %v", err)
		} else if ok {
			if restored.Items == nil {
				restored.Items = []Item{}
			}
			s.state = restored
		}
	}
	return s
}

// AddItem appends a new line item with a fresh id. Identical configurations
// are never merged; adding the same product twice yields two items. The
// caller guarantees quantity >= 1.
func (s *Store) AddItem(product models.Product, quantity int, opts []options.SelectedOption) Item {
	selected := make([]options.SelectedOption, len(opts))
	copy(selected, opts)

	item := Item{
		ID:              uuid.NewString(),
		ProductID:       product.ID,
		Product:         product,
		Quantity:        quantity,
		SelectedOptions: selected,
	}
	s.state.Items = append(s.state.Items, item)
	s.save()
	return item
}

// RemoveItem deletes the item with the given id. Unknown ids are a no-op.
func (s *Store) RemoveItem(itemID string) {
	items := s.state.Items[:0]
	for _, it := range s.state.Items {
		if it.ID != itemID {
			items = append(items, it)
		}
	}
	s.state.Items = items
	s.save()
}

// UpdateQuantity replaces an item's quantity in place. A quantity of zero or
// less removes the item entirely rather than keeping a zero-quantity line.
// Unknown ids are a no-op.
func (s *Store) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(itemID)
		return
	}
	for i := range s.state.Items {
		if s.state.Items[i].ID == itemID {
			s.state.Items[i].Quantity = quantity
			break
		}
	}
	s.save()
}

// ClearCart empties the line items. The commission rate belongs to the
// restaurant, not the order, and is kept.
func (s *Store) ClearCart() {
	s.state.Items = []Item{}
	s.save()
}

// SetCommission overwrites the commission rate. The hosting page calls this
// every time it refetches the active restaurant, so redundant calls with the
// same value are expected.
func (s *Store) SetCommission(percentage float64) {
	s.state.CommissionPercentage = percentage
	s.save()
}

func (s *Store) Items() []Item {
	items := make([]Item, len(s.state.Items))
	copy(items, s.state.Items)
	return items
}

func (s *Store) State() State {
	return State{
		Items:                s.Items(),
		CommissionPercentage: s.state.CommissionPercentage,
	}
}

func (s *Store) CommissionPercentage() float64 {
	return s.state.CommissionPercentage
}

func (s *Store) Subtotal() int64 {
	return Subtotal(s.state)
}

func (s *Store) CommissionAmount() int64 {
	return CommissionAmount(s.state)
}

func (s *Store) TotalPrice() int64 {
	return TotalPrice(s.state)
}

func (s *Store) save() {
	if s.persist == nil {
		return
	}
	if err := s.persist.Save(s.state); err != nil {
		log.Printf("Warning: failed to persist cart: %v", err)
	}
}

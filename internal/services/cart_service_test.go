package services

import (
	"testing"

	"restaurant_menu/internal/cart"
	"restaurant_menu/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- Mock product repo ---

type mockProductRepo struct {
	products        map[string]models.Product
	recommendations map[string][]string
}

func (m *mockProductRepo) Create(product *models.Product) error { return nil }
func (m *mockProductRepo) Update(product *models.Product) error { return nil }
func (m *mockProductRepo) Delete(id string) error               { return nil }
func (m *mockProductRepo) GetByRestaurant(restaurantID string) ([]models.Product, error) {
	var products []models.Product
	for _, p := range m.products {
		if p.RestaurantID == restaurantID {
			products = append(products, p)
		}
	}
	return products, nil
}
func (m *mockProductRepo) GetByCategory(categoryID string) ([]models.Product, error) {
	return nil, nil
}
func (m *mockProductRepo) GetRecommendations(productID string) ([]models.Product, error) {
	var recommended []models.Product
	for _, id := range m.recommendations[productID] {
		if p, ok := m.products[id]; ok {
			recommended = append(recommended, p)
		}
	}
	return recommended, nil
}
func (m *mockProductRepo) ReplaceRecommendations(productID string, recommendedIDs []string) error {
	if m.recommendations == nil {
		m.recommendations = make(map[string][]string)
	}
	m.recommendations[productID] = recommendedIDs
	return nil
}

func (m *mockProductRepo) GetByID(id string) (*models.Product, error) {
	if p, ok := m.products[id]; ok {
		return &p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// --- In-memory cart persistence ---

type memoryPersistence struct {
	carts map[string]cart.State
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{carts: make(map[string]cart.State)}
}

func (m *memoryPersistence) CartPersister(sessionID string) cart.Persister {
	return &memoryPersister{store: m, sessionID: sessionID}
}

func (m *memoryPersistence) DeleteCart(sessionID string) error {
	delete(m.carts, sessionID)
	return nil
}

type memoryPersister struct {
	store     *memoryPersistence
	sessionID string
}

func (p *memoryPersister) Save(state cart.State) error {
	p.store.carts[p.sessionID] = state
	return nil
}

func (p *memoryPersister) Load() (cart.State, bool, error) {
	state, ok := p.store.carts[p.sessionID]
	return state, ok, nil
}

// --- Helpers ---

func burgerWithOptions() models.Product {
	return models.Product{
		ID:     "burger",
		NameEn: "Burger",
		Price:  1500,
		Options: []byte(`[
			{"name":"Size","type":"single","choices":[{"name":"S","price":0},{"name":"M","price":500},{"name":"L","price":1000}]},
			{"name":"Add-ons","type":"multiple","choices":[{"name":"Cheese","price":300}]}
		]`),
		IsAvailable: true,
	}
}

func newTestCartService() (CartService, *memoryPersistence) {
	repo := &mockProductRepo{products: map[string]models.Product{
		"burger": burgerWithOptions(),
		"coffee": {ID: "coffee", NameEn: "Coffee", Price: 900, IsAvailable: true},
	}}
	persistence := newMemoryPersistence()
	return NewCartService(repo, persistence), persistence
}

// --- Tests ---

func TestAddToCartResolvesAndPrices(t *testing.T) {
	svc, _ := newTestCartService()

	item, err := svc.AddToCart("sess", "burger", 2, map[string][]string{
		"Size":    {"M"},
		"Add-ons": {"Cheese"},
	}, "en")
	require.NoError(t, err)

	assert.Equal(t, "burger", item.ProductID)
	assert.Equal(t, int64(1500), item.Product.Price)
	assert.Equal(t, 2, item.Quantity)
	require.Len(t, item.SelectedOptions, 2)
	// Group order on the product, not map order.
	assert.Equal(t, "Size: M", item.SelectedOptions[0].Label())
	assert.Equal(t, "Add-ons: Cheese", item.SelectedOptions[1].Label())

	view, err := svc.GetCart("sess")
	require.NoError(t, err)
	assert.Equal(t, int64(4600), view.Subtotal)
}

func TestAddToCartMissingRequiredGroup(t *testing.T) {
	svc, _ := newTestCartService()

	_, err := svc.AddToCart("sess", "burger", 1, nil, "en")

	var missing *MissingOptionsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"Size"}, missing.Groups)

	// Nothing was added.
	view, err := svc.GetCart("sess")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestAddToCartProductWithoutOptions(t *testing.T) {
	svc, _ := newTestCartService()

	item, err := svc.AddToCart("sess", "coffee", 1, nil, "en")
	require.NoError(t, err)
	assert.Empty(t, item.SelectedOptions)
}

func TestAddToCartRejectsBadInput(t *testing.T) {
	svc, _ := newTestCartService()

	_, err := svc.AddToCart("sess", "burger", 0, map[string][]string{"Size": {"M"}}, "en")
	assert.Error(t, err)

	_, err = svc.AddToCart("sess", "missing", 1, nil, "en")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = svc.AddToCart("sess", "burger", 1, map[string][]string{"Size": {"XXL"}}, "en")
	assert.Error(t, err)

	_, err = svc.AddToCart("sess", "burger", 1, map[string][]string{"Nope": {"M"}}, "en")
	assert.Error(t, err)
}

func TestCartSurvivesAcrossServiceCalls(t *testing.T) {
	svc, persistence := newTestCartService()

	item, err := svc.AddToCart("sess", "burger", 2, map[string][]string{"Size": {"M"}}, "en")
	require.NoError(t, err)
	require.NoError(t, svc.SetCommission("sess", 10))

	// Fresh service over the same persistence simulates a reload.
	repo := &mockProductRepo{products: map[string]models.Product{}}
	reloaded := NewCartService(repo, persistence)

	view, err := reloaded.GetCart("sess")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, item.ID, view.Items[0].ID)
	assert.Equal(t, int64(4000), view.Subtotal)
	assert.Equal(t, int64(400), view.CommissionAmount)
	assert.Equal(t, int64(4400), view.TotalPrice)
}

func TestCartMutationFlow(t *testing.T) {
	svc, _ := newTestCartService()

	item, err := svc.AddToCart("sess", "coffee", 3, nil, "en")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateQuantity("sess", item.ID, 1))
	view, _ := svc.GetCart("sess")
	assert.Equal(t, 1, view.Items[0].Quantity)

	require.NoError(t, svc.UpdateQuantity("sess", item.ID, -5))
	view, _ = svc.GetCart("sess")
	assert.Empty(t, view.Items)
}

func TestClearCartKeepsCommissionRate(t *testing.T) {
	svc, _ := newTestCartService()

	_, err := svc.AddToCart("sess", "coffee", 1, nil, "en")
	require.NoError(t, err)
	require.NoError(t, svc.SetCommission("sess", 15))
	require.NoError(t, svc.ClearCart("sess"))

	view, err := svc.GetCart("sess")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, float64(15), view.CommissionPercentage)
	assert.Equal(t, int64(0), view.TotalPrice)
}

func TestSessionsAreIsolated(t *testing.T) {
	svc, _ := newTestCartService()

	_, err := svc.AddToCart("alice", "coffee", 1, nil, "en")
	require.NoError(t, err)

	view, err := svc.GetCart("bob")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hstore/hstore-api/app/models"
	"github.com/hstore/hstore-api/app/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"
)

type stubResolver struct{ sessionID string }

func (s *stubResolver) Resolve(http.ResponseWriter, *http.Request) (string, error) {
	return s.sessionID, nil
}

// stubCartService returns canned results per operation.
type stubCartService struct {
	cart *models.Cart
	err  error
}

func (s *stubCartService) GetCart(context.Context, string) (*models.Cart, error) {
	return s.cart, s.err
}
func (s *stubCartService) AddItem(context.Context, string, string, int) (*models.Cart, error) {
	return s.cart, s.err
}
func (s *stubCartService) UpdateItem(context.Context, string, string, int) (*models.Cart, error) {
	return s.cart, s.err
}
func (s *stubCartService) RemoveItem(context.Context, string, string) (*models.Cart, error) {
	return s.cart, s.err
}

func newStubHandler(cart *models.Cart, err error) *CartHandler {
	return NewCartHandler(
		&stubCartService{cart: cart, err: err},
		&stubResolver{sessionID: "session-1"},
		render.New(),
		"http://localhost:8000",
	)
}

func emptyCart() *models.Cart {
	return &models.Cart{
		ID:        "cart-1",
		SessionID: "session-1",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func do(h http.HandlerFunc, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/cart", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestGetCartRendersView(t *testing.T) {
	product := &models.Product{ID: "p1", Name: "Pipe Wrench", Company: "Acme", Price: decimal.RequireFromString("12.50")}
	cart := emptyCart()
	cart.CartItems = []models.CartItem{{ID: "item-1", CartID: cart.ID, ProductID: product.ID, Product: product, Qty: 2}}

	h := newStubHandler(cart, nil)
	rec := do(h.GetCart, http.MethodGet, "")

	require.Equal(t, http.StatusOK, rec.Code)

	var view struct {
		ID         string `json:"id"`
		SessionID  string `json:"session_id"`
		ItemCount  int    `json:"item_count"`
		TotalPrice string `json:"total_price"`
		Items      []struct {
			ID        string `json:"id"`
			Quantity  int    `json:"quantity"`
			LineTotal string `json:"line_total"`
			Product   struct {
				ID    string `json:"id"`
				Price string `json:"price"`
			} `json:"product"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "cart-1", view.ID)
	assert.Equal(t, "session-1", view.SessionID)
	assert.Equal(t, 2, view.ItemCount)
	assert.Equal(t, "25.00", view.TotalPrice)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "item-1", view.Items[0].ID)
	assert.Equal(t, "25.00", view.Items[0].LineTotal)
	assert.Equal(t, "p1", view.Items[0].Product.ID)
}

func TestAddItemValidation(t *testing.T) {
	h := newStubHandler(emptyCart(), nil)

	cases := []struct {
		name string
		body string
	}{
		{"missing product_id", `{"quantity": 1}`},
		{"zero quantity", `{"product_id": "p1", "quantity": 0}`},
		{"negative quantity", `{"product_id": "p1", "quantity": -1}`},
		{"non-integer quantity", `{"product_id": "p1", "quantity": "abc"}`},
		{"fractional quantity", `{"product_id": "p1", "quantity": 1.5}`},
		{"malformed body", `{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(h.AddItem, http.MethodPost, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "validation_error")
		})
	}
}

func TestAddItemProductNotFound(t *testing.T) {
	h := newStubHandler(nil, services.ErrProductNotFound)
	rec := do(h.AddItem, http.MethodPost, `{"product_id": "missing"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestUpdateItemValidation(t *testing.T) {
	h := newStubHandler(emptyCart(), nil)

	cases := []struct {
		name string
		body string
	}{
		{"missing item_id", `{"quantity": 1}`},
		{"missing quantity", `{"item_id": "item-1"}`},
		{"negative quantity", `{"item_id": "item-1", "quantity": -1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(h.UpdateItem, http.MethodPut, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "validation_error")
		})
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	h := newStubHandler(nil, services.ErrItemNotFound)
	rec := do(h.UpdateItem, http.MethodPut, `{"item_id": "other-cart-item", "quantity": 2}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestRemoveItemValidationAndNotFound(t *testing.T) {
	h := newStubHandler(emptyCart(), nil)
	rec := do(h.RemoveItem, http.MethodDelete, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h = newStubHandler(nil, services.ErrItemNotFound)
	rec = do(h.RemoveItem, http.MethodDelete, `{"item_id": "gone"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInfrastructureErrorIsInternal(t *testing.T) {
	h := newStubHandler(nil, fmt.Errorf("store unavailable"))
	rec := do(h.GetCart, http.MethodGet, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal")
}

// memCartService implements the full mutation protocol in memory so the
// end-to-end flow (add, accumulate, zero-out) can be driven through the
// HTTP handler.
type memCartService struct {
	products map[string]*models.Product
	cart     *models.Cart
	nextID   int
}

func newMemCartService(products ...*models.Product) *memCartService {
	m := &memCartService{products: map[string]*models.Product{}, cart: emptyCart()}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *memCartService) GetCart(context.Context, string) (*models.Cart, error) {
	return m.cart, nil
}

func (m *memCartService) AddItem(_ context.Context, _ string, productID string, qty int) (*models.Cart, error) {
	if qty < 1 {
		return nil, services.ErrInvalidQuantity
	}
	product, ok := m.products[productID]
	if !ok {
		return nil, services.ErrProductNotFound
	}
	for i := range m.cart.CartItems {
		if m.cart.CartItems[i].ProductID == productID {
			m.cart.CartItems[i].Qty += qty
			return m.cart, nil
		}
	}
	m.nextID++
	m.cart.CartItems = append(m.cart.CartItems, models.CartItem{
		ID:        fmt.Sprintf("item-%d", m.nextID),
		CartID:    m.cart.ID,
		ProductID: productID,
		Product:   product,
		Qty:       qty,
	})
	return m.cart, nil
}

func (m *memCartService) UpdateItem(_ context.Context, _ string, itemID string, qty int) (*models.Cart, error) {
	if qty < 0 {
		return nil, services.ErrInvalidQuantity
	}
	for i := range m.cart.CartItems {
		if m.cart.CartItems[i].ID == itemID {
			if qty == 0 {
				m.cart.CartItems = append(m.cart.CartItems[:i], m.cart.CartItems[i+1:]...)
			} else {
				m.cart.CartItems[i].Qty = qty
			}
			return m.cart, nil
		}
	}
	return nil, services.ErrItemNotFound
}

func (m *memCartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*models.Cart, error) {
	return m.UpdateItem(ctx, sessionID, itemID, 0)
}

func TestCartEndToEndScenario(t *testing.T) {
	product := &models.Product{ID: "p7", Name: "Wall Plugs", Company: "Acme", Price: decimal.RequireFromString("4.00")}
	h := NewCartHandler(newMemCartService(product), &stubResolver{sessionID: "session-1"}, render.New(), "http://localhost:8000")

	type cartResp struct {
		ItemCount  int    `json:"item_count"`
		TotalPrice string `json:"total_price"`
		Items      []struct {
			ID       string `json:"id"`
			Quantity int    `json:"quantity"`
		} `json:"items"`
	}
	decode := func(rec *httptest.ResponseRecorder) cartResp {
		var resp cartResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	rec := do(h.AddItem, http.MethodPost, `{"product_id": "p7", "quantity": 1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode(rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.ItemCount)
	assert.Equal(t, "4.00", resp.TotalPrice)

	rec = do(h.AddItem, http.MethodPost, `{"product_id": "p7", "quantity": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode(rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.Equal(t, 3, resp.ItemCount)
	assert.Equal(t, "12.00", resp.TotalPrice)

	body := fmt.Sprintf(`{"item_id": %q, "quantity": 0}`, resp.Items[0].ID)
	rec = do(h.UpdateItem, http.MethodPut, body)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode(rec)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.ItemCount)
	assert.Equal(t, "0", resp.TotalPrice)
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hstore/hstore-api/app/models"
	"github.com/hstore/hstore-api/app/services"
	"github.com/unrolled/render"
)

// CartServicer is the slice of the cart engine the HTTP layer consumes.
type CartServicer interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	AddItem(ctx context.Context, sessionID, productID string, qty int) (*models.Cart, error)
	UpdateItem(ctx context.Context, sessionID, itemID string, qty int) (*models.Cart, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*models.Cart, error)
}

// SessionResolver produces the opaque session token for a request, minting
// and setting it on the response when the client has none yet.
type SessionResolver interface {
	Resolve(w http.ResponseWriter, r *http.Request) (string, error)
}

type CartHandler struct {
	cartSvc  CartServicer
	resolver SessionResolver
	render   *render.Render
	validate *validator.Validate
	baseURL  string
}

func NewCartHandler(cartSvc CartServicer, resolver SessionResolver, rnd *render.Render, baseURL string) *CartHandler {
	return &CartHandler{
		cartSvc:  cartSvc,
		resolver: resolver,
		render:   rnd,
		validate: validator.New(),
		baseURL:  baseURL,
	}
}

type addItemPayload struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"omitempty,min=1"`
}

type updateItemPayload struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity *int   `json:"quantity" validate:"required,min=0"`
}

type removeItemPayload struct {
	ItemID string `json:"item_id" validate:"required"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	cart, err := h.cartSvc.GetCart(r.Context(), sessionID)
	if err != nil {
		log.Printf("CartHandler.GetCart: %v", err)
		renderInternal(h.render, w)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, NewCartView(h.baseURL, cart))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	var payload addItemPayload
	if !h.decode(w, r, &payload) {
		return
	}

	qty := 1
	if payload.Quantity != nil {
		qty = *payload.Quantity
	}

	cart, err := h.cartSvc.AddItem(r.Context(), sessionID, payload.ProductID, qty)
	if err != nil {
		h.renderServiceError(w, "AddItem", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, NewCartView(h.baseURL, cart))
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	var payload updateItemPayload
	if !h.decode(w, r, &payload) {
		return
	}

	cart, err := h.cartSvc.UpdateItem(r.Context(), sessionID, payload.ItemID, *payload.Quantity)
	if err != nil {
		h.renderServiceError(w, "UpdateItem", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, NewCartView(h.baseURL, cart))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	var payload removeItemPayload
	if !h.decode(w, r, &payload) {
		return
	}

	cart, err := h.cartSvc.RemoveItem(r.Context(), sessionID, payload.ItemID)
	if err != nil {
		h.renderServiceError(w, "RemoveItem", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, NewCartView(h.baseURL, cart))
}

func (h *CartHandler) session(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID, err := h.resolver.Resolve(w, r)
	if err != nil {
		log.Printf("CartHandler: failed to resolve session: %v", err)
		renderInternal(h.render, w)
		return "", false
	}
	return sessionID, true
}

// decode unmarshals and validates a JSON payload. A wrong-typed field (e.g.
// a string quantity) fails the unmarshal and is reported as a validation
// error, not an internal one.
func (h *CartHandler) decode(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		renderError(h.render, w, http.StatusBadRequest, codeValidation, "invalid request body: "+err.Error())
		return false
	}
	if err := h.validate.Struct(payload); err != nil {
		renderError(h.render, w, http.StatusBadRequest, codeValidation, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (h *CartHandler) renderServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidQuantity):
		renderError(h.render, w, http.StatusBadRequest, codeValidation, err.Error())
	case errors.Is(err, services.ErrProductNotFound), errors.Is(err, services.ErrItemNotFound):
		renderError(h.render, w, http.StatusNotFound, codeNotFound, err.Error())
	default:
		log.Printf("CartHandler.%s: %v", op, err)
		renderInternal(h.render, w)
	}
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hstore/hstore-api/app/models"
	"github.com/hstore/hstore-api/app/repositories"
	"gorm.io/gorm"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotFound    = errors.New("cart item not found")
)

// CartService owns the mutation protocol for session-scoped carts. It holds
// no state of its own: the store's uniqueness constraints are the only
// synchronization, so any number of workers can run it side by side.
type CartService struct {
	cartRepo     repositories.CartRepositoryImpl
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewCartService(cartRepo repositories.CartRepositoryImpl, cartItemRepo repositories.CartItemRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

// GetCart resolves the session's cart, creating it on first touch, and
// returns it with items and products loaded.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreateBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}
	return s.reload(ctx, cart.ID)
}

// AddItem accumulates qty onto the (cart, product) line item, creating it if
// absent. The increment-then-insert order keeps the common path to a single
// UPDATE; the insert loser of a concurrent first-add falls back to the
// increment after the unique index rejects it.
func (s *CartService) AddItem(ctx context.Context, sessionID, productID string, qty int) (*models.Cart, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetActiveByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}

	cart, err := s.cartRepo.GetOrCreateBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}

	rows, err := s.cartItemRepo.IncrementQty(ctx, cart.ID, product.ID, qty)
	if err != nil {
		return nil, fmt.Errorf("failed to increment cart item: %w", err)
	}
	if rows == 0 {
		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Qty:       qty,
		}
		if err := s.cartItemRepo.Create(ctx, item); err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, fmt.Errorf("failed to add cart item: %w", err)
			}
			// A concurrent add won the insert; fold our quantity in.
			if _, err := s.cartItemRepo.IncrementQty(ctx, cart.ID, product.ID, qty); err != nil {
				return nil, fmt.Errorf("failed to increment cart item after conflict: %w", err)
			}
		}
	}

	if err := s.cartRepo.Touch(ctx, cart.ID); err != nil {
		return nil, fmt.Errorf("failed to touch cart: %w", err)
	}
	return s.reload(ctx, cart.ID)
}

// UpdateItem overwrites the quantity of an item in the session's cart.
// Zero deletes the item. Items from other carts read as not found.
func (s *CartService) UpdateItem(ctx context.Context, sessionID, itemID string, qty int) (*models.Cart, error) {
	if qty < 0 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.cartRepo.GetOrCreateBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}

	item, err := s.cartItemRepo.GetScoped(ctx, cart.ID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	if qty == 0 {
		if _, err := s.cartItemRepo.DeleteScoped(ctx, cart.ID, item.ID); err != nil {
			return nil, fmt.Errorf("failed to remove cart item: %w", err)
		}
	} else {
		if err := s.cartItemRepo.UpdateQty(ctx, item.ID, qty); err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	}

	if err := s.cartRepo.Touch(ctx, cart.ID); err != nil {
		return nil, fmt.Errorf("failed to touch cart: %w", err)
	}
	return s.reload(ctx, cart.ID)
}

// RemoveItem deletes an item from the session's cart.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreateBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}

	rows, err := s.cartItemRepo.DeleteScoped(ctx, cart.ID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}
	if rows == 0 {
		return nil, ErrItemNotFound
	}

	if err := s.cartRepo.Touch(ctx, cart.ID); err != nil {
		return nil, fmt.Errorf("failed to touch cart: %w", err)
	}
	return s.reload(ctx, cart.ID)
}

func (s *CartService) reload(ctx context.Context, cartID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetWithItems(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve updated cart: %w", err)
	}
	return cart, nil
}

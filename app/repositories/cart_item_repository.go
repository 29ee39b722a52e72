package repositories

import (
	"context"
	"time"

	"github.com/hstore/hstore-api/app/models"
	"gorm.io/gorm"
)

type CartItemRepositoryImpl interface {
	Create(ctx context.Context, item *models.CartItem) error
	IncrementQty(ctx context.Context, cartID, productID string, delta int) (int64, error)
	GetScoped(ctx context.Context, cartID, itemID string) (*models.CartItem, error)
	UpdateQty(ctx context.Context, itemID string, qty int) error
	DeleteScoped(ctx context.Context, cartID, itemID string) (int64, error)
}

type cartItemRepository struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepositoryImpl {
	return &cartItemRepository{db}
}

func (r *cartItemRepository) Create(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// IncrementQty bumps the quantity for (cart, product) in a single UPDATE so
// concurrent adds accumulate instead of overwriting each other. Returns the
// number of rows touched; zero means no line item exists yet.
func (r *cartItemRepository) IncrementQty(ctx context.Context, cartID, productID string, delta int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		UpdateColumns(map[string]interface{}{
			"qty":        gorm.Expr("qty + ?", delta),
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

// GetScoped fetches an item only when it belongs to the given cart. The
// scoping is the authorization: an item ID from another session's cart is
// indistinguishable from a nonexistent one.
func (r *cartItemRepository) GetScoped(ctx context.Context, cartID, itemID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepository) UpdateQty(ctx context.Context, itemID string, qty int) error {
	return r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", itemID).
		UpdateColumns(map[string]interface{}{
			"qty":        qty,
			"updated_at": time.Now(),
		}).Error
}

func (r *cartItemRepository) DeleteScoped(ctx context.Context, cartID, itemID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}

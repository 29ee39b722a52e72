package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem associates a product with a cart. The composite unique index on
// (cart_id, product_id) keeps a product to a single row per cart; repeated
// adds increment Qty instead of inserting. No price is stored on the row.
type CartItem struct {
	ID        string   `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CartID    string   `gorm:"size:36;not null;uniqueIndex:idx_cart_product" json:"-"`
	Cart      *Cart    `gorm:"foreignKey:CartID" json:"-"`
	ProductID string   `gorm:"size:36;not null;uniqueIndex:idx_cart_product" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Qty       int      `gorm:"not null" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}

// LineTotal is the product's current unit price times the quantity.
// Zero when the product is not loaded.
func (ci *CartItem) LineTotal() decimal.Decimal {
	if ci.Product == nil {
		return decimal.Zero
	}
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Qty)))
}

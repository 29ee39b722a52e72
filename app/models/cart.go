package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart is the per-session aggregate of line items. SessionID is the opaque
// token issued to the client; its unique index is what makes concurrent
// get-or-create safe. Totals are never stored — they are derived from the
// loaded items on every read.
type Cart struct {
	ID        string     `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	SessionID string     `gorm:"size:36;not null;uniqueIndex" json:"session_id"`
	CartItems []CartItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// ItemCount sums the quantities of the currently loaded items.
func (c *Cart) ItemCount() int {
	count := 0
	for i := range c.CartItems {
		count += c.CartItems[i].Qty
	}
	return count
}

// TotalPrice sums the line totals of the currently loaded items. Line totals
// use the product's current price, so a price change shows up on the next
// read without touching the cart.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for i := range c.CartItems {
		total = total.Add(c.CartItems[i].LineTotal())
	}
	return total
}

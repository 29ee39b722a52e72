package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CategoryID  string          `gorm:"size:36;not null;index:idx_category_active" json:"category_id"`
	Category    *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
	Name        string          `gorm:"size:200;not null" json:"name"`
	Company     string          `gorm:"size:100;not null" json:"company"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string          `gorm:"type:text" json:"description"`

	Thumbnail string `gorm:"size:255" json:"thumbnail"`
	Image1    string `gorm:"size:255" json:"image_1"`
	Image2    string `gorm:"size:255" json:"image_2"`

	IsFeatured   bool `gorm:"default:false;index" json:"is_featured"`
	IsBestseller bool `gorm:"default:false" json:"is_bestseller"`
	IsActive     bool `gorm:"default:true;index:idx_category_active" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyLogo struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Logo      string    `gorm:"size:255;not null" json:"logo"`
	Position  int       `gorm:"default:0" json:"order"`
	IsActive  bool      `gorm:"default:true" json:"-"`
	CreatedAt time.Time `json:"-"`
}

func (l *CompanyLogo) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}

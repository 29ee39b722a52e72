package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Slide struct {
	ID         string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title      string    `gorm:"size:200;not null" json:"title"`
	Subtitle   string    `gorm:"size:200" json:"subtitle"`
	TitleSpan  string    `gorm:"size:200" json:"title_span"`
	ButtonText string    `gorm:"size:50;default:'Shop Now'" json:"button_text"`
	Link       string    `gorm:"size:200;default:'#'" json:"link"`
	Image      string    `gorm:"size:255;not null" json:"image"`
	Position   int       `gorm:"default:0" json:"order"`
	IsActive   bool      `gorm:"default:true" json:"-"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func (s *Slide) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

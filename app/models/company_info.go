package models

import "time"

// CompanyInfo is a single-row configuration entity. It is never created or
// deleted through ordinary row semantics; access goes through the
// load-or-initialize accessor on its repository.
type CompanyInfo struct {
	ID                     string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"-"`
	Phone                  string    `gorm:"size:20" json:"phone"`
	Email                  string    `gorm:"size:254" json:"email"`
	Address                string    `gorm:"type:text" json:"address"`
	WhatsappNumber         string    `gorm:"size:20" json:"whatsapp_number"`
	WhatsappDefaultMessage string    `gorm:"size:200" json:"whatsapp_default_message"`
	InstagramURL           string    `gorm:"size:200" json:"instagram_url"`
	FacebookURL            string    `gorm:"size:200" json:"facebook_url"`
	TiktokURL              string    `gorm:"size:200" json:"tiktok_url"`
	UpdatedAt              time.Time `json:"-"`
}

func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{
		WhatsappDefaultMessage: "Hello! I'm interested in your products.",
	}
}

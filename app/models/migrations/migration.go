package migrations

import (
	"github.com/hstore/hstore-api/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Slide{},
		&models.CompanyInfo{},
		&models.CompanyLogo{},
		&models.Cart{},
		&models.CartItem{},
	)
}

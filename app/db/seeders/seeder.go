package seeders

import (
	"log"

	"github.com/hstore/hstore-api/app/db/fakers"
	"gorm.io/gorm"
)

var categoryNames = []string{
	"Plumbing & Piping",
	"Electrical",
	"Paint & Finishes",
	"Tools & Hardware",
	"Building Materials",
}

const productsPerCategory = 8

func Seed(db *gorm.DB) error {
	for _, name := range categoryNames {
		category := fakers.CategoryFaker(name)
		if err := db.FirstOrCreate(category, "slug = ?", category.Slug).Error; err != nil {
			return err
		}

		for i := 0; i < productsPerCategory; i++ {
			product := fakers.ProductFaker(category)
			if err := db.Create(product).Error; err != nil {
				return err
			}
		}
		log.Printf("seeded category %q with %d products", name, productsPerCategory)
	}

	for i := 0; i < 3; i++ {
		if err := db.Create(fakers.SlideFaker(i)).Error; err != nil {
			return err
		}
	}
	for i := 0; i < 6; i++ {
		if err := db.Create(fakers.CompanyLogoFaker(i)).Error; err != nil {
			return err
		}
	}

	return nil
}

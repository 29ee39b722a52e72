package fakers

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/hstore/hstore-api/app/models"
	"github.com/shopspring/decimal"
)

func CategoryFaker(name string) *models.Category {
	return &models.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slug.Make(name),
		Image:     fmt.Sprintf("/media/categories/%s.jpg", slug.Make(name)),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func ProductFaker(category *models.Category) *models.Product {
	name := faker.Word() + " " + faker.Word()
	productID := uuid.New().String()

	return &models.Product{
		ID:           productID,
		CategoryID:   category.ID,
		Name:         name,
		Company:      faker.LastName(),
		Price:        decimal.NewFromFloat(fakePrice()),
		Description:  faker.Paragraph(),
		Thumbnail:    fmt.Sprintf("/media/products/%s.jpg", productID[:8]),
		Image1:       fmt.Sprintf("/media/products/%s-1.jpg", productID[:8]),
		Image2:       fmt.Sprintf("/media/products/%s-2.jpg", productID[:8]),
		IsFeatured:   rand.Intn(4) == 0,
		IsBestseller: rand.Intn(4) == 0,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func fakePrice() float64 {
	return precision(rand.Float64()*math.Pow10(rand.Intn(4)+1), 2)
}

func precision(val float64, pre int) float64 {
	a := math.Pow10(pre)
	return float64(int(val*a)) / a
}

package fakers

import (
	"fmt"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/hstore/hstore-api/app/models"
)

func SlideFaker(position int) *models.Slide {
	id := uuid.New().String()
	return &models.Slide{
		ID:         id,
		Title:      faker.Sentence(),
		Subtitle:   faker.Sentence(),
		TitleSpan:  faker.Word(),
		ButtonText: "Shop Now",
		Link:       "/products",
		Image:      fmt.Sprintf("/media/slides/%s.jpg", id[:8]),
		Position:   position,
		IsActive:   true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

func CompanyLogoFaker(position int) *models.CompanyLogo {
	id := uuid.New().String()
	return &models.CompanyLogo{
		ID:        id,
		Name:      faker.LastName(),
		Logo:      fmt.Sprintf("/media/logos/%s.png", id[:8]),
		Position:  position,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}

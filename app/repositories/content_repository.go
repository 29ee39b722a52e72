package repositories

import (
	"context"

	"github.com/hstore/hstore-api/app/models"
	"gorm.io/gorm"
)

type SlideRepositoryImpl interface {
	GetActive(ctx context.Context) ([]models.Slide, error)
}

type slideRepository struct {
	db *gorm.DB
}

func NewSlideRepository(db *gorm.DB) SlideRepositoryImpl {
	return &slideRepository{db}
}

func (r *slideRepository) GetActive(ctx context.Context) ([]models.Slide, error) {
	var slides []models.Slide
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("position ASC, created_at DESC").
		Find(&slides).Error
	return slides, err
}

type CompanyLogoRepositoryImpl interface {
	GetActive(ctx context.Context) ([]models.CompanyLogo, error)
}

type companyLogoRepository struct {
	db *gorm.DB
}

func NewCompanyLogoRepository(db *gorm.DB) CompanyLogoRepositoryImpl {
	return &companyLogoRepository{db}
}

func (r *companyLogoRepository) GetActive(ctx context.Context) ([]models.CompanyLogo, error) {
	var logos []models.CompanyLogo
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("position ASC").
		Find(&logos).Error
	return logos, err
}

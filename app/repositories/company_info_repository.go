package repositories

import (
	"context"

	"github.com/hstore/hstore-api/app/models"
	"gorm.io/gorm"
)

// companyInfoKey is the well-known key of the single configuration row.
// Only this repository creates the row; handlers and services never insert.
const companyInfoKey = "company-info"

type CompanyInfoRepositoryImpl interface {
	LoadOrInit(ctx context.Context) (*models.CompanyInfo, error)
	Update(ctx context.Context, info *models.CompanyInfo) error
}

type companyInfoRepository struct {
	db *gorm.DB
}

func NewCompanyInfoRepository(db *gorm.DB) CompanyInfoRepositoryImpl {
	return &companyInfoRepository{db}
}

// LoadOrInit returns the configuration row, creating it with defaults on
// first access.
func (r *companyInfoRepository) LoadOrInit(ctx context.Context) (*models.CompanyInfo, error) {
	info := models.DefaultCompanyInfo()
	info.ID = companyInfoKey
	err := r.db.WithContext(ctx).
		Where("id = ?", companyInfoKey).
		FirstOrCreate(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *companyInfoRepository) Update(ctx context.Context, info *models.CompanyInfo) error {
	info.ID = companyInfoKey
	return r.db.WithContext(ctx).Save(info).Error
}

package repositories

import (
	"context"
	"strings"

	"github.com/hstore/hstore-api/app/models"
	"gorm.io/gorm"
)

// ProductFilter narrows the paginated listing. Zero values mean "no filter".
type ProductFilter struct {
	CategorySlug string
	Search       string
	Featured     bool
	Bestseller   bool
}

type ProductRepositoryImpl interface {
	GetActiveByID(ctx context.Context, id string) (*models.Product, error)
	GetPaginated(ctx context.Context, filter ProductFilter, limit, offset int) ([]models.Product, int64, error)
	GetFeatured(ctx context.Context) ([]models.Product, error)
	GetLatest(ctx context.Context, limit int) ([]models.Product, error)
	GetBestsellers(ctx context.Context) ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) GetActiveByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := p.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) activeScope(ctx context.Context, filter ProductFilter) *gorm.DB {
	q := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("products.is_active = ?", true)

	if filter.CategorySlug != "" {
		q = q.Joins("JOIN categories c ON c.id = products.category_id").
			Where("c.slug = ?", filter.CategorySlug)
	}
	if filter.Search != "" {
		kw := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(products.name) LIKE ? OR LOWER(products.company) LIKE ? OR LOWER(products.description) LIKE ?", kw, kw, kw)
	}
	if filter.Featured {
		q = q.Where("products.is_featured = ?", true)
	}
	if filter.Bestseller {
		q = q.Where("products.is_bestseller = ?", true)
	}
	return q
}

func (p *productRepository) GetPaginated(ctx context.Context, filter ProductFilter, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	if err := p.activeScope(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := p.activeScope(ctx, filter).
		Preload("Category").
		Order("products.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) GetFeatured(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetLatest(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetBestsellers(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ? AND is_bestseller = ?", true, true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

package repository

import (
	"strings"

	"github.com/storefront-next/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List 商品列表，按创建时间倒序
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, error) {
	query := r.db.Model(&models.Product{})
	if filter.WithCategory {
		query = query.Preload("Category")
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MinRating != nil {
		query = query.Where("rating >= ?", *filter.MinRating)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		condition, argCount := buildContainsCondition(r.db, []string{"name", "description"})
		query = query.Where(condition, repeatLikeArgs(containsPattern(search), argCount)...)
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var products []models.Product
	if err := query.Order("created_at DESC, id DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetBySlug 根据 slug 获取商品（含分类）
func (r *GormProductRepository) GetBySlug(slug string) (*models.Product, error) {
	return findOne[models.Product](r.db.Preload("Category").Where("slug = ?", slug))
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	return findOne[models.Product](r.db, id)
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

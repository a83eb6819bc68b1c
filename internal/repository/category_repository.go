package repository

import (
	"github.com/storefront-next/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository 分类存取（前台只读，seed 写入）
type CategoryRepository interface {
	List() ([]models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	Create(category *models.Category) error
}

// GormCategoryRepository GORM 实现
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// List 按名称排序，同名按 id
func (r *GormCategoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Order("id ASC").Find(&categories).Error
	return categories, err
}

func (r *GormCategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	return findOne[models.Category](r.db.Where("slug = ?", slug))
}

func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

package repository

import (
	"errors"
	"time"

	"github.com/storefront-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	FindByUserAndProduct(userID, productID uint) (*models.CartItem, error)
	GetByID(id uint) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(item *models.CartItem, quantity int, updatedAt time.Time) error
	DeleteByUserAndID(userID, id uint) error
	ListByUser(userID uint) ([]models.CartItem, error)
	SumQuantityByUser(userID uint) (int, error)
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByUserAndProduct 查询用户某商品的购物车项，不存在返回 nil
func (r *GormCartRepository) FindByUserAndProduct(userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetByID 根据 ID 获取购物车项
func (r *GormCartRepository) GetByID(id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create 创建购物车项
func (r *GormCartRepository) Create(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Create(item).Error
}

// UpdateQuantity 覆盖购物车项数量
func (r *GormCartRepository) UpdateQuantity(item *models.CartItem, quantity int, updatedAt time.Time) error {
	if item == nil {
		return nil
	}
	updates := map[string]interface{}{
		"quantity":   quantity,
		"updated_at": updatedAt,
	}
	if err := r.db.Model(&models.CartItem{}).Where("id = ?", item.ID).Updates(updates).Error; err != nil {
		return err
	}
	item.Quantity = quantity
	item.UpdatedAt = updatedAt
	return nil
}

// DeleteByUserAndID 删除用户的购物车项，记录不存在时不报错
func (r *GormCartRepository) DeleteByUserAndID(userID, id uint) error {
	return r.db.Where("user_id = ? AND id = ?", userID, id).Delete(&models.CartItem{}).Error
}

// ListByUser 获取用户购物车项（含商品）
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SumQuantityByUser 统计用户购物车商品总件数
func (r *GormCartRepository) SumQuantityByUser(userID uint) (int, error) {
	var total int64
	if err := r.db.Model(&models.CartItem{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}

package repository

import (
	"time"

	"github.com/storefront-next/internal/models"

	"gorm.io/gorm"
)

// UserRepository 会员账号存取，邮箱在写入前已规范化为小写
type UserRepository interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	RecordLogin(userID uint, at time.Time) error
}

// GormUserRepository GORM 实现
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) GetByEmail(email string) (*models.User, error) {
	return findOne[models.User](r.db.Where("email = ?", email))
}

func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	return findOne[models.User](r.db, id)
}

func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Update 整行保存（含 token_version、status）
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// RecordLogin 只写 last_login_at，避免覆盖并发修改的其他列
func (r *GormUserRepository) RecordLogin(userID uint, at time.Time) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{"last_login_at": at, "updated_at": at}).Error
}

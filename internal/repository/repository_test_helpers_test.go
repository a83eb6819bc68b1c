package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/storefront-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRepositoryTestDB(t *testing.T, prefix string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", prefix, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateDB(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func createTestCategory(t *testing.T, db *gorm.DB, slug, name string) *models.Category {
	t.Helper()
	category := &models.Category{Slug: slug, Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func createTestProduct(t *testing.T, db *gorm.DB, product models.Product) *models.Product {
	t.Helper()
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product %s failed: %v", product.Slug, err)
	}
	return &product
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/storefront-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupServiceTestDB(t *testing.T, prefix string) *gorm.DB {
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

func seedServiceProduct(t *testing.T, db *gorm.DB, product models.Product) *models.Product {
	t.Helper()
	if product.CategoryID == 0 {
		category := models.Category{Slug: fmt.Sprintf("cat-%s", product.Slug), Name: "Category " + product.Slug}
		if err := db.Create(&category).Error; err != nil {
			t.Fatalf("create category failed: %v", err)
		}
		product.CategoryID = category.ID
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return &product
}

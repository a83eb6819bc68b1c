package provider

import (
	"fmt"
	"testing"
	"time"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/queue"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openContainerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateDB(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func TestNewContainerWithDBWiresServices(t *testing.T) {
	c := NewContainerWithDB(&config.Config{}, openContainerTestDB(t))
	if c.CartService == nil || c.CatalogService == nil || c.PricingService == nil || c.UserAuthService == nil {
		t.Fatalf("services not wired: %+v", c)
	}
	if c.QueueClient != nil {
		t.Fatalf("db-only container should not build a queue client")
	}
}

func TestRequestCatalogRefreshWithoutQueue(t *testing.T) {
	c := NewContainerWithDB(&config.Config{}, openContainerTestDB(t))
	queued, err := c.RequestCatalogRefresh("api_start")
	if err != nil || queued {
		t.Fatalf("nil queue client should skip, queued=%v err=%v", queued, err)
	}

	disabled, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new disabled client failed: %v", err)
	}
	c.QueueClient = disabled
	queued, err = c.RequestCatalogRefresh("api_start")
	if err != nil || queued {
		t.Fatalf("disabled queue client should skip, queued=%v err=%v", queued, err)
	}

	var nilContainer *Container
	if queued, err := nilContainer.RequestCatalogRefresh("api_start"); err != nil || queued {
		t.Fatalf("nil container should skip, queued=%v err=%v", queued, err)
	}
}

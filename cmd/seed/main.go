package main

import (
	"context"
	"time"

	"github.com/storefront-next/internal/cache"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/queue"
	"github.com/storefront-next/internal/repository"
)

type seedProduct struct {
	CategorySlug  string
	Slug          string
	Name          string
	Description   string
	Price         string
	OriginalPrice string
	Stock         int
	Rating        float64
	ReviewCount   int
	Features      []string
	IsFeatured    bool
}

var seedCategories = []models.Category{
	{Slug: "electronics", Name: "Electronics", Description: "Phones, audio and smart devices"},
	{Slug: "home", Name: "Home & Kitchen", Description: "Everyday essentials for the home"},
	{Slug: "fashion", Name: "Fashion", Description: "Clothing, shoes and accessories"},
	{Slug: "books", Name: "Books", Description: "Bestsellers and new releases"},
}

var seedProducts = []seedProduct{
	{CategorySlug: "electronics", Slug: "wireless-headphones", Name: "Wireless Noise-Cancelling Headphones", Description: "Over-ear headphones with 30 hour battery life", Price: "79.99", OriginalPrice: "129.99", Stock: 25, Rating: 4.5, ReviewCount: 1284, Features: []string{"Active noise cancelling", "30h battery", "USB-C fast charge"}, IsFeatured: true},
	{CategorySlug: "electronics", Slug: "smart-watch", Name: "Fitness Smart Watch", Description: "Heart rate, sleep and GPS tracking", Price: "149.00", OriginalPrice: "199.00", Stock: 12, Rating: 4.2, ReviewCount: 642, Features: []string{"Built-in GPS", "Water resistant", "7 day battery"}, IsFeatured: true},
	{CategorySlug: "electronics", Slug: "usb-c-charger", Name: "65W USB-C Charger", Description: "Compact fast charger for laptops and phones", Price: "24.99", Stock: 80, Rating: 4.7, ReviewCount: 3120, Features: []string{"65W output", "Foldable plug"}},
	{CategorySlug: "home", Name: "Stainless Steel Kettle", Slug: "steel-kettle", Description: "1.7L electric kettle with auto shut-off", Price: "34.50", OriginalPrice: "39.99", Stock: 40, Rating: 4.0, ReviewCount: 215, Features: []string{"1.7 litre", "Boil-dry protection"}},
	{CategorySlug: "home", Slug: "cotton-towels", Name: "Cotton Bath Towel Set", Description: "Set of 4 soft absorbent towels", Price: "19.99", Stock: 0, Rating: 3.6, ReviewCount: 88, Features: []string{"100% cotton", "Machine washable"}},
	{CategorySlug: "fashion", Slug: "running-shoes", Name: "Lightweight Running Shoes", Description: "Breathable mesh trainers for daily runs", Price: "59.00", OriginalPrice: "75.00", Stock: 18, Rating: 4.3, ReviewCount: 507, Features: []string{"Breathable mesh", "Cushioned sole"}, IsFeatured: true},
	{CategorySlug: "fashion", Slug: "denim-jacket", Name: "Classic Denim Jacket", Description: "Relaxed fit jacket in washed denim", Price: "45.00", Stock: 9, Rating: 2.9, ReviewCount: 41, Features: []string{"Relaxed fit"}},
	{CategorySlug: "books", Slug: "go-in-practice", Name: "Practical Go Programming", Description: "Patterns for building reliable services", Price: "32.00", OriginalPrice: "40.00", Stock: 30, Rating: 4.8, ReviewCount: 199, Features: []string{"Paperback", "420 pages"}},
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	categoryRepo := repository.NewCategoryRepository(models.DB)
	productRepo := repository.NewProductRepository(models.DB)
	categoryIDs := make(map[string]uint, len(seedCategories))
	for _, cat := range seedCategories {
		id, created, err := ensureCategory(categoryRepo, cat)
		if err != nil {
			stdLog.Fatalf("Failed to seed category %s: %v", cat.Slug, err)
		}
		categoryIDs[cat.Slug] = id
		if created {
			stdLog.Printf("Created category: %s", cat.Slug)
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	// 依次错开创建时间，保证“最新优先”排序稳定
	base := time.Now().Add(-time.Duration(len(seedProducts)) * time.Hour)
	createdCount := 0
	for i, item := range seedProducts {
		categoryID, ok := categoryIDs[item.CategorySlug]
		if !ok {
			stdLog.Printf("Skip product %s: unknown category %s", item.Slug, item.CategorySlug)
			continue
		}
		product, err := buildProduct(item, categoryID, base.Add(time.Duration(i)*time.Hour))
		if err != nil {
			stdLog.Fatalf("Invalid seed product %s: %v", item.Slug, err)
		}
		created, err := ensureProduct(productRepo, product)
		if err != nil {
			stdLog.Fatalf("Failed to seed product %s: %v", item.Slug, err)
		}
		if created {
			createdCount++
			stdLog.Printf("Created product: %s", item.Slug)
		}
	}

	if err := cache.InitRedis(&cfg.Redis); err != nil {
		stdLog.Printf("Redis unavailable: %v", err)
	}
	defer cache.Close()

	client, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		stdLog.Printf("Queue client unavailable: %v", err)
	}
	defer client.Close()

	outcome, err := refreshCatalogSnapshot(context.Background(), client)
	if err != nil {
		stdLog.Printf("Failed to reset catalog snapshot: %v", err)
	} else {
		stdLog.Printf("Catalog snapshot %s", outcome)
	}

	stdLog.Printf("Seed finished: %d new products", createdCount)
}

const (
	snapshotRefreshEnqueued = "refresh enqueued"
	snapshotDropped         = "dropped"
)

// refreshCatalogSnapshot 通知 worker 重建快照，无法投递时直接删除旧快照
func refreshCatalogSnapshot(ctx context.Context, client *queue.Client) (string, error) {
	if client.Enabled() {
		err := client.EnqueueCatalogRefresh(queue.CatalogRefreshPayload{Reason: "seed"})
		if err == nil {
			return snapshotRefreshEnqueued, nil
		}
		logger.Warnw("seed_catalog_refresh_enqueue_failed", "error", err)
	}
	if err := cache.DelCatalogSnapshot(ctx); err != nil {
		return "", err
	}
	return snapshotDropped, nil
}

func ensureCategory(repo repository.CategoryRepository, cat models.Category) (uint, bool, error) {
	existing, err := repo.GetBySlug(cat.Slug)
	if err != nil {
		return 0, false, err
	}
	if existing != nil {
		return existing.ID, false, nil
	}
	if err := repo.Create(&cat); err != nil {
		return 0, false, err
	}
	return cat.ID, true, nil
}

func ensureProduct(repo repository.ProductRepository, product *models.Product) (bool, error) {
	existing, err := repo.GetBySlug(product.Slug)
	if err != nil || existing != nil {
		return false, err
	}
	return true, repo.Create(product)
}

func buildProduct(item seedProduct, categoryID uint, createdAt time.Time) (*models.Product, error) {
	price, err := models.NewMoneyFromString(item.Price)
	if err != nil {
		return nil, err
	}
	product := &models.Product{
		CategoryID:  categoryID,
		Slug:        item.Slug,
		Name:        item.Name,
		Description: item.Description,
		Price:       price,
		Stock:       item.Stock,
		Rating:      item.Rating,
		ReviewCount: item.ReviewCount,
		Features:    models.StringArray(item.Features),
		IsFeatured:  item.IsFeatured,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	if item.OriginalPrice != "" {
		original, err := models.NewMoneyFromString(item.OriginalPrice)
		if err != nil {
			return nil, err
		}
		product.OriginalPrice = models.NewNullMoney(original)
	}
	return product, nil
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/storefront-next/internal/cache"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/repository"
)

// ProductQuery 商品列表查询条件（各条件 AND 组合）
type ProductQuery struct {
	CategoryID uint
	Featured   bool
	MaxPrice   *models.Money
	MinRating  *float64
	Search     string
	Page       int
	PageSize   int
}

// ProductDetail 商品详情页数据
type ProductDetail struct {
	Product         *models.Product `json:"product"`
	DiscountPercent *int            `json:"discount_percent"`
	Stars           StarRating      `json:"stars"`
	InStock         bool            `json:"in_stock"`
}

// CatalogService 商品目录服务
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	snapshotTTL  time.Duration
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, snapshotTTLSeconds int) *CatalogService {
	if snapshotTTLSeconds <= 0 {
		snapshotTTLSeconds = constants.CatalogSnapshotTTLSecond
	}
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		snapshotTTL:  time.Duration(snapshotTTLSeconds) * time.Second,
	}
}

// ListCategories 分类列表（按名称排序）
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, wrapStoreError(err)
	}
	return categories, nil
}

// ListProducts 按条件查询商品，按创建时间倒序
func (s *CatalogService) ListProducts(query ProductQuery) ([]models.Product, error) {
	products, err := s.productRepo.List(repository.ProductListFilter{
		Page:         query.Page,
		PageSize:     query.PageSize,
		CategoryID:   query.CategoryID,
		FeaturedOnly: query.Featured,
		MaxPrice:     query.MaxPrice,
		MinRating:    query.MinRating,
		Search:       query.Search,
		WithCategory: true,
	})
	if err != nil {
		return nil, wrapStoreError(err)
	}
	return products, nil
}

// ListFeatured 精选商品
func (s *CatalogService) ListFeatured() ([]models.Product, error) {
	return s.ListProducts(ProductQuery{Featured: true})
}

// GetProductBySlug 根据 slug 获取商品
func (s *CatalogService) GetProductBySlug(slug string) (*models.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrNotFound
	}
	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// GetProductDetail 商品详情：附带折扣与星级
func (s *CatalogService) GetProductDetail(slug string) (*ProductDetail, error) {
	product, err := s.GetProductBySlug(slug)
	if err != nil {
		return nil, err
	}
	detail := &ProductDetail{
		Product: product,
		Stars:   RenderStars(product.Rating),
		InStock: product.InStock(),
	}
	percent, ok, err := DiscountPercent(product.Price, product.OriginalPrice)
	if err != nil {
		logger.Warnw("product_discount_invalid",
			"product_id", product.ID,
			"slug", product.Slug,
			"error", err,
		)
	} else if ok {
		detail.DiscountPercent = &percent
	}
	return detail, nil
}

// Snapshot 全量商品列表，优先读取缓存
func (s *CatalogService) Snapshot(ctx context.Context) ([]models.Product, error) {
	snapshot, hit, err := cache.GetCatalogSnapshot(ctx)
	if err != nil {
		logger.Warnw("catalog_snapshot_cache_read_failed", "error", err)
	}
	if hit && snapshot != nil {
		return snapshot.Products, nil
	}
	return s.RefreshSnapshot(ctx)
}

// RefreshSnapshot 从存储重建全量商品快照并整体覆盖缓存
func (s *CatalogService) RefreshSnapshot(ctx context.Context) ([]models.Product, error) {
	products, err := s.ListProducts(ProductQuery{})
	if err != nil {
		return nil, err
	}
	if err := cache.SetCatalogSnapshot(ctx, products, s.snapshotTTL); err != nil {
		logger.Warnw("catalog_snapshot_cache_write_failed", "error", err)
	}
	return products, nil
}

// Filter 首页过滤：搜索走存储查询，其余基于快照内存过滤
func (s *CatalogService) Filter(ctx context.Context, filter ProductFilter) (FilterResult, error) {
	if filter.Kind == constants.CatalogFilterSearch && strings.TrimSpace(filter.Search) != "" {
		products, err := s.ListProducts(ProductQuery{Search: strings.TrimSpace(filter.Search)})
		if err != nil {
			return FilterResult{}, err
		}
		return newFilterResult(products), nil
	}
	all, err := s.Snapshot(ctx)
	if err != nil {
		return FilterResult{}, err
	}
	return FilterProducts(all, filter), nil
}

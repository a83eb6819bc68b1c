package cache

import (
	"context"
	"time"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/models"
)

// CatalogSnapshot 全量商品快照（首页过滤使用的 allProducts）
type CatalogSnapshot struct {
	Products []models.Product `json:"products"`
	BuiltAt  int64            `json:"built_at"`
}

// GetCatalogSnapshot 读取商品快照
func GetCatalogSnapshot(ctx context.Context) (*CatalogSnapshot, bool, error) {
	var snapshot CatalogSnapshot
	hit, err := GetJSON(ctx, constants.CatalogSnapshotCacheKey, &snapshot)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &snapshot, true, nil
}

// SetCatalogSnapshot 整体覆盖商品快照
func SetCatalogSnapshot(ctx context.Context, products []models.Product, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Duration(constants.CatalogSnapshotTTLSecond) * time.Second
	}
	snapshot := CatalogSnapshot{
		Products: products,
		BuiltAt:  time.Now().Unix(),
	}
	return SetJSON(ctx, constants.CatalogSnapshotCacheKey, snapshot, ttl)
}

// DelCatalogSnapshot 删除商品快照
func DelCatalogSnapshot(ctx context.Context) error {
	return Del(ctx, constants.CatalogSnapshotCacheKey)
}
